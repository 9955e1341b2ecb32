package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/AllanBico/POS-sub000/internal/domain"
	"github.com/AllanBico/POS-sub000/internal/domain/entity"
	"github.com/AllanBico/POS-sub000/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación de VariantRepository sobre PostgreSQL (usable con pool o tx).
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

// Create persiste una variante.
func (r *VariantRepo) Create(variant *entity.Variant) error {
	if variant.ID == "" {
		variant.ID = uuid.New().String()
	}
	query := `
		INSERT INTO variants (id, sku, name, price, stock_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		variant.ID, variant.SKU, variant.Name, variant.Price, variant.StockQuantity,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("create variant: %w", err)
	}
	return nil
}

// GetByID obtiene una variante por ID (nil si no existe).
func (r *VariantRepo) GetByID(id string) (*entity.Variant, error) {
	query := `
		SELECT id, sku, name, price, stock_quantity, created_at, updated_at
		FROM variants WHERE id = $1`
	var v entity.Variant
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.SKU, &v.Name, &v.Price, &v.StockQuantity, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return &v, nil
}

// AdjustStock aplica delta al total denormalizado. El guard de negativo va en
// el predicado del UPDATE, así el chequeo y la escritura son una sola sentencia.
func (r *VariantRepo) AdjustStock(id string, delta int64) error {
	query := `
		UPDATE variants
		SET stock_quantity = stock_quantity + $2, updated_at = now()
		WHERE id = $1 AND stock_quantity + $2 >= 0`
	tag, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust variant stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguir variante inexistente de stock insuficiente.
		var one int
		err := r.q.QueryRow(context.Background(), `SELECT 1 FROM variants WHERE id = $1`, id).Scan(&one)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("adjust variant stock: %w", err)
		}
		return domain.ErrInsufficientStock
	}
	return nil
}
