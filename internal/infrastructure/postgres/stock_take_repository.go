package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/AllanBico/POS-sub000/internal/domain/entity"
	"github.com/AllanBico/POS-sub000/internal/domain/repository"
)

var _ repository.StockTakeRepository = (*StockTakeRepo)(nil)

// StockTakeRepo implementación de conteos físicos sobre PostgreSQL.
type StockTakeRepo struct {
	q Querier
}

// NewStockTakeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTakeRepository(q Querier) *StockTakeRepo {
	return &StockTakeRepo{q: q}
}

// Create persiste un conteo físico.
func (r *StockTakeRepo) Create(stockTake *entity.StockTake) error {
	if stockTake.ID == "" {
		stockTake.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_takes (id, variant_id, warehouse_id, store_id, system_quantity, physical_quantity, difference, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		stockTake.ID, stockTake.VariantID, stockTake.WarehouseID, stockTake.StoreID,
		stockTake.SystemQuantity, stockTake.PhysicalQuantity, stockTake.Difference,
		stockTake.Notes, stockTake.CreatedBy, stockTake.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock take: %w", err)
	}
	return nil
}

// GetByID obtiene un conteo por ID (nil si no existe).
func (r *StockTakeRepo) GetByID(id string) (*entity.StockTake, error) {
	query := `
		SELECT id, variant_id, warehouse_id, store_id, system_quantity, physical_quantity, difference, notes, created_by, created_at
		FROM stock_takes WHERE id = $1`
	var st entity.StockTake
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&st.ID, &st.VariantID, &st.WarehouseID, &st.StoreID,
		&st.SystemQuantity, &st.PhysicalQuantity, &st.Difference,
		&st.Notes, &st.CreatedBy, &st.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock take: %w", err)
	}
	return &st, nil
}
