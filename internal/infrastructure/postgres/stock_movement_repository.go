package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AllanBico/POS-sub000/internal/domain/entity"
	"github.com/AllanBico/POS-sub000/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del log de movimientos sobre PostgreSQL.
// Append-only: el adaptador no expone update ni delete.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento y deja su ID en el struct para correlación.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, variant_id, quantity, transaction_type, source_type, source_id,
			destination_type, destination_id, transaction_date, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.VariantID, movement.Quantity, movement.TransactionType,
		movement.SourceType, movement.SourceID, movement.DestinationType, movement.DestinationID,
		movement.TransactionDate, movement.Notes, movement.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByVariant lista los movimientos de una variante, más recientes primero.
func (r *StockMovementRepo) ListByVariant(variantID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, variant_id, quantity, transaction_type, source_type, source_id,
			destination_type, destination_id, transaction_date, notes, created_at, created_by
		FROM stock_movements WHERE variant_id = $1
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, variantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var createdBy *string
		if err := rows.Scan(&m.ID, &m.VariantID, &m.Quantity, &m.TransactionType,
			&m.SourceType, &m.SourceID, &m.DestinationType, &m.DestinationID,
			&m.TransactionDate, &m.Notes, &m.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
