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

var _ repository.StockAdjustmentRepository = (*StockAdjustmentRepo)(nil)

// StockAdjustmentRepo implementación de ajustes sobre PostgreSQL.
// Las series viven en stock_adjustment_serials (adjustment_id, position, serial)
// como relación uno-a-muchos ordenada, no como cadena delimitada.
type StockAdjustmentRepo struct {
	q Querier
}

// NewStockAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockAdjustmentRepository(q Querier) *StockAdjustmentRepo {
	return &StockAdjustmentRepo{q: q}
}

// Create persiste el ajuste y sus filas hijas de series.
func (r *StockAdjustmentRepo) Create(adjustment *entity.StockAdjustment) error {
	if adjustment.ID == "" {
		adjustment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_adjustments (id, variant_id, warehouse_id, store_id, adjustment_quantity,
			type, reason, status, stock_take_id, created_by, approved_by, created_at, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		adjustment.ID, adjustment.VariantID, adjustment.WarehouseID, adjustment.StoreID,
		adjustment.AdjustmentQuantity, adjustment.Type, adjustment.Reason, adjustment.Status,
		adjustment.StockTakeID, adjustment.CreatedBy, adjustment.ApprovedBy,
		adjustment.CreatedAt, adjustment.ApprovedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create stock adjustment: %w", err)
	}
	serialQuery := `
		INSERT INTO stock_adjustment_serials (adjustment_id, position, serial)
		VALUES ($1, $2, $3)`
	for i, serial := range adjustment.SerialNumbers {
		if _, err := r.q.Exec(context.Background(), serialQuery, adjustment.ID, i, serial); err != nil {
			return fmt.Errorf("create adjustment serial: %w", err)
		}
	}
	return nil
}

// GetByID obtiene el ajuste con sus series (nil si no existe).
func (r *StockAdjustmentRepo) GetByID(id string) (*entity.StockAdjustment, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el ajuste bloqueando su fila, para serializar
// aprobaciones concurrentes del mismo ajuste.
func (r *StockAdjustmentRepo) GetForUpdate(id string) (*entity.StockAdjustment, error) {
	return r.get(id, true)
}

func (r *StockAdjustmentRepo) get(id string, forUpdate bool) (*entity.StockAdjustment, error) {
	query := `
		SELECT id, variant_id, warehouse_id, store_id, adjustment_quantity,
			type, reason, status, stock_take_id, created_by, approved_by, created_at, approved_at
		FROM stock_adjustments WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var a entity.StockAdjustment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.VariantID, &a.WarehouseID, &a.StoreID, &a.AdjustmentQuantity,
		&a.Type, &a.Reason, &a.Status, &a.StockTakeID, &a.CreatedBy, &a.ApprovedBy,
		&a.CreatedAt, &a.ApprovedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock adjustment: %w", err)
	}
	serials, err := r.listSerials(id)
	if err != nil {
		return nil, err
	}
	a.SerialNumbers = serials
	return &a, nil
}

func (r *StockAdjustmentRepo) listSerials(adjustmentID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT serial FROM stock_adjustment_serials WHERE adjustment_id = $1 ORDER BY position`, adjustmentID)
	if err != nil {
		return nil, fmt.Errorf("list adjustment serials: %w", err)
	}
	defer rows.Close()
	var serials []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan adjustment serial: %w", err)
		}
		serials = append(serials, s)
	}
	return serials, rows.Err()
}

// MarkApproved persiste la transición a "approved".
func (r *StockAdjustmentRepo) MarkApproved(adjustment *entity.StockAdjustment) error {
	query := `
		UPDATE stock_adjustments
		SET status = $2, approved_by = $3, approved_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		adjustment.ID, adjustment.Status, adjustment.ApprovedBy, adjustment.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("mark adjustment approved: %w", err)
	}
	return nil
}
