package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AllanBico/POS-sub000/internal/domain"
	"github.com/AllanBico/POS-sub000/internal/domain/entity"
	"github.com/AllanBico/POS-sub000/internal/domain/repository"
)

var _ repository.SerialNumberRepository = (*SerialNumberRepo)(nil)

// SerialNumberRepo implementación del registro de series sobre PostgreSQL.
// La columna serial tiene unique global.
type SerialNumberRepo struct {
	q Querier
}

// NewSerialNumberRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSerialNumberRepository(q Querier) *SerialNumberRepo {
	return &SerialNumberRepo{q: q}
}

// Assign inserta en bloque las series contra el movimiento que las ingresó.
// Una violación de unicidad se traduce a ErrDuplicateSerial y aborta la
// transacción del caller: nunca queda una asignación parcial confirmada.
func (r *SerialNumberRepo) Assign(serials []string, variantID, movementID string) error {
	query := `
		INSERT INTO serial_numbers (id, serial, variant_id, stock_movement_id, created_at)
		VALUES ($1, $2, $3, $4, now())`
	for _, serial := range serials {
		_, err := r.q.Exec(context.Background(), query, uuid.New().String(), serial, variantID, movementID)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateSerial
			}
			return fmt.Errorf("assign serial number %q: %w", serial, err)
		}
	}
	return nil
}

// Release elimina las series de la variante. Si alguna no estaba registrada
// para esa variante la operación falla y el caller revierte.
func (r *SerialNumberRepo) Release(serials []string, variantID string) error {
	query := `DELETE FROM serial_numbers WHERE variant_id = $1 AND serial = ANY($2)`
	tag, err := r.q.Exec(context.Background(), query, variantID, serials)
	if err != nil {
		return fmt.Errorf("release serial numbers: %w", err)
	}
	if tag.RowsAffected() != int64(len(serials)) {
		return domain.ErrSerialNotFound
	}
	return nil
}

// ListByMovement lista las series asignadas a un movimiento.
func (r *SerialNumberRepo) ListByMovement(movementID string) ([]*entity.SerialNumber, error) {
	query := `
		SELECT id, serial, variant_id, stock_movement_id, created_at
		FROM serial_numbers WHERE stock_movement_id = $1 ORDER BY serial`
	rows, err := r.q.Query(context.Background(), query, movementID)
	if err != nil {
		return nil, fmt.Errorf("list serial numbers: %w", err)
	}
	defer rows.Close()
	var list []*entity.SerialNumber
	for rows.Next() {
		var sn entity.SerialNumber
		if err := rows.Scan(&sn.ID, &sn.Serial, &sn.VariantID, &sn.StockMovementID, &sn.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan serial number: %w", err)
		}
		list = append(list, &sn)
	}
	return list, rows.Err()
}
