package repository

import "github.com/AllanBico/POS-sub000/internal/domain/entity"

// StockMovementRepository define el puerto del log de movimientos.
// Solo inserta: el log es append-only, sin update ni delete.
type StockMovementRepository interface {
	// Create persiste el movimiento y rellena su ID para correlación con series.
	Create(movement *entity.StockMovement) error
	ListByVariant(variantID string, limit, offset int) ([]*entity.StockMovement, error)
}
