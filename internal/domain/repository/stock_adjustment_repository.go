package repository

import "github.com/AllanBico/POS-sub000/internal/domain/entity"

// StockAdjustmentRepository define el puerto de persistencia para ajustes.
// Las series del ajuste son filas hijas ordenadas (stock_adjustment_serials);
// Create y los Get las persisten/cargan junto con el ajuste.
type StockAdjustmentRepository interface {
	Create(adjustment *entity.StockAdjustment) error
	GetByID(id string) (*entity.StockAdjustment, error)
	// GetForUpdate bloquea la fila del ajuste para que dos aprobaciones
	// concurrentes del mismo ajuste se serialicen.
	GetForUpdate(id string) (*entity.StockAdjustment, error)
	// MarkApproved persiste la transición a "approved" (status, aprobador, fecha).
	MarkApproved(adjustment *entity.StockAdjustment) error
}
