package entity

import "time"

// Tipos y estados de un ajuste de stock.
const (
	AdjustmentStockIn  = "stock_in"
	AdjustmentStockOut = "stock_out"

	AdjustmentPending  = "pending"
	AdjustmentApproved = "approved"
)

// StockAdjustment es una corrección propuesta de inventario. Se crea en estado
// "pending" sin efectos secundarios; la aprobación es el único punto donde se
// mutan ledger, movimientos, series y el agregado de la variante.
// SerialNumbers es una relación uno-a-muchos (filas hijas ordenadas), no una
// cadena delimitada.
type StockAdjustment struct {
	ID                 string
	VariantID          string
	WarehouseID        *string
	StoreID            *string
	AdjustmentQuantity int64 // siempre positiva; Type define la dirección
	Type               string
	Reason             string
	Status             string
	SerialNumbers      []string
	StockTakeID        *string
	CreatedBy          string
	ApprovedBy         *string
	CreatedAt          time.Time
	ApprovedAt         *time.Time
}

// Location devuelve la referencia de ubicación del ajuste.
func (a *StockAdjustment) Location() LocationRef {
	var l LocationRef
	if a.WarehouseID != nil {
		l.WarehouseID = *a.WarehouseID
	}
	if a.StoreID != nil {
		l.StoreID = *a.StoreID
	}
	return l
}

// SignedQuantity devuelve la cantidad con el signo que el tipo implica
// sobre el ledger y el agregado de la variante.
func (a *StockAdjustment) SignedQuantity() int64 {
	if a.Type == AdjustmentStockOut {
		return -a.AdjustmentQuantity
	}
	return a.AdjustmentQuantity
}
