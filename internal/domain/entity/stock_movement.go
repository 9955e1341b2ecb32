package entity

import "time"

// Tipos de transacción de un movimiento de stock.
const (
	TransactionStockIn        = "stock_in"
	TransactionStockOut       = "stock_out"
	TransactionTransfer       = "transfer"
	TransactionAdjustment     = "adjustment"
	TransactionOpeningBalance = "opening_balance"
)

// Tipos de origen/destino de un movimiento.
const (
	ReferenceSupplier   = "supplier"
	ReferenceWarehouse  = "warehouse"
	ReferenceStore      = "store"
	ReferenceAdjustment = "adjustment"
)

// StockMovement es el registro de auditoría inmutable de cada cambio de cantidad.
// Quantity es siempre positiva; la dirección la expresan TransactionType y el
// par origen/destino, no el signo. Solo se inserta: nunca se actualiza ni borra.
type StockMovement struct {
	ID              string
	VariantID       string
	Quantity        int64
	TransactionType string
	SourceType      string
	SourceID        string
	DestinationType string
	DestinationID   string
	TransactionDate time.Time
	Notes           string
	CreatedAt       time.Time
	CreatedBy       string
}
