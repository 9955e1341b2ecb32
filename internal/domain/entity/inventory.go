package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory es la fila del ledger: cantidad de una variante en una ubicación
// (bodega o tienda, exactamente una). Se crea de forma perezosa con el primer
// movimiento hacia la ubicación y después se actualiza en el sitio.
// Quantity nunca es negativa; el guard está centralizado en el upsert del ledger.
type Inventory struct {
	ID           string
	VariantID    string
	WarehouseID  *string
	StoreID      *string
	Quantity     int64
	MinimumStock int64
	ReorderPoint int64
	CostPrice    decimal.Decimal
	UpdatedAt    time.Time
}

// Location devuelve la referencia de ubicación de la fila.
func (i *Inventory) Location() LocationRef {
	var l LocationRef
	if i.WarehouseID != nil {
		l.WarehouseID = *i.WarehouseID
	}
	if i.StoreID != nil {
		l.StoreID = *i.StoreID
	}
	return l
}
