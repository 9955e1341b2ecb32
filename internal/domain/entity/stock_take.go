package entity

import "time"

// StockTake es un conteo físico: cantidad en sistema vs cantidad contada para
// una variante en una ubicación. La diferencia puede alimentar un ajuste.
type StockTake struct {
	ID               string
	VariantID        string
	WarehouseID      *string
	StoreID          *string
	SystemQuantity   int64
	PhysicalQuantity int64
	Difference       int64 // PhysicalQuantity - SystemQuantity
	Notes            string
	CreatedBy        string
	CreatedAt        time.Time
}

// Location devuelve la referencia de ubicación del conteo.
func (s *StockTake) Location() LocationRef {
	var l LocationRef
	if s.WarehouseID != nil {
		l.WarehouseID = *s.WarehouseID
	}
	if s.StoreID != nil {
		l.StoreID = *s.StoreID
	}
	return l
}
