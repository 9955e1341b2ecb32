package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario (multi-bodega).
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store representa una tienda/punto de venta que también mantiene inventario.
type Store struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
