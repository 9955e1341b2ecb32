package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant representa una unidad vendible (SKU).
// StockQuantity es el total denormalizado sobre todas las ubicaciones; tras cada
// operación confirmada debe ser igual a la suma de las filas de Inventory de la
// variante. Solo lo mutan la recepción de mercancía y la aprobación de ajustes.
type Variant struct {
	ID            string
	SKU           string // código único
	Name          string
	Price         decimal.Decimal // precio de venta unitario
	StockQuantity int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
