package entity

import "time"

// Estados de un renglón de recepción, derivados de comparar la cantidad
// recibida contra la pendiente del renglón de la orden en esa recepción.
const (
	GoodsReceivedFully     = "fully_received"
	GoodsReceivedPartially = "partially_received"
)

// GoodsReceived es el encabezado de un evento de recepción contra una orden
// de compra, en una bodega o tienda (exactamente una).
type GoodsReceived struct {
	ID              string
	PurchaseOrderID string
	WarehouseID     *string
	StoreID         *string
	ReceivedDate    time.Time
	CreatedBy       string
	CreatedAt       time.Time
}

// GoodsReceivedLineItem es un renglón de la recepción.
type GoodsReceivedLineItem struct {
	ID               string
	GoodsReceivedID  string
	VariantID        string
	ReceivedQuantity int64
	Status           string // fully_received | partially_received
}
