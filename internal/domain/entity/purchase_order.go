package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseOrderPending   = "pending"
	PurchaseOrderOrdered   = "ordered"
	PurchaseOrderPartial   = "partial"
	PurchaseOrderReceived  = "received"
	PurchaseOrderCancelled = "cancelled"
)

// PurchaseOrder es el encabezado de una orden de compra a un proveedor,
// destinada a una bodega o tienda (exactamente una).
type PurchaseOrder struct {
	ID           string
	SupplierID   string
	WarehouseID  *string
	StoreID      *string
	Status       string
	OrderDate    time.Time
	ExpectedDate *time.Time
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PurchaseOrderLineItem es un renglón de la orden: cantidad ordenada por
// variante y acumulado recibido. Invariante: ReceivedQuantity <= Quantity.
type PurchaseOrderLineItem struct {
	ID               string
	PurchaseOrderID  string
	VariantID        string
	Quantity         int64
	ReceivedQuantity int64
	UnitCost         decimal.Decimal
}

// Outstanding devuelve la cantidad pendiente por recibir del renglón.
func (li *PurchaseOrderLineItem) Outstanding() int64 {
	return li.Quantity - li.ReceivedQuantity
}

// DerivePurchaseOrderStatus recalcula el estado de la orden a partir de TODOS
// sus renglones: "received" si todos están completos, "partial" si hubo alguna
// recepción, "ordered" si aún no se recibe nada.
func DerivePurchaseOrderStatus(items []*PurchaseOrderLineItem) string {
	if len(items) == 0 {
		return PurchaseOrderOrdered
	}
	allFull := true
	anyReceived := false
	for _, li := range items {
		if li.ReceivedQuantity < li.Quantity {
			allFull = false
		}
		if li.ReceivedQuantity > 0 {
			anyReceived = true
		}
	}
	switch {
	case allFull:
		return PurchaseOrderReceived
	case anyReceived:
		return PurchaseOrderPartial
	}
	return PurchaseOrderOrdered
}
