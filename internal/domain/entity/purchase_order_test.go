package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AllanBico/POS-sub000/internal/domain/entity"
)

func item(ordered, received int64) *entity.PurchaseOrderLineItem {
	return &entity.PurchaseOrderLineItem{Quantity: ordered, ReceivedQuantity: received}
}

// El estado de la orden se deriva siempre de TODOS sus renglones.
func TestDerivePurchaseOrderStatus(t *testing.T) {
	// Nada recibido → sigue "ordered".
	assert.Equal(t, entity.PurchaseOrderOrdered,
		entity.DerivePurchaseOrderStatus([]*entity.PurchaseOrderLineItem{item(20, 0), item(10, 0)}))

	// Alguna recepción sin completar todo → "partial".
	assert.Equal(t, entity.PurchaseOrderPartial,
		entity.DerivePurchaseOrderStatus([]*entity.PurchaseOrderLineItem{item(20, 12), item(10, 0)}))

	// Un renglón completo y otro pendiente sigue siendo "partial".
	assert.Equal(t, entity.PurchaseOrderPartial,
		entity.DerivePurchaseOrderStatus([]*entity.PurchaseOrderLineItem{item(20, 20), item(10, 0)}))

	// Todos los renglones completos → "received".
	assert.Equal(t, entity.PurchaseOrderReceived,
		entity.DerivePurchaseOrderStatus([]*entity.PurchaseOrderLineItem{item(20, 20), item(10, 10)}))

	// Sin renglones no hay nada que recibir.
	assert.Equal(t, entity.PurchaseOrderOrdered, entity.DerivePurchaseOrderStatus(nil))
}

func TestLineItemOutstanding(t *testing.T) {
	assert.Equal(t, int64(8), item(20, 12).Outstanding())
	assert.Equal(t, int64(0), item(10, 10).Outstanding())
}

func TestAdjustmentSignedQuantity(t *testing.T) {
	in := &entity.StockAdjustment{Type: entity.AdjustmentStockIn, AdjustmentQuantity: 5}
	out := &entity.StockAdjustment{Type: entity.AdjustmentStockOut, AdjustmentQuantity: 5}
	assert.Equal(t, int64(5), in.SignedQuantity())
	assert.Equal(t, int64(-5), out.SignedQuantity())
}
