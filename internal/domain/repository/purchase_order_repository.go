package repository

import "github.com/AllanBico/POS-sub000/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de
// compra y sus renglones.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder, items []*entity.PurchaseOrderLineItem) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	// GetLineItemForUpdate carga el renglón por (orden, variante) bloqueando la
	// fila, para que recepciones concurrentes sobre el mismo renglón se
	// serialicen antes del chequeo de sobre-recepción.
	GetLineItemForUpdate(purchaseOrderID, variantID string) (*entity.PurchaseOrderLineItem, error)
	UpdateLineItemReceived(item *entity.PurchaseOrderLineItem) error
	ListLineItems(purchaseOrderID string) ([]*entity.PurchaseOrderLineItem, error)
	UpdateStatus(id, status string) error
}
