package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/AllanBico/POS-sub000/internal/domain/entity"
	"github.com/AllanBico/POS-sub000/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de órdenes de compra sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste el encabezado y sus renglones.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder, items []*entity.PurchaseOrderLineItem) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchase_orders (id, supplier_id, warehouse_id, store_id, status, order_date, expected_date, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.SupplierID, order.WarehouseID, order.StoreID, order.Status,
		order.OrderDate, order.ExpectedDate, order.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create purchase order: %w", err)
	}
	itemQuery := `
		INSERT INTO purchase_order_line_items (id, purchase_order_id, variant_id, quantity, received_quantity, unit_cost)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, li := range items {
		if li.ID == "" {
			li.ID = uuid.New().String()
		}
		li.PurchaseOrderID = order.ID
		if _, err := r.q.Exec(context.Background(), itemQuery,
			li.ID, li.PurchaseOrderID, li.VariantID, li.Quantity, li.ReceivedQuantity, li.UnitCost,
		); err != nil {
			return fmt.Errorf("create purchase order line item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene el encabezado de la orden (nil si no existe).
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, warehouse_id, store_id, status, order_date, expected_date, created_by, created_at, updated_at
		FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.SupplierID, &o.WarehouseID, &o.StoreID, &o.Status,
		&o.OrderDate, &o.ExpectedDate, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &o, nil
}

// GetLineItemForUpdate carga el renglón por (orden, variante) bloqueando la fila.
// Recepciones concurrentes sobre el mismo renglón se serializan aquí, de modo
// que el chequeo de sobre-recepción siempre ve el acumulado vigente.
func (r *PurchaseOrderRepo) GetLineItemForUpdate(purchaseOrderID, variantID string) (*entity.PurchaseOrderLineItem, error) {
	query := `
		SELECT id, purchase_order_id, variant_id, quantity, received_quantity, unit_cost
		FROM purchase_order_line_items
		WHERE purchase_order_id = $1 AND variant_id = $2
		FOR UPDATE`
	var li entity.PurchaseOrderLineItem
	err := r.q.QueryRow(context.Background(), query, purchaseOrderID, variantID).Scan(
		&li.ID, &li.PurchaseOrderID, &li.VariantID, &li.Quantity, &li.ReceivedQuantity, &li.UnitCost,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get line item for update: %w", err)
	}
	return &li, nil
}

// UpdateLineItemReceived persiste el acumulado recibido del renglón.
func (r *PurchaseOrderRepo) UpdateLineItemReceived(item *entity.PurchaseOrderLineItem) error {
	query := `UPDATE purchase_order_line_items SET received_quantity = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.ReceivedQuantity)
	if err != nil {
		return fmt.Errorf("update line item received: %w", err)
	}
	return nil
}

// ListLineItems lista todos los renglones de la orden.
func (r *PurchaseOrderRepo) ListLineItems(purchaseOrderID string) ([]*entity.PurchaseOrderLineItem, error) {
	query := `
		SELECT id, purchase_order_id, variant_id, quantity, received_quantity, unit_cost
		FROM purchase_order_line_items WHERE purchase_order_id = $1`
	rows, err := r.q.Query(context.Background(), query, purchaseOrderID)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrderLineItem
	for rows.Next() {
		var li entity.PurchaseOrderLineItem
		if err := rows.Scan(&li.ID, &li.PurchaseOrderID, &li.VariantID, &li.Quantity, &li.ReceivedQuantity, &li.UnitCost); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		list = append(list, &li)
	}
	return list, rows.Err()
}

// UpdateStatus persiste el estado recalculado de la orden.
func (r *PurchaseOrderRepo) UpdateStatus(id, status string) error {
	query := `UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	return nil
}
