package dto

import "time"

// ReceiveLineItemRequest renglón recibido en una recepción.
type ReceiveLineItemRequest struct {
	VariantID     string   `json:"variant_id"`
	Quantity      int64    `json:"quantity"`
	SerialNumbers []string `json:"serial_numbers,omitempty"`
}

// ReceiveGoodsRequest body para POST /api/purchase-orders/:id/receipts.
// warehouse_id o store_id, exactamente uno.
type ReceiveGoodsRequest struct {
	WarehouseID  string                   `json:"warehouse_id,omitempty"`
	StoreID      string                   `json:"store_id,omitempty"`
	ReceivedDate string                   `json:"received_date,omitempty"` // RFC 3339 o YYYY-MM-DD
	LineItems    []ReceiveLineItemRequest `json:"line_items"`
}

// GoodsReceivedLineItemDTO renglón creado por la recepción.
type GoodsReceivedLineItemDTO struct {
	ID               string `json:"id"`
	VariantID        string `json:"variant_id"`
	ReceivedQuantity int64  `json:"received_quantity"`
	Status           string `json:"status"`
}

// GoodsReceivedResponse recepción creada más el estado resultante de la orden.
type GoodsReceivedResponse struct {
	ID              string                     `json:"id"`
	PurchaseOrderID string                     `json:"purchase_order_id"`
	ReceivedDate    time.Time                  `json:"received_date"`
	OrderStatus     string                     `json:"order_status"`
	LineItems       []GoodsReceivedLineItemDTO `json:"line_items"`
}

// CreateAdjustmentRequest body para POST /api/stock-adjustments.
type CreateAdjustmentRequest struct {
	VariantID          string   `json:"variant_id"`
	WarehouseID        string   `json:"warehouse_id,omitempty"`
	StoreID            string   `json:"store_id,omitempty"`
	AdjustmentQuantity int64    `json:"adjustment_quantity"`
	Type               string   `json:"type"` // stock_in | stock_out
	Reason             string   `json:"reason"`
	SerialNumbers      []string `json:"serial_numbers,omitempty"`
	StockTakeID        string   `json:"stock_take_id,omitempty"`
}

// StockAdjustmentResponse representación de un ajuste.
type StockAdjustmentResponse struct {
	ID                 string   `json:"id"`
	VariantID          string   `json:"variant_id"`
	WarehouseID        *string  `json:"warehouse_id,omitempty"`
	StoreID            *string  `json:"store_id,omitempty"`
	AdjustmentQuantity int64    `json:"adjustment_quantity"`
	Type               string   `json:"type"`
	Reason             string   `json:"reason"`
	Status             string   `json:"status"`
	SerialNumbers      []string `json:"serial_numbers,omitempty"`
	StockTakeID        *string  `json:"stock_take_id,omitempty"`
	CreatedBy          string   `json:"created_by"`
	ApprovedBy         *string  `json:"approved_by,omitempty"`
}

// CreateStockTakeRequest body para POST /api/stock-takes.
type CreateStockTakeRequest struct {
	VariantID        string `json:"variant_id"`
	WarehouseID      string `json:"warehouse_id,omitempty"`
	StoreID          string `json:"store_id,omitempty"`
	PhysicalQuantity int64  `json:"physical_quantity"`
	Notes            string `json:"notes,omitempty"`
}

// StockTakeResponse representación de un conteo físico.
type StockTakeResponse struct {
	ID               string  `json:"id"`
	VariantID        string  `json:"variant_id"`
	WarehouseID      *string `json:"warehouse_id,omitempty"`
	StoreID          *string `json:"store_id,omitempty"`
	SystemQuantity   int64   `json:"system_quantity"`
	PhysicalQuantity int64   `json:"physical_quantity"`
	Difference       int64   `json:"difference"`
}

// SeedAdjustmentRequest body para POST /api/stock-takes/:id/adjustments.
type SeedAdjustmentRequest struct {
	Reason string `json:"reason"`
}

// StockMovementDTO movimiento del log (solo lectura).
type StockMovementDTO struct {
	ID              string    `json:"id"`
	VariantID       string    `json:"variant_id"`
	Quantity        int64     `json:"quantity"`
	TransactionType string    `json:"transaction_type"`
	SourceType      string    `json:"source_type"`
	SourceID        string    `json:"source_id"`
	DestinationType string    `json:"destination_type"`
	DestinationID   string    `json:"destination_id"`
	TransactionDate time.Time `json:"transaction_date"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       string    `json:"created_by,omitempty"`
}
