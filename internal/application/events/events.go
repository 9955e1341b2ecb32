package events

import (
	"context"
	"time"
)

// Tipos de evento de dominio emitidos tras un commit exitoso.
const (
	TypeGoodsReceived      = "inventory.goods_received"
	TypeAdjustmentCreated  = "inventory.adjustment_created"
	TypeAdjustmentApproved = "inventory.adjustment_approved"
	TypeStockTakeCreated   = "inventory.stock_take_created"
)

// Event es un evento de dominio para el bus de notificaciones.
// Entrega best-effort, a lo sumo una vez: un fallo al publicar no revierte
// la transacción ya confirmada.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// GoodsReceivedPayload datos del evento de recepción.
type GoodsReceivedPayload struct {
	GoodsReceivedID string `json:"goods_received_id"`
	PurchaseOrderID string `json:"purchase_order_id"`
	OrderStatus     string `json:"order_status"`
	LineItems       int    `json:"line_items"`
}

// AdjustmentPayload datos de los eventos de ajuste (creado y aprobado).
type AdjustmentPayload struct {
	AdjustmentID string `json:"adjustment_id"`
	VariantID    string `json:"variant_id"`
	Type         string `json:"adjustment_type"`
	Quantity     int64  `json:"quantity"`
	Status       string `json:"status"`
}

// StockTakePayload datos del evento de conteo físico.
type StockTakePayload struct {
	StockTakeID string `json:"stock_take_id"`
	VariantID   string `json:"variant_id"`
	Difference  int64  `json:"difference"`
}

// Publisher publica eventos de dominio hacia el bus de notificaciones.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher descarta los eventos (tests, despliegues sin bus).
type NoopPublisher struct{}

// Publish no hace nada.
func (NoopPublisher) Publish(ctx context.Context, event Event) error { return nil }
