package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AllanBico/POS-sub000/internal/application/dto"
	"github.com/AllanBico/POS-sub000/internal/application/inventory"
	"github.com/AllanBico/POS-sub000/internal/domain/entity"
)

// GoodsReceivedHandler maneja las recepciones contra órdenes de compra (protegido).
type GoodsReceivedHandler struct {
	uc *inventory.ReceiveGoodsUseCase
}

// NewGoodsReceivedHandler construye el handler.
func NewGoodsReceivedHandler(uc *inventory.ReceiveGoodsUseCase) *GoodsReceivedHandler {
	return &GoodsReceivedHandler{uc: uc}
}

// Receive registra una recepción: POST /api/purchase-orders/:id/receipts.
func (h *GoodsReceivedHandler) Receive(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ReceiveGoodsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	receivedDate, ok := parseDate(in.ReceivedDate)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "received_date inválida"})
	}

	input := inventory.ReceiveGoodsInput{
		PurchaseOrderID: c.Params("id"),
		Location:        entity.LocationRef{WarehouseID: in.WarehouseID, StoreID: in.StoreID},
		ReceivedDate:    receivedDate,
		UserID:          userID,
	}
	for _, li := range in.LineItems {
		input.LineItems = append(input.LineItems, inventory.ReceiveLineItemInput{
			VariantID:     li.VariantID,
			Quantity:      li.Quantity,
			SerialNumbers: li.SerialNumbers,
		})
	}

	result, err := h.uc.Receive(c.Context(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	resp := dto.GoodsReceivedResponse{
		ID:              result.GoodsReceived.ID,
		PurchaseOrderID: result.GoodsReceived.PurchaseOrderID,
		ReceivedDate:    result.GoodsReceived.ReceivedDate,
		OrderStatus:     result.OrderStatus,
	}
	for _, li := range result.LineItems {
		resp.LineItems = append(resp.LineItems, dto.GoodsReceivedLineItemDTO{
			ID:               li.ID,
			VariantID:        li.VariantID,
			ReceivedQuantity: li.ReceivedQuantity,
			Status:           li.Status,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// parseDate acepta RFC 3339 o fecha simple YYYY-MM-DD; vacío = ahora.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Now(), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
