package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AllanBico/POS-sub000/internal/application/dto"
	"github.com/AllanBico/POS-sub000/internal/application/inventory"
	"github.com/AllanBico/POS-sub000/internal/domain/entity"
)

// StockAdjustmentHandler maneja proponer y aprobar ajustes (protegido).
type StockAdjustmentHandler struct {
	uc *inventory.StockAdjustmentUseCase
}

// NewStockAdjustmentHandler construye el handler.
func NewStockAdjustmentHandler(uc *inventory.StockAdjustmentUseCase) *StockAdjustmentHandler {
	return &StockAdjustmentHandler{uc: uc}
}

// Create propone un ajuste: POST /api/stock-adjustments.
func (h *StockAdjustmentHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	adjustment, err := h.uc.Create(c.Context(), inventory.CreateAdjustmentInput{
		VariantID:          in.VariantID,
		Location:           entity.LocationRef{WarehouseID: in.WarehouseID, StoreID: in.StoreID},
		AdjustmentQuantity: in.AdjustmentQuantity,
		Type:               in.Type,
		Reason:             in.Reason,
		SerialNumbers:      in.SerialNumbers,
		StockTakeID:        in.StockTakeID,
		UserID:             userID,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(adjustmentDTO(adjustment))
}

// Approve aprueba un ajuste pendiente: POST /api/stock-adjustments/:id/approve.
// Restringido por rol en el router: la aprobación es la única transición con
// efectos sobre el inventario.
func (h *StockAdjustmentHandler) Approve(c *fiber.Ctx) error {
	approverID := GetUserID(c)
	if approverID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	adjustment, err := h.uc.Approve(c.Context(), c.Params("id"), approverID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(adjustmentDTO(adjustment))
}

func adjustmentDTO(a *entity.StockAdjustment) dto.StockAdjustmentResponse {
	return dto.StockAdjustmentResponse{
		ID:                 a.ID,
		VariantID:          a.VariantID,
		WarehouseID:        a.WarehouseID,
		StoreID:            a.StoreID,
		AdjustmentQuantity: a.AdjustmentQuantity,
		Type:               a.Type,
		Reason:             a.Reason,
		Status:             a.Status,
		SerialNumbers:      a.SerialNumbers,
		StockTakeID:        a.StockTakeID,
		CreatedBy:          a.CreatedBy,
		ApprovedBy:         a.ApprovedBy,
	}
}
