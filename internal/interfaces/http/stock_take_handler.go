package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AllanBico/POS-sub000/internal/application/dto"
	"github.com/AllanBico/POS-sub000/internal/application/inventory"
	"github.com/AllanBico/POS-sub000/internal/domain/entity"
	"github.com/AllanBico/POS-sub000/internal/domain/repository"
)

// StockTakeHandler maneja conteos físicos y la consulta del log de movimientos (protegido).
type StockTakeHandler struct {
	uc           *inventory.StockTakeUseCase
	movementRepo repository.StockMovementRepository
}

// NewStockTakeHandler construye el handler.
func NewStockTakeHandler(uc *inventory.StockTakeUseCase, movementRepo repository.StockMovementRepository) *StockTakeHandler {
	return &StockTakeHandler{uc: uc, movementRepo: movementRepo}
}

// Create registra un conteo físico: POST /api/stock-takes.
func (h *StockTakeHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateStockTakeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	stockTake, err := h.uc.Create(c.Context(), inventory.CreateStockTakeInput{
		VariantID:        in.VariantID,
		Location:         entity.LocationRef{WarehouseID: in.WarehouseID, StoreID: in.StoreID},
		PhysicalQuantity: in.PhysicalQuantity,
		Notes:            in.Notes,
		UserID:           userID,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(stockTakeDTO(stockTake))
}

// SeedAdjustment siembra un ajuste desde la diferencia del conteo:
// POST /api/stock-takes/:id/adjustments.
func (h *StockTakeHandler) SeedAdjustment(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SeedAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	adjustment, err := h.uc.CreateAdjustment(c.Context(), c.Params("id"), in.Reason, userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(adjustmentDTO(adjustment))
}

// ListMovements consulta el log de una variante: GET /api/variants/:id/movements.
func (h *StockTakeHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	movements, err := h.movementRepo.ListByVariant(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return errorResponse(c, err)
	}
	list := make([]dto.StockMovementDTO, 0, len(movements))
	for _, m := range movements {
		list = append(list, dto.StockMovementDTO{
			ID:              m.ID,
			VariantID:       m.VariantID,
			Quantity:        m.Quantity,
			TransactionType: m.TransactionType,
			SourceType:      m.SourceType,
			SourceID:        m.SourceID,
			DestinationType: m.DestinationType,
			DestinationID:   m.DestinationID,
			TransactionDate: m.TransactionDate,
			Notes:           m.Notes,
			CreatedBy:       m.CreatedBy,
		})
	}
	return c.JSON(fiber.Map{"total": len(list), "movements": list})
}

func stockTakeDTO(st *entity.StockTake) dto.StockTakeResponse {
	return dto.StockTakeResponse{
		ID:               st.ID,
		VariantID:        st.VariantID,
		WarehouseID:      st.WarehouseID,
		StoreID:          st.StoreID,
		SystemQuantity:   st.SystemQuantity,
		PhysicalQuantity: st.PhysicalQuantity,
		Difference:       st.Difference,
	}
}
