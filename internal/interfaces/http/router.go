package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AllanBico/POS-sub000/internal/application/inventory"
	"github.com/AllanBico/POS-sub000/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReceiveGoodsUC *inventory.ReceiveGoodsUseCase
	AdjustmentUC   *inventory.StockAdjustmentUseCase
	StockTakeUC    *inventory.StockTakeUseCase
	MovementRepo   repository.StockMovementRepository
	JWTSecret      string
}

// Router registra las rutas de la API. Todas las operaciones del motor de
// inventario requieren Bearer Token; la aprobación de ajustes además exige rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	receiving := NewGoodsReceivedHandler(deps.ReceiveGoodsUC)
	api.Post("/purchase-orders/:id/receipts", receiving.Receive)

	adjustments := NewStockAdjustmentHandler(deps.AdjustmentUC)
	api.Post("/stock-adjustments", adjustments.Create)
	api.Post("/stock-adjustments/:id/approve", RequireRole("admin", "supervisor"), adjustments.Approve)

	stockTakes := NewStockTakeHandler(deps.StockTakeUC, deps.MovementRepo)
	api.Post("/stock-takes", stockTakes.Create)
	api.Post("/stock-takes/:id/adjustments", stockTakes.SeedAdjustment)
	api.Get("/variants/:id/movements", stockTakes.ListMovements)
}
