package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appevents "github.com/AllanBico/POS-sub000/internal/application/events"
	"github.com/AllanBico/POS-sub000/internal/application/inventory"
	infraevents "github.com/AllanBico/POS-sub000/internal/infrastructure/events"
	"github.com/AllanBico/POS-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/AllanBico/POS-sub000/internal/interfaces/http"
	"github.com/AllanBico/POS-sub000/pkg/config"
	"github.com/AllanBico/POS-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	variantRepo := postgres.NewVariantRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Bus de eventos opcional: sin REDIS_ADDR los eventos se descartan.
	var publisher appevents.Publisher = appevents.NoopPublisher{}
	if cfg.Redis.Addr != "" {
		redisClient := infraevents.NewRedisClient(cfg.Redis)
		redisPublisher := infraevents.NewRedisPublisher(redisClient)
		defer redisPublisher.Close()
		publisher = redisPublisher
		log.Info().Str("addr", cfg.Redis.Addr).Msg("bus de eventos Redis habilitado")
	}

	receiveGoodsUC := inventory.NewReceiveGoodsUseCase(txRunner, variantRepo, warehouseRepo, storeRepo, publisher, log)
	adjustmentUC := inventory.NewStockAdjustmentUseCase(txRunner, variantRepo, warehouseRepo, storeRepo, publisher, log)
	stockTakeUC := inventory.NewStockTakeUseCase(txRunner, variantRepo, adjustmentUC, publisher, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReceiveGoodsUC: receiveGoodsUC,
		AdjustmentUC:   adjustmentUC,
		StockTakeUC:    stockTakeUC,
		MovementRepo:   movementRepo,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
