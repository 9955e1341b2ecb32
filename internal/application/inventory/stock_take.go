package inventory

import (
	"context"
	"time"

	"github.com/AllanBico/POS-sub000/internal/application/events"
	"github.com/AllanBico/POS-sub000/internal/domain"
	"github.com/AllanBico/POS-sub000/internal/domain/entity"
	"github.com/AllanBico/POS-sub000/internal/domain/repository"
	"github.com/AllanBico/POS-sub000/pkg/logger"
)

// StockTakeUseCase registra conteos físicos (sistema vs contado) y puede
// sembrar un ajuste pendiente a partir de la diferencia. El conteo por sí
// mismo no muta el ledger.
type StockTakeUseCase struct {
	txRunner     TxRunner
	variantRepo  repository.VariantRepository
	adjustmentUC *StockAdjustmentUseCase
	publisher    events.Publisher
	log          *logger.Logger
}

// NewStockTakeUseCase construye el caso de uso.
func NewStockTakeUseCase(
	txRunner TxRunner,
	variantRepo repository.VariantRepository,
	adjustmentUC *StockAdjustmentUseCase,
	publisher events.Publisher,
	log *logger.Logger,
) *StockTakeUseCase {
	return &StockTakeUseCase{
		txRunner:     txRunner,
		variantRepo:  variantRepo,
		adjustmentUC: adjustmentUC,
		publisher:    publisher,
		log:          log,
	}
}

// CreateStockTakeInput entrada para registrar un conteo físico.
type CreateStockTakeInput struct {
	VariantID        string
	Location         entity.LocationRef
	PhysicalQuantity int64
	Notes            string
	UserID           string
}

// Create lee la cantidad del ledger como cantidad en sistema, calcula la
// diferencia contra lo contado y persiste el conteo.
func (uc *StockTakeUseCase) Create(ctx context.Context, input CreateStockTakeInput) (*entity.StockTake, error) {
	if input.VariantID == "" || input.UserID == "" || !input.Location.Valid() || input.PhysicalQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	variant, err := uc.variantRepo.GetByID(input.VariantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	stockTake := &entity.StockTake{
		VariantID:        input.VariantID,
		PhysicalQuantity: input.PhysicalQuantity,
		Notes:            input.Notes,
		CreatedBy:        input.UserID,
		CreatedAt:        now,
	}
	stockTake.WarehouseID, stockTake.StoreID = locationColumns(input.Location)

	err = uc.txRunner.Run(ctx, func(repos Repos) error {
		inv, err := repos.Ledger.Get(input.VariantID, input.Location)
		if err != nil {
			return err
		}
		stockTake.SystemQuantity = inv.Quantity
		stockTake.Difference = input.PhysicalQuantity - inv.Quantity
		return repos.StockTakes.Create(stockTake)
	})
	if err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		event := events.Event{
			Type:       events.TypeStockTakeCreated,
			OccurredAt: now,
			Payload: events.StockTakePayload{
				StockTakeID: stockTake.ID,
				VariantID:   stockTake.VariantID,
				Difference:  stockTake.Difference,
			},
		}
		if err := uc.publisher.Publish(ctx, event); err != nil && uc.log != nil {
			uc.log.Warn().Err(err).Str("event", event.Type).Msg("publicar evento de dominio")
		}
	}
	return stockTake, nil
}

// CreateAdjustment siembra un ajuste pendiente desde la diferencia del conteo:
// diferencia positiva → stock_in, negativa → stock_out. Una diferencia cero no
// tiene nada que ajustar.
func (uc *StockTakeUseCase) CreateAdjustment(ctx context.Context, stockTakeID, reason, userID string) (*entity.StockAdjustment, error) {
	if stockTakeID == "" {
		return nil, domain.ErrInvalidInput
	}

	var stockTake *entity.StockTake
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		st, err := repos.StockTakes.GetByID(stockTakeID)
		if err != nil {
			return err
		}
		if st == nil {
			return domain.ErrNotFound
		}
		stockTake = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	if stockTake.Difference == 0 {
		return nil, domain.ErrConflict
	}

	adjType := entity.AdjustmentStockIn
	quantity := stockTake.Difference
	if quantity < 0 {
		adjType = entity.AdjustmentStockOut
		quantity = -quantity
	}
	return uc.adjustmentUC.Create(ctx, CreateAdjustmentInput{
		VariantID:          stockTake.VariantID,
		Location:           stockTake.Location(),
		AdjustmentQuantity: quantity,
		Type:               adjType,
		Reason:             reason,
		StockTakeID:        stockTakeID,
		UserID:             userID,
	})
}
