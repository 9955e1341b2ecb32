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

// StockAdjustmentUseCase maneja el ciclo de vida de un ajuste: proponer
// (pending, sin efectos) y aprobar (la única transición con efectos sobre
// ledger, movimientos, series y el agregado de la variante; todo o nada).
type StockAdjustmentUseCase struct {
	txRunner      TxRunner
	variantRepo   repository.VariantRepository
	warehouseRepo repository.WarehouseRepository
	storeRepo     repository.StoreRepository
	publisher     events.Publisher
	log           *logger.Logger
}

// NewStockAdjustmentUseCase construye el caso de uso.
func NewStockAdjustmentUseCase(
	txRunner TxRunner,
	variantRepo repository.VariantRepository,
	warehouseRepo repository.WarehouseRepository,
	storeRepo repository.StoreRepository,
	publisher events.Publisher,
	log *logger.Logger,
) *StockAdjustmentUseCase {
	return &StockAdjustmentUseCase{
		txRunner:      txRunner,
		variantRepo:   variantRepo,
		warehouseRepo: warehouseRepo,
		storeRepo:     storeRepo,
		publisher:     publisher,
		log:           log,
	}
}

// CreateAdjustmentInput entrada para proponer un ajuste.
type CreateAdjustmentInput struct {
	VariantID          string
	Location           entity.LocationRef
	AdjustmentQuantity int64
	Type               string // stock_in | stock_out
	Reason             string
	SerialNumbers      []string
	StockTakeID        string
	UserID             string
}

// Create inserta un ajuste en estado "pending". No muta ledger, movimientos,
// series ni variante: un ajuste pendiente no tiene efectos secundarios.
func (uc *StockAdjustmentUseCase) Create(ctx context.Context, input CreateAdjustmentInput) (*entity.StockAdjustment, error) {
	if err := uc.validate(&input); err != nil {
		return nil, err
	}
	variant, err := uc.variantRepo.GetByID(input.VariantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.resolveLocation(input.Location); err != nil {
		return nil, err
	}

	now := time.Now()
	adjustment := &entity.StockAdjustment{
		VariantID:          input.VariantID,
		AdjustmentQuantity: input.AdjustmentQuantity,
		Type:               input.Type,
		Reason:             input.Reason,
		Status:             entity.AdjustmentPending,
		SerialNumbers:      input.SerialNumbers,
		CreatedBy:          input.UserID,
		CreatedAt:          now,
	}
	adjustment.WarehouseID, adjustment.StoreID = locationColumns(input.Location)
	if input.StockTakeID != "" {
		id := input.StockTakeID
		adjustment.StockTakeID = &id
	}

	err = uc.txRunner.Run(ctx, func(repos Repos) error {
		if adjustment.StockTakeID != nil {
			st, err := repos.StockTakes.GetByID(*adjustment.StockTakeID)
			if err != nil {
				return err
			}
			if st == nil {
				return domain.ErrNotFound
			}
		}
		return repos.Adjustments.Create(adjustment)
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, events.Event{
		Type:       events.TypeAdjustmentCreated,
		OccurredAt: now,
		Payload:    adjustmentPayload(adjustment),
	})
	return adjustment, nil
}

// Approve transiciona el ajuste a "approved" y aplica sus efectos en una sola
// transacción: movimiento de tipo adjustment, delta en el ledger (+/− según el
// tipo), asignación o liberación de series y actualización del agregado de la
// variante. Cualquier fallo revierte también el cambio de estado.
func (uc *StockAdjustmentUseCase) Approve(ctx context.Context, adjustmentID, approverID string) (*entity.StockAdjustment, error) {
	if adjustmentID == "" || approverID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var approved *entity.StockAdjustment

	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		adjustment, err := repos.Adjustments.GetForUpdate(adjustmentID)
		if err != nil {
			return err
		}
		if adjustment == nil {
			return domain.ErrNotFound
		}
		if adjustment.Status != entity.AdjustmentPending {
			return domain.ErrConflict
		}

		adjustment.Status = entity.AdjustmentApproved
		adjustment.ApprovedBy = &approverID
		adjustment.ApprovedAt = &now
		if err := repos.Adjustments.MarkApproved(adjustment); err != nil {
			return err
		}

		loc := adjustment.Location()
		movement := &entity.StockMovement{
			VariantID:       adjustment.VariantID,
			Quantity:        adjustment.AdjustmentQuantity,
			TransactionType: entity.TransactionAdjustment,
			TransactionDate: now,
			Notes:           adjustment.Reason,
			CreatedAt:       now,
			CreatedBy:       approverID,
		}
		if adjustment.Type == entity.AdjustmentStockIn {
			movement.SourceType = entity.ReferenceAdjustment
			movement.SourceID = adjustment.ID
			movement.DestinationType = loc.Type()
			movement.DestinationID = loc.ID()
		} else {
			movement.SourceType = loc.Type()
			movement.SourceID = loc.ID()
			movement.DestinationType = entity.ReferenceAdjustment
			movement.DestinationID = adjustment.ID
		}
		if err := repos.Movements.Create(movement); err != nil {
			return err
		}

		if _, err := upsertQuantity(repos.Ledger, adjustment.VariantID, loc, adjustment.SignedQuantity(), now); err != nil {
			return err
		}

		if len(adjustment.SerialNumbers) > 0 {
			if adjustment.Type == entity.AdjustmentStockIn {
				err = repos.Serials.Assign(adjustment.SerialNumbers, adjustment.VariantID, movement.ID)
			} else {
				err = repos.Serials.Release(adjustment.SerialNumbers, adjustment.VariantID)
			}
			if err != nil {
				return err
			}
		}

		if err := repos.Variants.AdjustStock(adjustment.VariantID, adjustment.SignedQuantity()); err != nil {
			return err
		}
		approved = adjustment
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, events.Event{
		Type:       events.TypeAdjustmentApproved,
		OccurredAt: now,
		Payload:    adjustmentPayload(approved),
	})
	return approved, nil
}

func (uc *StockAdjustmentUseCase) validate(input *CreateAdjustmentInput) error {
	if input.VariantID == "" || input.UserID == "" || input.Reason == "" {
		return domain.ErrInvalidInput
	}
	if !input.Location.Valid() || input.AdjustmentQuantity <= 0 {
		return domain.ErrInvalidInput
	}
	if input.Type != entity.AdjustmentStockIn && input.Type != entity.AdjustmentStockOut {
		return domain.ErrInvalidInput
	}
	serials, err := normalizeSerials(input.SerialNumbers, input.AdjustmentQuantity)
	if err != nil {
		return err
	}
	input.SerialNumbers = serials
	return nil
}

func (uc *StockAdjustmentUseCase) resolveLocation(loc entity.LocationRef) error {
	if loc.WarehouseID != "" {
		wh, err := uc.warehouseRepo.GetByID(loc.WarehouseID)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.ErrNotFound
		}
		return nil
	}
	st, err := uc.storeRepo.GetByID(loc.StoreID)
	if err != nil {
		return err
	}
	if st == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *StockAdjustmentUseCase) publish(ctx context.Context, event events.Event) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, event); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("event", event.Type).Msg("publicar evento de dominio")
	}
}

func adjustmentPayload(a *entity.StockAdjustment) events.AdjustmentPayload {
	return events.AdjustmentPayload{
		AdjustmentID: a.ID,
		VariantID:    a.VariantID,
		Type:         a.Type,
		Quantity:     a.AdjustmentQuantity,
		Status:       a.Status,
	}
}
