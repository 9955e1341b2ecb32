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

// ReceiveGoodsUseCase reconcilia una recepción de mercancía contra una orden
// de compra de forma transaccional: renglones de la orden, ledger, log de
// movimientos, registro de series y estado de la orden, todo o nada.
type ReceiveGoodsUseCase struct {
	txRunner      TxRunner
	variantRepo   repository.VariantRepository
	warehouseRepo repository.WarehouseRepository
	storeRepo     repository.StoreRepository
	publisher     events.Publisher
	log           *logger.Logger
}

// NewReceiveGoodsUseCase construye el caso de uso.
func NewReceiveGoodsUseCase(
	txRunner TxRunner,
	variantRepo repository.VariantRepository,
	warehouseRepo repository.WarehouseRepository,
	storeRepo repository.StoreRepository,
	publisher events.Publisher,
	log *logger.Logger,
) *ReceiveGoodsUseCase {
	return &ReceiveGoodsUseCase{
		txRunner:      txRunner,
		variantRepo:   variantRepo,
		warehouseRepo: warehouseRepo,
		storeRepo:     storeRepo,
		publisher:     publisher,
		log:           log,
	}
}

// ReceiveLineItemInput renglón recibido: variante, cantidad y series opcionales.
type ReceiveLineItemInput struct {
	VariantID     string
	Quantity      int64
	SerialNumbers []string
}

// ReceiveGoodsInput entrada para registrar una recepción contra una orden.
type ReceiveGoodsInput struct {
	PurchaseOrderID string
	Location        entity.LocationRef
	ReceivedDate    time.Time
	LineItems       []ReceiveLineItemInput
	UserID          string
}

// ReceiveGoodsResult encabezado y renglones creados por la recepción.
type ReceiveGoodsResult struct {
	GoodsReceived *entity.GoodsReceived
	LineItems     []*entity.GoodsReceivedLineItem
	OrderStatus   string
}

// Receive valida el payload, abre una transacción y por cada renglón: acumula
// la cantidad recibida en el renglón de la orden (rechazando sobre-recepción),
// registra el movimiento stock_in, aplica el delta al ledger, incrementa el
// agregado de la variante y asigna las series contra el movimiento. Al final
// recalcula el estado de la orden desde TODOS sus renglones y confirma.
// Cualquier fallo revierte la recepción completa, incluido el encabezado.
func (uc *ReceiveGoodsUseCase) Receive(ctx context.Context, input ReceiveGoodsInput) (*ReceiveGoodsResult, error) {
	if err := uc.validate(&input); err != nil {
		return nil, err
	}

	// Variantes y ubicación deben existir antes de tocar nada.
	for _, li := range input.LineItems {
		variant, err := uc.variantRepo.GetByID(li.VariantID)
		if err != nil {
			return nil, err
		}
		if variant == nil {
			return nil, domain.ErrNotFound
		}
	}
	if err := uc.resolveLocation(input.Location); err != nil {
		return nil, err
	}

	now := time.Now()
	result := &ReceiveGoodsResult{}

	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		order, err := repos.PurchaseOrders.GetByID(input.PurchaseOrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status == entity.PurchaseOrderCancelled {
			return domain.ErrConflict
		}

		header := &entity.GoodsReceived{
			PurchaseOrderID: input.PurchaseOrderID,
			ReceivedDate:    input.ReceivedDate,
			CreatedBy:       input.UserID,
			CreatedAt:       now,
		}
		header.WarehouseID, header.StoreID = locationColumns(input.Location)
		if err := repos.GoodsReceived.Create(header); err != nil {
			return err
		}
		result.GoodsReceived = header

		for _, li := range input.LineItems {
			created, err := uc.receiveLineItem(repos, order, header, li, input, now)
			if err != nil {
				return err
			}
			result.LineItems = append(result.LineItems, created)
		}

		// Estado de la orden desde TODOS sus renglones, no solo los recibidos
		// en esta llamada.
		all, err := repos.PurchaseOrders.ListLineItems(order.ID)
		if err != nil {
			return err
		}
		result.OrderStatus = entity.DerivePurchaseOrderStatus(all)
		return repos.PurchaseOrders.UpdateStatus(order.ID, result.OrderStatus)
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, events.Event{
		Type:       events.TypeGoodsReceived,
		OccurredAt: now,
		Payload: events.GoodsReceivedPayload{
			GoodsReceivedID: result.GoodsReceived.ID,
			PurchaseOrderID: input.PurchaseOrderID,
			OrderStatus:     result.OrderStatus,
			LineItems:       len(result.LineItems),
		},
	})
	return result, nil
}

// receiveLineItem procesa un renglón dentro de la transacción.
func (uc *ReceiveGoodsUseCase) receiveLineItem(
	repos Repos,
	order *entity.PurchaseOrder,
	header *entity.GoodsReceived,
	li ReceiveLineItemInput,
	input ReceiveGoodsInput,
	now time.Time,
) (*entity.GoodsReceivedLineItem, error) {
	// Renglón bloqueado: recepciones concurrentes sobre la misma variante se
	// serializan aquí, y el chequeo de sobre-recepción ve el valor ya acumulado.
	orderItem, err := repos.PurchaseOrders.GetLineItemForUpdate(order.ID, li.VariantID)
	if err != nil {
		return nil, err
	}
	if orderItem == nil {
		return nil, domain.ErrLineItemNotFound
	}

	outstanding := orderItem.Outstanding()
	if li.Quantity > outstanding {
		return nil, domain.ErrOverReceipt
	}
	orderItem.ReceivedQuantity += li.Quantity
	if err := repos.PurchaseOrders.UpdateLineItemReceived(orderItem); err != nil {
		return nil, err
	}

	status := entity.GoodsReceivedPartially
	if li.Quantity == outstanding {
		status = entity.GoodsReceivedFully
	}
	grItem := &entity.GoodsReceivedLineItem{
		GoodsReceivedID:  header.ID,
		VariantID:        li.VariantID,
		ReceivedQuantity: li.Quantity,
		Status:           status,
	}
	if err := repos.GoodsReceived.CreateLineItem(grItem); err != nil {
		return nil, err
	}

	movement := &entity.StockMovement{
		VariantID:       li.VariantID,
		Quantity:        li.Quantity,
		TransactionType: entity.TransactionStockIn,
		SourceType:      entity.ReferenceSupplier,
		SourceID:        order.ID,
		DestinationType: input.Location.Type(),
		DestinationID:   input.Location.ID(),
		TransactionDate: input.ReceivedDate,
		CreatedAt:       now,
		CreatedBy:       input.UserID,
	}
	if err := repos.Movements.Create(movement); err != nil {
		return nil, err
	}

	if _, err := upsertQuantity(repos.Ledger, li.VariantID, input.Location, li.Quantity, now); err != nil {
		return nil, err
	}
	if err := repos.Variants.AdjustStock(li.VariantID, li.Quantity); err != nil {
		return nil, err
	}

	if len(li.SerialNumbers) > 0 {
		if err := repos.Serials.Assign(li.SerialNumbers, li.VariantID, movement.ID); err != nil {
			return nil, err
		}
	}
	return grItem, nil
}

// validate rechaza el payload antes de abrir la transacción (fail fast).
func (uc *ReceiveGoodsUseCase) validate(input *ReceiveGoodsInput) error {
	if input.PurchaseOrderID == "" || input.UserID == "" || !input.Location.Valid() {
		return domain.ErrInvalidInput
	}
	if len(input.LineItems) == 0 {
		return domain.ErrInvalidInput
	}
	if input.ReceivedDate.IsZero() {
		input.ReceivedDate = time.Now()
	}
	seen := make(map[string]struct{}, len(input.LineItems))
	for i := range input.LineItems {
		li := &input.LineItems[i]
		if li.VariantID == "" || li.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		if _, dup := seen[li.VariantID]; dup {
			return domain.ErrInvalidInput
		}
		seen[li.VariantID] = struct{}{}
		serials, err := normalizeSerials(li.SerialNumbers, li.Quantity)
		if err != nil {
			return err
		}
		li.SerialNumbers = serials
	}
	return nil
}

func (uc *ReceiveGoodsUseCase) resolveLocation(loc entity.LocationRef) error {
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

// publish emite el evento de dominio best-effort: un fallo se registra y no
// afecta la transacción ya confirmada.
func (uc *ReceiveGoodsUseCase) publish(ctx context.Context, event events.Event) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, event); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("event", event.Type).Msg("publicar evento de dominio")
	}
}

// locationColumns descompone la unión etiquetada en las columnas
// warehouse_id/store_id (una con valor, la otra nil).
func locationColumns(loc entity.LocationRef) (warehouseID, storeID *string) {
	if loc.WarehouseID != "" {
		id := loc.WarehouseID
		return &id, nil
	}
	id := loc.StoreID
	return nil, &id
}
