package inventory

import (
	"context"

	"github.com/AllanBico/POS-sub000/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción de BD.
// Todo lo que un procesador lee o escribe dentro de la operación pasa por
// este conjunto; nada escribe por fuera del TxRunner.
type Repos struct {
	Variants       repository.VariantRepository
	Ledger         repository.InventoryRepository
	Movements      repository.StockMovementRepository
	Serials        repository.SerialNumberRepository
	PurchaseOrders repository.PurchaseOrderRepository
	GoodsReceived  repository.GoodsReceivedRepository
	Adjustments    repository.StockAdjustmentRepository
	StockTakes     repository.StockTakeRepository
}

// TxRunner ejecuta fn dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Si fn retorna error todo se revierte; si retorna nil todo
// se confirma junto. Garantiza la atomicidad del motor de inventario.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}
