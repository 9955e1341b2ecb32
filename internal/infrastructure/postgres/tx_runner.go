package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AllanBico/POS-sub000/internal/application/inventory"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repositorios atados a la tx
// y hace Commit o Rollback. Ningún procesador escribe por fuera de aquí.
func (r *TxRunner) Run(ctx context.Context, fn func(repos inventory.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := inventory.Repos{
		Variants:       NewVariantRepository(tx),
		Ledger:         NewInventoryRepository(tx),
		Movements:      NewStockMovementRepository(tx),
		Serials:        NewSerialNumberRepository(tx),
		PurchaseOrders: NewPurchaseOrderRepository(tx),
		GoodsReceived:  NewGoodsReceivedRepository(tx),
		Adjustments:    NewStockAdjustmentRepository(tx),
		StockTakes:     NewStockTakeRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
