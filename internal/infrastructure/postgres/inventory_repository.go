package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/AllanBico/POS-sub000/internal/domain/entity"
	"github.com/AllanBico/POS-sub000/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// Unique parciales sobre (variant_id, warehouse_id) y (variant_id, store_id)
// respaldan el upsert por ubicación.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, variant_id, warehouse_id, store_id, quantity, minimum_stock, reorder_point, cost_price, updated_at`

// Get obtiene la fila del ledger para (variante, ubicación); fila en cero si no existe.
func (r *InventoryRepo) Get(variantID string, loc entity.LocationRef) (*entity.Inventory, error) {
	return r.get(variantID, loc, false)
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(variantID string, loc entity.LocationRef) (*entity.Inventory, error) {
	return r.get(variantID, loc, true)
}

func (r *InventoryRepo) get(variantID string, loc entity.LocationRef, forUpdate bool) (*entity.Inventory, error) {
	locColumn := "warehouse_id"
	locID := loc.WarehouseID
	if loc.Type() == entity.LocationStore {
		locColumn = "store_id"
		locID = loc.StoreID
	}
	query := fmt.Sprintf(`SELECT %s FROM inventories WHERE variant_id = $1 AND %s = $2`, inventoryColumns, locColumn)
	if forUpdate {
		query += " FOR UPDATE"
	}
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, variantID, locID).Scan(
		&inv.ID, &inv.VariantID, &inv.WarehouseID, &inv.StoreID, &inv.Quantity,
		&inv.MinimumStock, &inv.ReorderPoint, &inv.CostPrice, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Creación perezosa: el caller materializa la fila con Upsert.
			empty := &entity.Inventory{VariantID: variantID, CostPrice: decimal.Zero}
			if loc.Type() == entity.LocationStore {
				id := loc.StoreID
				empty.StoreID = &id
			} else {
				id := loc.WarehouseID
				empty.WarehouseID = &id
			}
			return empty, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// Upsert inserta o actualiza la fila del ledger por (variante, ubicación).
func (r *InventoryRepo) Upsert(inv *entity.Inventory) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	conflict := "(variant_id, warehouse_id) WHERE warehouse_id IS NOT NULL"
	if inv.StoreID != nil {
		conflict = "(variant_id, store_id) WHERE store_id IS NOT NULL"
	}
	query := fmt.Sprintf(`
		INSERT INTO inventories (id, variant_id, warehouse_id, store_id, quantity, minimum_stock, reorder_point, cost_price, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT %s
		DO UPDATE SET quantity = EXCLUDED.quantity, cost_price = EXCLUDED.cost_price, updated_at = now()`, conflict)
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.VariantID, inv.WarehouseID, inv.StoreID, inv.Quantity,
		inv.MinimumStock, inv.ReorderPoint, inv.CostPrice,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// SumByVariant suma la cantidad sobre todas las ubicaciones de la variante.
func (r *InventoryRepo) SumByVariant(variantID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM inventories WHERE variant_id = $1`, variantID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum inventory: %w", err)
	}
	return total, nil
}

// ListByVariant lista las filas del ledger de una variante.
func (r *InventoryRepo) ListByVariant(variantID string) ([]*entity.Inventory, error) {
	query := fmt.Sprintf(`SELECT %s FROM inventories WHERE variant_id = $1 ORDER BY updated_at DESC`, inventoryColumns)
	rows, err := r.q.Query(context.Background(), query, variantID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.VariantID, &inv.WarehouseID, &inv.StoreID, &inv.Quantity,
			&inv.MinimumStock, &inv.ReorderPoint, &inv.CostPrice, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
