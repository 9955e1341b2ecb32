package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/AllanBico/POS-sub000/internal/domain/entity"
	"github.com/AllanBico/POS-sub000/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)
var _ repository.StoreRepository = (*StoreRepo)(nil)

// WarehouseRepo implementación de WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una bodega.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	if warehouse.ID == "" {
		warehouse.ID = uuid.New().String()
	}
	query := `
		INSERT INTO warehouses (id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())`
	_, err := r.q.Exec(context.Background(), query, warehouse.ID, warehouse.Name, warehouse.Address)
	if err != nil {
		return fmt.Errorf("create warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID (nil si no existe).
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `SELECT id, name, address, created_at, updated_at FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, id).Scan(&w.ID, &w.Name, &w.Address, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// StoreRepo implementación de StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una tienda.
func (r *StoreRepo) Create(store *entity.Store) error {
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stores (id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())`
	_, err := r.q.Exec(context.Background(), query, store.ID, store.Name, store.Address)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID (nil si no existe).
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	query := `SELECT id, name, address, created_at, updated_at FROM stores WHERE id = $1`
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Name, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}
