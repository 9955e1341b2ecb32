package repository

import "github.com/AllanBico/POS-sub000/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para bodegas (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
}

// StoreRepository define el puerto de persistencia para tiendas (DIP).
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
}
