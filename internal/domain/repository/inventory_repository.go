package repository

import "github.com/AllanBico/POS-sub000/internal/domain/entity"

// InventoryRepository define el puerto del ledger: la fila de cantidad por
// (variante, ubicación). Usado dentro de transacciones para garantizar
// consistencia.
type InventoryRepository interface {
	// Get obtiene la fila del ledger; si no existe devuelve una fila en cero
	// (creación perezosa: la fila real se materializa en el primer Upsert).
	Get(variantID string, loc entity.LocationRef) (*entity.Inventory, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(variantID string, loc entity.LocationRef) (*entity.Inventory, error)
	Upsert(inv *entity.Inventory) error
	// SumByVariant suma las cantidades de todas las ubicaciones de la variante.
	SumByVariant(variantID string) (int64, error)
	ListByVariant(variantID string) ([]*entity.Inventory, error)
}
