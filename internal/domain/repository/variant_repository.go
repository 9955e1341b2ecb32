package repository

import "github.com/AllanBico/POS-sub000/internal/domain/entity"

// VariantRepository define el puerto de persistencia para variantes (DIP).
// AdjustStock aplica un delta al total denormalizado con guard de negativo en
// el predicado del UPDATE; es la única vía para mutar StockQuantity.
type VariantRepository interface {
	Create(variant *entity.Variant) error
	GetByID(id string) (*entity.Variant, error)
	// AdjustStock suma delta a StockQuantity. Retorna domain.ErrInsufficientStock
	// si el resultado sería negativo y domain.ErrNotFound si la variante no existe.
	AdjustStock(id string, delta int64) error
}
