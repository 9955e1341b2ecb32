package repository

import "github.com/AllanBico/POS-sub000/internal/domain/entity"

// SerialNumberRepository define el puerto del registro de números de serie.
// Solo lo usan la recepción de mercancía y la aprobación de ajustes; nunca el
// CRUD genérico.
type SerialNumberRepository interface {
	// Assign inserta las series contra el movimiento que las ingresó.
	// Retorna domain.ErrDuplicateSerial si alguna ya existe (unicidad global).
	Assign(serials []string, variantID, movementID string) error
	// Release elimina las series de la variante. Retorna domain.ErrSerialNotFound
	// si alguna no está registrada para esa variante.
	Release(serials []string, variantID string) error
	ListByMovement(movementID string) ([]*entity.SerialNumber, error)
}
