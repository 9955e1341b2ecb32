package entity

import "time"

// SerialNumber identifica una unidad física con serie único (global).
// StockMovementID referencia el movimiento que ingresó la unidad; es nil
// hasta que se asigna. Al salir la unidad del stock la fila se elimina.
type SerialNumber struct {
	ID              string
	Serial          string
	VariantID       string
	StockMovementID *string
	CreatedAt       time.Time
}
