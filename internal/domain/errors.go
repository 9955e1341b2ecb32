package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrLineItemNotFound  = errors.New("renglón de la orden de compra no encontrado")
	ErrOverReceipt       = errors.New("la cantidad recibida excede la cantidad ordenada")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrDuplicateSerial   = errors.New("número de serie ya registrado")
	ErrSerialNotFound    = errors.New("número de serie no registrado para la variante")
	ErrConflict          = errors.New("conflicto con el estado actual")
)
