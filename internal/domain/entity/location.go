package entity

// Tipos de ubicación física de inventario.
const (
	LocationWarehouse = "warehouse"
	LocationStore     = "store"
)

// LocationRef referencia una ubicación: bodega o tienda, exactamente una.
// Se usa como unión etiquetada en el ledger, los movimientos y los ajustes.
type LocationRef struct {
	WarehouseID string
	StoreID     string
}

// Valid indica si la referencia tiene exactamente una ubicación definida.
func (l LocationRef) Valid() bool {
	return (l.WarehouseID != "") != (l.StoreID != "")
}

// Type devuelve "warehouse" o "store" (cadena vacía si la referencia es inválida).
func (l LocationRef) Type() string {
	switch {
	case l.WarehouseID != "" && l.StoreID == "":
		return LocationWarehouse
	case l.StoreID != "" && l.WarehouseID == "":
		return LocationStore
	}
	return ""
}

// ID devuelve el identificador de la ubicación referenciada.
func (l LocationRef) ID() string {
	if l.WarehouseID != "" {
		return l.WarehouseID
	}
	return l.StoreID
}
