package inventory

import (
	"strings"
	"time"

	"github.com/AllanBico/POS-sub000/internal/domain"
	"github.com/AllanBico/POS-sub000/internal/domain/entity"
	"github.com/AllanBico/POS-sub000/internal/domain/repository"
)

// upsertQuantity aplica un delta a la fila del ledger (variante, ubicación)
// dentro de la transacción del caller: bloquea la fila (SELECT FOR UPDATE),
// la crea en cero si no existe, y rechaza cualquier resultado negativo.
// El guard de piso está centralizado aquí: todo caller recibe el mismo
// invariante, sin chequeos duplicados por sitio de llamada.
func upsertQuantity(ledger repository.InventoryRepository, variantID string, loc entity.LocationRef, delta int64, now time.Time) (*entity.Inventory, error) {
	if !loc.Valid() {
		return nil, domain.ErrInvalidInput
	}
	inv, err := ledger.GetForUpdate(variantID, loc)
	if err != nil {
		return nil, err
	}
	newQty := inv.Quantity + delta
	if newQty < 0 {
		return nil, domain.ErrInsufficientStock
	}
	inv.Quantity = newQty
	inv.UpdatedAt = now
	if err := ledger.Upsert(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// normalizeSerials recorta espacios y valida la lista de series de un renglón:
// sin entradas vacías, sin repetidos dentro del payload y, cuando la lista no
// está vacía, con tantas series como unidades.
func normalizeSerials(serials []string, quantity int64) ([]string, error) {
	if len(serials) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(serials))
	seen := make(map[string]struct{}, len(serials))
	for _, s := range serials {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, domain.ErrInvalidInput
		}
		if _, dup := seen[s]; dup {
			return nil, domain.ErrInvalidInput
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if int64(len(out)) != quantity {
		return nil, domain.ErrInvalidInput
	}
	return out, nil
}
