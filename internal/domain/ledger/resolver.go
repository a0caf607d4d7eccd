package ledger

import "github.com/jhoicas/finanzas-api/internal/domain/entity"

// EntityRefs es el conjunto de identificadores de cuentas, bolsillos y
// subbolsillos cuyos saldos cacheados pueden estar desactualizados tras una
// mutación de movimientos. El recalculador tolera superconjuntos: incluir un
// ID de más solo cuesta una relectura.
type EntityRefs struct {
	AccountIDs   map[string]bool
	PocketIDs    map[string]bool
	SubPocketIDs map[string]bool
}

// NewEntityRefs construye un conjunto vacío.
func NewEntityRefs() EntityRefs {
	return EntityRefs{
		AccountIDs:   make(map[string]bool),
		PocketIDs:    make(map[string]bool),
		SubPocketIDs: make(map[string]bool),
	}
}

// Add registra los padres referenciados por un movimiento.
func (r EntityRefs) Add(m *entity.Movement) {
	if m.AccountID != "" {
		r.AccountIDs[m.AccountID] = true
	}
	if m.PocketID != "" {
		r.PocketIDs[m.PocketID] = true
	}
	if m.SubPocketID != "" {
		r.SubPocketIDs[m.SubPocketID] = true
	}
}

// AddAccount, AddPocket y AddSubPocket registran IDs sueltos.
func (r EntityRefs) AddAccount(id string) {
	if id != "" {
		r.AccountIDs[id] = true
	}
}

func (r EntityRefs) AddPocket(id string) {
	if id != "" {
		r.PocketIDs[id] = true
	}
}

func (r EntityRefs) AddSubPocket(id string) {
	if id != "" {
		r.SubPocketIDs[id] = true
	}
}

// Empty indica si no hay nada que recalcular.
func (r EntityRefs) Empty() bool {
	return len(r.AccountIDs) == 0 && len(r.PocketIDs) == 0 && len(r.SubPocketIDs) == 0
}

// Affected resuelve los padres afectados por un movimiento en su estado
// actual. Se usa en create, delete y en los cambios de estado pendiente.
func Affected(m *entity.Movement) EntityRefs {
	refs := NewEntityRefs()
	refs.Add(m)
	return refs
}

// AffectedAcrossChange resuelve los padres afectados por un update: la unión
// de los IDs del estado anterior y el nuevo por categoría. Si el movimiento
// cambió de bolsillo, tanto el origen como el destino quedan sucios.
func AffectedAcrossChange(old, updated *entity.Movement) EntityRefs {
	refs := NewEntityRefs()
	refs.Add(old)
	refs.Add(updated)
	return refs
}

// RequiresRecalculation decide si un update obliga a recalcular saldos: true
// si cambió monto, tipo, alguna referencia de padre o alguno de los dos
// estados de ciclo de vida. Una edición solo de metadatos (notas, fecha
// mostrada) no dispara la cascada.
func RequiresRecalculation(old, updated *entity.Movement) bool {
	return !old.Amount.Equal(updated.Amount) ||
		old.Type != updated.Type ||
		old.AccountID != updated.AccountID ||
		old.PocketID != updated.PocketID ||
		old.SubPocketID != updated.SubPocketID ||
		old.IsPending != updated.IsPending ||
		old.IsOrphaned != updated.IsOrphaned
}
