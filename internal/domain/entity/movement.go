package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-api/internal/domain"
)

// Tipos de movimiento.
const (
	MovementTypeNormalIncome  = "NORMAL_INCOME"  // ingreso en bolsillo normal
	MovementTypeNormalExpense = "NORMAL_EXPENSE" // gasto en bolsillo normal
	MovementTypeFixedIncome   = "FIXED_INCOME"   // ingreso en subbolsillo de gasto fijo
	MovementTypeFixedExpense  = "FIXED_EXPENSE"  // gasto en subbolsillo de gasto fijo
)

// Valores por defecto del snapshot de huérfanos, para mantener legibles
// registros antiguos a los que les falte algún campo.
const (
	OrphanDefaultName     = "Unknown"
	OrphanDefaultCurrency = "USD"
)

// ValidMovementType indica si el tipo pertenece al conjunto de cuatro variantes.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeNormalIncome, MovementTypeNormalExpense,
		MovementTypeFixedIncome, MovementTypeFixedExpense:
		return true
	}
	return false
}

// Movement es el registro de un evento financiero. Es la fuente de verdad de
// todos los saldos: los campos Balance de Account/Pocket/SubPocket son
// proyecciones recalculables a partir del log de movimientos.
//
// Lleva dos estados binarios independientes:
//   - IsPending: registrado pero excluido de la agregación hasta aplicarse.
//   - IsOrphaned: su cuenta/bolsillo fue eliminado; se excluye de la agregación
//     y conserva un snapshot legible del padre para restaurarlo después.
type Movement struct {
	ID            string
	UserID        string
	Type          string
	AccountID     string
	PocketID      string
	SubPocketID   string // solo con bolsillos de tipo fijo; vacío = sin subbolsillo
	Amount        decimal.Decimal
	DisplayedDate time.Time // fecha que el usuario asigna al movimiento, no la de creación
	Notes         string
	IsPending     bool
	IsOrphaned    bool

	// Snapshot del padre eliminado; poblado solo mientras IsOrphaned es true.
	OrphanedAccountName     string
	OrphanedAccountCurrency string
	OrphanedPocketName      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMovement construye un movimiento validando sus invariantes de campo.
func NewMovement(userID, movType, accountID, pocketID, subPocketID string, amount decimal.Decimal, displayedDate time.Time, notes string, isPending bool) (*Movement, error) {
	now := time.Now()
	m := &Movement{
		UserID:        userID,
		Type:          movType,
		AccountID:     accountID,
		PocketID:      pocketID,
		SubPocketID:   subPocketID,
		Amount:        amount,
		DisplayedDate: displayedDate,
		Notes:         notes,
		IsPending:     isPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate verifica los invariantes del movimiento. Se invoca en la
// construcción y después de cada mutación.
// Si el movimiento está huérfano y el snapshot está incompleto, rellena los
// valores por defecto en vez de rechazar el registro: los datos ya huérfanos
// deben seguir siendo legibles.
func (m *Movement) Validate() error {
	if m.UserID == "" {
		return domain.Validation("el movimiento requiere usuario")
	}
	if !ValidMovementType(m.Type) {
		return domain.Validation("tipo de movimiento desconocido")
	}
	if !m.Amount.GreaterThan(decimal.Zero) {
		return domain.Validation("el monto debe ser mayor que cero")
	}
	if m.DisplayedDate.IsZero() {
		return domain.Validation("la fecha del movimiento es inválida")
	}
	if !m.IsOrphaned && (m.AccountID == "" || m.PocketID == "") {
		return domain.Validation("el movimiento requiere cuenta y bolsillo")
	}
	if m.IsOrphaned {
		if m.OrphanedAccountName == "" {
			m.OrphanedAccountName = OrphanDefaultName
		}
		if m.OrphanedAccountCurrency == "" {
			m.OrphanedAccountCurrency = OrphanDefaultCurrency
		}
		if m.OrphanedPocketName == "" {
			m.OrphanedPocketName = OrphanDefaultName
		}
	}
	return nil
}

// IsIncome indica si el movimiento es una variante de ingreso.
func (m *Movement) IsIncome() bool {
	return m.Type == MovementTypeNormalIncome || m.Type == MovementTypeFixedIncome
}

// SignedAmount devuelve +Amount para ingresos y -Amount para gastos.
func (m *Movement) SignedAmount() decimal.Decimal {
	if m.IsIncome() {
		return m.Amount
	}
	return m.Amount.Neg()
}

// AffectsBalance indica si el movimiento participa en la agregación de saldos:
// ni pendiente ni huérfano.
func (m *Movement) AffectsBalance() bool {
	return !m.IsPending && !m.IsOrphaned
}

// MarkAsPending pasa el movimiento de aplicado a pendiente.
func (m *Movement) MarkAsPending() error {
	if m.IsPending {
		return domain.Validation("el movimiento ya está pendiente")
	}
	m.IsPending = true
	m.UpdatedAt = time.Now()
	return nil
}

// ApplyPending pasa el movimiento de pendiente a aplicado.
func (m *Movement) ApplyPending() error {
	if !m.IsPending {
		return domain.Validation("el movimiento no está pendiente")
	}
	m.IsPending = false
	m.UpdatedAt = time.Now()
	return nil
}

// MarkAsOrphaned deja el movimiento huérfano cuando su cuenta o bolsillo se
// elimina. Conserva los IDs (ya colgantes) y guarda el snapshot legible del
// padre para la restauración posterior.
func (m *Movement) MarkAsOrphaned(accountName, accountCurrency, pocketName string) error {
	if m.IsOrphaned {
		return domain.Validation("el movimiento ya está huérfano")
	}
	if accountName == "" {
		accountName = OrphanDefaultName
	}
	if accountCurrency == "" {
		accountCurrency = OrphanDefaultCurrency
	}
	if pocketName == "" {
		pocketName = OrphanDefaultName
	}
	m.IsOrphaned = true
	m.OrphanedAccountName = accountName
	m.OrphanedAccountCurrency = accountCurrency
	m.OrphanedPocketName = pocketName
	m.UpdatedAt = time.Now()
	return nil
}

// RestoreFromOrphaned reata el movimiento a un nuevo conjunto de padres y
// limpia el snapshot.
func (m *Movement) RestoreFromOrphaned(accountID, pocketID, subPocketID string) error {
	if !m.IsOrphaned {
		return domain.Validation("el movimiento no está huérfano")
	}
	if accountID == "" || pocketID == "" {
		return domain.Validation("la restauración requiere cuenta y bolsillo destino")
	}
	m.AccountID = accountID
	m.PocketID = pocketID
	m.SubPocketID = subPocketID
	m.IsOrphaned = false
	m.OrphanedAccountName = ""
	m.OrphanedAccountCurrency = ""
	m.OrphanedPocketName = ""
	m.UpdatedAt = time.Now()
	return nil
}
