package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

const (
	testUserID      = "00000000-0000-0000-0000-000000000001"
	testAccountID   = "00000000-0000-0000-0000-000000000010"
	testPocketID    = "00000000-0000-0000-0000-000000000020"
	testSubPocketID = "00000000-0000-0000-0000-000000000030"
)

var testDate = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func buildMovement(t *testing.T, movType string, amount float64) *entity.Movement {
	t.Helper()
	m, err := entity.NewMovement(testUserID, movType, testAccountID, testPocketID, "",
		decimal.NewFromFloat(amount), testDate, "", false)
	require.NoError(t, err)
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción y validación
// ──────────────────────────────────────────────────────────────────────────────

func TestNewMovement_Valido(t *testing.T) {
	m := buildMovement(t, entity.MovementTypeNormalIncome, 100)

	assert.Equal(t, testUserID, m.UserID)
	assert.False(t, m.IsPending)
	assert.False(t, m.IsOrphaned)
	assert.True(t, m.AffectsBalance())
}

func TestNewMovement_TipoDesconocido(t *testing.T) {
	_, err := entity.NewMovement(testUserID, "TRANSFER", testAccountID, testPocketID, "",
		decimal.NewFromInt(10), testDate, "", false)
	assert.Error(t, err, "un tipo fuera de las cuatro variantes debe rechazarse")
}

func TestNewMovement_MontoCeroONegativo(t *testing.T) {
	_, err := entity.NewMovement(testUserID, entity.MovementTypeNormalIncome, testAccountID, testPocketID, "",
		decimal.Zero, testDate, "", false)
	assert.Error(t, err, "monto cero debe rechazarse")

	_, err = entity.NewMovement(testUserID, entity.MovementTypeNormalIncome, testAccountID, testPocketID, "",
		decimal.NewFromInt(-5), testDate, "", false)
	assert.Error(t, err, "monto negativo debe rechazarse; el signo lo aporta el tipo")
}

func TestNewMovement_FechaCero(t *testing.T) {
	_, err := entity.NewMovement(testUserID, entity.MovementTypeNormalIncome, testAccountID, testPocketID, "",
		decimal.NewFromInt(10), time.Time{}, "", false)
	assert.Error(t, err)
}

func TestNewMovement_SinPadres(t *testing.T) {
	_, err := entity.NewMovement(testUserID, entity.MovementTypeNormalIncome, "", "", "",
		decimal.NewFromInt(10), testDate, "", false)
	assert.Error(t, err, "un movimiento no huérfano requiere cuenta y bolsillo")
}

// TestValidate_HuerfanoRellenaSnapshot verifica que un huérfano con snapshot
// incompleto se rellena con los valores por defecto en vez de rechazarse: los
// registros antiguos deben seguir siendo legibles.
func TestValidate_HuerfanoRellenaSnapshot(t *testing.T) {
	m := buildMovement(t, entity.MovementTypeNormalExpense, 50)
	m.IsOrphaned = true
	m.OrphanedAccountName = ""
	m.OrphanedAccountCurrency = ""
	m.OrphanedPocketName = ""

	require.NoError(t, m.Validate())
	assert.Equal(t, entity.OrphanDefaultName, m.OrphanedAccountName)
	assert.Equal(t, entity.OrphanDefaultCurrency, m.OrphanedAccountCurrency)
	assert.Equal(t, entity.OrphanDefaultName, m.OrphanedPocketName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla de signo
// ──────────────────────────────────────────────────────────────────────────────

func TestSignedAmount_PorTipo(t *testing.T) {
	cases := []struct {
		movType string
		want    string
	}{
		{entity.MovementTypeNormalIncome, "100"},
		{entity.MovementTypeFixedIncome, "100"},
		{entity.MovementTypeNormalExpense, "-100"},
		{entity.MovementTypeFixedExpense, "-100"},
	}
	for _, tc := range cases {
		m := buildMovement(t, tc.movType, 100)
		assert.Equal(t, tc.want, m.SignedAmount().String(),
			"tipo %s: ingresos suman, gastos restan", tc.movType)
	}
}

func TestAffectsBalance_ExcluyePendientesYHuerfanos(t *testing.T) {
	m := buildMovement(t, entity.MovementTypeNormalIncome, 10)
	assert.True(t, m.AffectsBalance())

	m.IsPending = true
	assert.False(t, m.AffectsBalance(), "pendiente no afecta saldo")

	m.IsPending = false
	m.IsOrphaned = true
	assert.False(t, m.AffectsBalance(), "huérfano no afecta saldo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida pendiente ↔ aplicado
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkAsPending_YApplyPending(t *testing.T) {
	m := buildMovement(t, entity.MovementTypeNormalIncome, 10)

	require.NoError(t, m.MarkAsPending())
	assert.True(t, m.IsPending)

	assert.Error(t, m.MarkAsPending(), "marcar pendiente dos veces debe rechazarse")

	require.NoError(t, m.ApplyPending())
	assert.False(t, m.IsPending)

	assert.Error(t, m.ApplyPending(), "aplicar un movimiento no pendiente debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Orfandad y restauración
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkAsOrphaned_GuardaSnapshot(t *testing.T) {
	m := buildMovement(t, entity.MovementTypeNormalExpense, 25)

	require.NoError(t, m.MarkAsOrphaned("Nómina", "COP", "Mercado"))
	assert.True(t, m.IsOrphaned)
	assert.Equal(t, "Nómina", m.OrphanedAccountName)
	assert.Equal(t, "COP", m.OrphanedAccountCurrency)
	assert.Equal(t, "Mercado", m.OrphanedPocketName)
	// Los IDs colgantes se conservan tal cual.
	assert.Equal(t, testAccountID, m.AccountID)

	assert.Error(t, m.MarkAsOrphaned("Otra", "USD", "Otro"), "doble orfandad debe rechazarse")
}

func TestMarkAsOrphaned_SnapshotVacioUsaDefaults(t *testing.T) {
	m := buildMovement(t, entity.MovementTypeNormalExpense, 25)

	require.NoError(t, m.MarkAsOrphaned("", "", ""))
	assert.Equal(t, entity.OrphanDefaultName, m.OrphanedAccountName)
	assert.Equal(t, entity.OrphanDefaultCurrency, m.OrphanedAccountCurrency)
	assert.Equal(t, entity.OrphanDefaultName, m.OrphanedPocketName)
}

func TestRestoreFromOrphaned_LimpiaSnapshot(t *testing.T) {
	m := buildMovement(t, entity.MovementTypeFixedExpense, 40)
	require.NoError(t, m.MarkAsOrphaned("Ahorros", "USD", "Servicios"))

	require.NoError(t, m.RestoreFromOrphaned("acc-2", "pocket-2", testSubPocketID))
	assert.False(t, m.IsOrphaned)
	assert.Equal(t, "acc-2", m.AccountID)
	assert.Equal(t, "pocket-2", m.PocketID)
	assert.Equal(t, testSubPocketID, m.SubPocketID)
	assert.Empty(t, m.OrphanedAccountName)
	assert.Empty(t, m.OrphanedAccountCurrency)
	assert.Empty(t, m.OrphanedPocketName)
}

func TestRestoreFromOrphaned_RequiereEstadoYDestino(t *testing.T) {
	m := buildMovement(t, entity.MovementTypeNormalIncome, 10)
	assert.Error(t, m.RestoreFromOrphaned("acc", "pocket", ""),
		"restaurar un movimiento no huérfano debe rechazarse")

	require.NoError(t, m.MarkAsOrphaned("A", "USD", "P"))
	assert.Error(t, m.RestoreFromOrphaned("", "", ""),
		"la restauración requiere cuenta y bolsillo destino")
	assert.True(t, m.IsOrphaned, "un destino inválido no debe tocar el estado")
}
