package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// Aggregate suma el monto con signo de los movimientos que afectan saldo
// (ni pendientes ni huérfanos). Colección vacía devuelve cero.
// Es la única regla de derivación de saldos: cualquier Balance cacheado debe
// poder reconstruirse llamando esta función sobre el conjunto de movimientos
// del ámbito correspondiente.
func Aggregate(movements []*entity.Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if !m.AffectsBalance() {
			continue
		}
		total = total.Add(m.SignedAmount())
	}
	return total
}

// Totals devuelve los totales sin signo de ingresos y gastos, con la misma
// exclusión de pendientes y huérfanos que Aggregate. Se usa en reportes.
func Totals(movements []*entity.Movement) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, m := range movements {
		if !m.AffectsBalance() {
			continue
		}
		if m.IsIncome() {
			income = income.Add(m.Amount)
		} else {
			expense = expense.Add(m.Amount)
		}
	}
	return income, expense
}
