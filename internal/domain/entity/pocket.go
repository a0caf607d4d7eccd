package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de bolsillo.
const (
	PocketKindNormal = "normal" // recibe movimientos directamente
	PocketKindFixed  = "fixed"  // agrupa subbolsillos de gasto fijo
)

// ValidPocketKind indica si el tipo de bolsillo es válido.
func ValidPocketKind(k string) bool {
	return k == PocketKindNormal || k == PocketKindFixed
}

// Pocket es una subdivisión de una cuenta. Un bolsillo normal agrega sus
// movimientos directamente; uno fijo suma los saldos cacheados de sus
// subbolsillos.
type Pocket struct {
	ID        string
	UserID    string
	AccountID string
	Name      string
	Kind      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
