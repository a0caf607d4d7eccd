package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubPocket pertenece a exactamente un bolsillo de tipo fijo y suele
// representar un gasto o ingreso fijo recurrente.
type SubPocket struct {
	ID        string
	UserID    string
	PocketID  string
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
