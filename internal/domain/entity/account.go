package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account es una cuenta del usuario. Balance es un valor denormalizado que el
// recalculador reescribe completo; nunca se parchea incrementalmente.
type Account struct {
	ID        string
	UserID    string
	Name      string
	Currency  string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
