package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest cuerpo para crear una cuenta.
type CreateAccountRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// UpdateAccountRequest cuerpo para actualizar una cuenta.
type UpdateAccountRequest struct {
	Name     *string `json:"name"`
	Currency *string `json:"currency"`
}

// AccountResponse vista de una cuenta con su saldo cacheado.
type AccountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountListResponse listado de cuentas.
type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
	Total int               `json:"total"`
}
