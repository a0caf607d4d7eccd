package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePocketRequest cuerpo para crear un bolsillo (kind: normal | fixed).
type CreatePocketRequest struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
}

// UpdatePocketRequest cuerpo para actualizar un bolsillo. Cambiar AccountID
// traslada el bolsillo (y sus movimientos) a otra cuenta.
type UpdatePocketRequest struct {
	Name      *string `json:"name"`
	AccountID *string `json:"account_id"`
}

// PocketResponse vista de un bolsillo con su saldo cacheado.
type PocketResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PocketListResponse listado de bolsillos.
type PocketListResponse struct {
	Items []PocketResponse `json:"items"`
	Total int              `json:"total"`
}

// CreateSubPocketRequest cuerpo para crear un subbolsillo (solo bolsillos fijos).
type CreateSubPocketRequest struct {
	PocketID string `json:"pocket_id"`
	Name     string `json:"name"`
}

// UpdateSubPocketRequest cuerpo para actualizar un subbolsillo.
type UpdateSubPocketRequest struct {
	Name *string `json:"name"`
}

// SubPocketResponse vista de un subbolsillo con su saldo cacheado.
type SubPocketResponse struct {
	ID        string          `json:"id"`
	PocketID  string          `json:"pocket_id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SubPocketListResponse listado de subbolsillos.
type SubPocketListResponse struct {
	Items []SubPocketResponse `json:"items"`
	Total int                 `json:"total"`
}
