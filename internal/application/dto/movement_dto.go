package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest cuerpo para registrar un movimiento.
// displayed_date va en formato ISO-8601 (YYYY-MM-DD).
type CreateMovementRequest struct {
	Type          string          `json:"type"`
	AccountID     string          `json:"account_id"`
	PocketID      string          `json:"pocket_id"`
	SubPocketID   string          `json:"sub_pocket_id"`
	Amount        decimal.Decimal `json:"amount"`
	DisplayedDate string          `json:"displayed_date"`
	Notes         string          `json:"notes"`
	IsPending     bool            `json:"is_pending"`
}

// UpdateMovementRequest cuerpo para actualizar un movimiento; solo los campos
// presentes se aplican. Los estados pendiente/huérfano no se tocan por aquí:
// tienen operaciones dedicadas.
type UpdateMovementRequest struct {
	Type          *string          `json:"type"`
	AccountID     *string          `json:"account_id"`
	PocketID      *string          `json:"pocket_id"`
	SubPocketID   *string          `json:"sub_pocket_id"`
	Amount        *decimal.Decimal `json:"amount"`
	DisplayedDate *string          `json:"displayed_date"`
	Notes         *string          `json:"notes"`
}

// MovementResponse vista serializable de un movimiento.
type MovementResponse struct {
	ID                      string          `json:"id"`
	Type                    string          `json:"type"`
	AccountID               string          `json:"account_id"`
	PocketID                string          `json:"pocket_id"`
	SubPocketID             string          `json:"sub_pocket_id,omitempty"`
	Amount                  decimal.Decimal `json:"amount"`
	DisplayedDate           string          `json:"displayed_date"`
	Notes                   string          `json:"notes,omitempty"`
	IsPending               bool            `json:"is_pending"`
	IsOrphaned              bool            `json:"is_orphaned"`
	OrphanedAccountName     string          `json:"orphaned_account_name,omitempty"`
	OrphanedAccountCurrency string          `json:"orphaned_account_currency,omitempty"`
	OrphanedPocketName      string          `json:"orphaned_pocket_name,omitempty"`
	CreatedAt               time.Time       `json:"created_at"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// MissingParentGroup grupo de movimientos huérfanos cuyo padre no existe
// todavía; el cliente debe crear la cuenta/bolsillo y reintentar.
type MissingParentGroup struct {
	AccountName     string `json:"account_name"`
	AccountCurrency string `json:"account_currency"`
	PocketName      string `json:"pocket_name"`
	Movements       int    `json:"movements"`
}

// RestoreOrphanedResponse resultado de la restauración masiva de huérfanos.
type RestoreOrphanedResponse struct {
	Restored       int                  `json:"restored"`
	Failed         int                  `json:"failed"`
	MissingParents []MissingParentGroup `json:"missing_parents,omitempty"`
}
