package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// PocketRepository define el puerto de persistencia para bolsillos.
type PocketRepository interface {
	Create(p *entity.Pocket) error
	GetByID(id, userID string) (*entity.Pocket, error)
	// GetByAccountAndName localiza un bolsillo vivo por nombre dentro de una
	// cuenta; lo usa la restauración de movimientos huérfanos.
	GetByAccountAndName(accountID, name string) (*entity.Pocket, error)
	ListByAccount(accountID string) ([]*entity.Pocket, error)
	Update(p *entity.Pocket) error
	UpdateBalance(id string, balance decimal.Decimal) error
	Delete(id, userID string) error
	DeleteByAccountID(accountID string) error
}
