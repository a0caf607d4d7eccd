package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// SubPocketRepository define el puerto de persistencia para subbolsillos.
type SubPocketRepository interface {
	Create(sp *entity.SubPocket) error
	GetByID(id, userID string) (*entity.SubPocket, error)
	ListByPocket(pocketID string) ([]*entity.SubPocket, error)
	Update(sp *entity.SubPocket) error
	UpdateBalance(id string, balance decimal.Decimal) error
	Delete(id, userID string) error
	DeleteByPocketID(pocketID string) error
	DeleteByAccountID(accountID string) error
}
