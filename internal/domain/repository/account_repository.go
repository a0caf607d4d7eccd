package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para cuentas.
type AccountRepository interface {
	Create(a *entity.Account) error
	GetByID(id, userID string) (*entity.Account, error)
	// GetByNameAndCurrency localiza una cuenta viva por nombre y moneda; lo usa
	// la restauración de movimientos huérfanos.
	GetByNameAndCurrency(userID, name, currency string) (*entity.Account, error)
	ListByUser(userID string) ([]*entity.Account, error)
	Update(a *entity.Account) error
	// UpdateBalance reemplaza el saldo cacheado; solo lo invoca el recalculador.
	UpdateBalance(id string, balance decimal.Decimal) error
	Delete(id, userID string) error
}
