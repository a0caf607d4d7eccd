package repository

import (
	"time"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos.
// Toda consulta va escopada por el usuario dueño; no hay acceso cruzado.
type MovementRepository interface {
	Create(m *entity.Movement) error
	GetByID(id, userID string) (*entity.Movement, error)
	Update(m *entity.Movement) error
	Delete(id, userID string) error

	ListByAccount(userID, accountID string) ([]*entity.Movement, error)
	ListByPocket(userID, pocketID string) ([]*entity.Movement, error)
	ListBySubPocket(userID, subPocketID string) ([]*entity.Movement, error)
	ListByMonth(userID string, year int, month time.Month) ([]*entity.Movement, error)
	ListPending(userID string) ([]*entity.Movement, error)
	ListOrphaned(userID string) ([]*entity.Movement, error)

	// Helpers masivos usados al eliminar cuentas o bolsillos. El nombre del
	// bolsillo en el snapshot se resuelve por movimiento (una cuenta tiene
	// varios bolsillos).
	MarkAsOrphanedByAccountID(userID, accountID, accountName, accountCurrency string) error
	MarkAsOrphanedByPocketID(userID, pocketID, accountName, accountCurrency, pocketName string) error
	UpdateAccountIDByPocketID(userID, pocketID, newAccountID string) error
}
