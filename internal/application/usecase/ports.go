package usecase

import (
	"context"

	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para las eliminaciones en
// cascada (cuenta/bolsillo) y el traslado de bolsillos entre cuentas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		accountRepo repository.AccountRepository,
		pocketRepo repository.PocketRepository,
		subPocketRepo repository.SubPocketRepository,
	) error) error
}
