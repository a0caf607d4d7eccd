package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	domledger "github.com/jhoicas/finanzas-api/internal/domain/ledger"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

// Recalculator reescribe los saldos cacheados de las entidades afectadas por
// una mutación de movimientos. Es el único escritor de esos campos.
//
// Orden de la cascada: subbolsillo → bolsillo → cuenta, porque el saldo de un
// bolsillo fijo suma los saldos recién escritos de sus subbolsillos. Es
// idempotente y tolera superconjuntos de IDs; una entidad que ya no existe se
// salta en silencio.
type Recalculator struct {
	movementRepo  repository.MovementRepository
	accountRepo   repository.AccountRepository
	pocketRepo    repository.PocketRepository
	subPocketRepo repository.SubPocketRepository
}

// NewRecalculator construye el recalculador.
func NewRecalculator(
	movementRepo repository.MovementRepository,
	accountRepo repository.AccountRepository,
	pocketRepo repository.PocketRepository,
	subPocketRepo repository.SubPocketRepository,
) *Recalculator {
	return &Recalculator{
		movementRepo:  movementRepo,
		accountRepo:   accountRepo,
		pocketRepo:    pocketRepo,
		subPocketRepo: subPocketRepo,
	}
}

// Recalculate rehace los saldos de las entidades referenciadas. El primer
// fallo de lectura o escritura aborta el resto de la cascada; la mutación
// primaria ya comprometida no se revierte (el barrido completo manual corrige
// cualquier desfase).
func (r *Recalculator) Recalculate(userID string, refs domledger.EntityRefs) error {
	for id := range refs.SubPocketIDs {
		if err := r.recalculateSubPocket(userID, id); err != nil {
			return err
		}
	}
	for id := range refs.PocketIDs {
		if err := r.recalculatePocket(userID, id); err != nil {
			return err
		}
	}
	for id := range refs.AccountIDs {
		if err := r.recalculateAccount(userID, id); err != nil {
			return err
		}
	}
	return nil
}

// RecalculateAll reconstruye todos los saldos del usuario a partir del log de
// movimientos. Es la operación de corrección manual de desfases.
func (r *Recalculator) RecalculateAll(userID string) error {
	accounts, err := r.accountRepo.ListByUser(userID)
	if err != nil {
		return fmt.Errorf("recalculate all: %w", err)
	}
	refs := domledger.NewEntityRefs()
	for _, a := range accounts {
		refs.AddAccount(a.ID)
		pockets, err := r.pocketRepo.ListByAccount(a.ID)
		if err != nil {
			return fmt.Errorf("recalculate all: %w", err)
		}
		for _, p := range pockets {
			refs.AddPocket(p.ID)
			if p.Kind != entity.PocketKindFixed {
				continue
			}
			subs, err := r.subPocketRepo.ListByPocket(p.ID)
			if err != nil {
				return fmt.Errorf("recalculate all: %w", err)
			}
			for _, sp := range subs {
				refs.AddSubPocket(sp.ID)
			}
		}
	}
	return r.Recalculate(userID, refs)
}

func (r *Recalculator) recalculateSubPocket(userID, id string) error {
	sp, err := r.subPocketRepo.GetByID(id, userID)
	if err != nil {
		return fmt.Errorf("recalculate subpocket %s: %w", id, err)
	}
	if sp == nil {
		// Ya no existe; nada que recalcular.
		return nil
	}
	movements, err := r.movementRepo.ListBySubPocket(userID, id)
	if err != nil {
		return fmt.Errorf("recalculate subpocket %s: %w", id, err)
	}
	balance := domledger.Aggregate(movements)
	if err := r.subPocketRepo.UpdateBalance(id, balance); err != nil {
		return fmt.Errorf("recalculate subpocket %s: %w", id, err)
	}
	return nil
}

func (r *Recalculator) recalculatePocket(userID, id string) error {
	p, err := r.pocketRepo.GetByID(id, userID)
	if err != nil {
		return fmt.Errorf("recalculate pocket %s: %w", id, err)
	}
	if p == nil {
		return nil
	}
	var balance decimal.Decimal
	if p.Kind == entity.PocketKindFixed {
		// Un bolsillo fijo suma los saldos ya recalculados de sus subbolsillos;
		// los movimientos con subbolsillo no le aportan directamente.
		subs, err := r.subPocketRepo.ListByPocket(id)
		if err != nil {
			return fmt.Errorf("recalculate pocket %s: %w", id, err)
		}
		balance = decimal.Zero
		for _, sp := range subs {
			balance = balance.Add(sp.Balance)
		}
	} else {
		movements, err := r.movementRepo.ListByPocket(userID, id)
		if err != nil {
			return fmt.Errorf("recalculate pocket %s: %w", id, err)
		}
		balance = domledger.Aggregate(movements)
	}
	if err := r.pocketRepo.UpdateBalance(id, balance); err != nil {
		return fmt.Errorf("recalculate pocket %s: %w", id, err)
	}
	return nil
}

func (r *Recalculator) recalculateAccount(userID, id string) error {
	a, err := r.accountRepo.GetByID(id, userID)
	if err != nil {
		return fmt.Errorf("recalculate account %s: %w", id, err)
	}
	if a == nil {
		return nil
	}
	movements, err := r.movementRepo.ListByAccount(userID, id)
	if err != nil {
		return fmt.Errorf("recalculate account %s: %w", id, err)
	}
	balance := domledger.Aggregate(movements)
	if err := r.accountRepo.UpdateBalance(id, balance); err != nil {
		return fmt.Errorf("recalculate account %s: %w", id, err)
	}
	return nil
}
