package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/ledger"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	domledger "github.com/jhoicas/finanzas-api/internal/domain/ledger"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/pkg/logger"
)

// PocketUseCase casos de uso CRUD para bolsillos. Eliminar un bolsillo deja
// huérfanos sus movimientos y recalcula la cuenta dueña; trasladar un bolsillo
// a otra cuenta reescribe la referencia de cuenta de sus movimientos y
// recalcula origen y destino.
type PocketUseCase struct {
	pocketRepo  repository.PocketRepository
	accountRepo repository.AccountRepository
	txRunner    TxRunner
	recalc      *ledger.Recalculator
	log         *logger.Logger
}

// NewPocketUseCase construye el caso de uso.
func NewPocketUseCase(
	pocketRepo repository.PocketRepository,
	accountRepo repository.AccountRepository,
	txRunner TxRunner,
	recalc *ledger.Recalculator,
	log *logger.Logger,
) *PocketUseCase {
	return &PocketUseCase{
		pocketRepo:  pocketRepo,
		accountRepo: accountRepo,
		txRunner:    txRunner,
		recalc:      recalc,
		log:         log,
	}
}

// Create crea un bolsillo (normal o fijo) con saldo cero en una cuenta del
// usuario.
func (uc *PocketUseCase) Create(userID string, in dto.CreatePocketRequest) (*dto.PocketResponse, error) {
	if in.Name == "" {
		return nil, domain.Validation("el bolsillo requiere nombre")
	}
	if !entity.ValidPocketKind(in.Kind) {
		return nil, domain.Validation("tipo de bolsillo desconocido")
	}
	account, err := uc.accountRepo.GetByID(in.AccountID, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	pocket := &entity.Pocket{
		ID:        uuid.New().String(),
		UserID:    userID,
		AccountID: in.AccountID,
		Name:      in.Name,
		Kind:      in.Kind,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.pocketRepo.Create(pocket); err != nil {
		return nil, err
	}
	return toPocketResponse(pocket), nil
}

// GetByID obtiene un bolsillo por ID.
func (uc *PocketUseCase) GetByID(userID, id string) (*dto.PocketResponse, error) {
	pocket, err := uc.pocketRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if pocket == nil {
		return nil, domain.ErrNotFound
	}
	return toPocketResponse(pocket), nil
}

// ListByAccount lista los bolsillos de una cuenta del usuario.
func (uc *PocketUseCase) ListByAccount(userID, accountID string) (*dto.PocketListResponse, error) {
	account, err := uc.accountRepo.GetByID(accountID, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.pocketRepo.ListByAccount(accountID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PocketResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPocketResponse(p))
	}
	return &dto.PocketListResponse{Items: items, Total: len(items)}, nil
}

// Update renombra el bolsillo y/o lo traslada a otra cuenta. El traslado
// reescribe account_id en todos sus movimientos dentro de la misma transacción
// y después recalcula la cuenta origen y la destino.
func (uc *PocketUseCase) Update(ctx context.Context, userID, id string, in dto.UpdatePocketRequest) (*dto.PocketResponse, error) {
	pocket, err := uc.pocketRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if pocket == nil {
		return nil, domain.ErrNotFound
	}
	oldAccountID := pocket.AccountID

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validation("el bolsillo requiere nombre")
		}
		pocket.Name = *in.Name
	}
	moved := in.AccountID != nil && *in.AccountID != oldAccountID
	if moved {
		dest, err := uc.accountRepo.GetByID(*in.AccountID, userID)
		if err != nil {
			return nil, err
		}
		if dest == nil {
			return nil, domain.ErrNotFound
		}
		pocket.AccountID = dest.ID
	}
	pocket.UpdatedAt = time.Now()

	if !moved {
		if err := uc.pocketRepo.Update(pocket); err != nil {
			return nil, err
		}
		return toPocketResponse(pocket), nil
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.AccountRepository,
		pocketRepo repository.PocketRepository,
		_ repository.SubPocketRepository,
	) error {
		if err := movRepo.UpdateAccountIDByPocketID(userID, id, pocket.AccountID); err != nil {
			return err
		}
		return pocketRepo.Update(pocket)
	})
	if err != nil {
		return nil, err
	}

	refs := domledger.NewEntityRefs()
	refs.AddAccount(oldAccountID)
	refs.AddAccount(pocket.AccountID)
	uc.recalculate(userID, refs)
	return toPocketResponse(pocket), nil
}

// Delete elimina un bolsillo en una transacción: deja huérfanos sus
// movimientos con el snapshot de identidad, borra sus subbolsillos y el
// bolsillo. Después recalcula la cuenta dueña, cuyos saldos pierden los
// movimientos ahora excluidos.
func (uc *PocketUseCase) Delete(ctx context.Context, userID, id string) error {
	pocket, err := uc.pocketRepo.GetByID(id, userID)
	if err != nil {
		return err
	}
	if pocket == nil {
		return domain.ErrNotFound
	}
	account, err := uc.accountRepo.GetByID(pocket.AccountID, userID)
	if err != nil {
		return err
	}
	accountName, accountCurrency := "", ""
	if account != nil {
		accountName, accountCurrency = account.Name, account.Currency
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.AccountRepository,
		pocketRepo repository.PocketRepository,
		subPocketRepo repository.SubPocketRepository,
	) error {
		if err := movRepo.MarkAsOrphanedByPocketID(userID, id, accountName, accountCurrency, pocket.Name); err != nil {
			return err
		}
		if err := subPocketRepo.DeleteByPocketID(id); err != nil {
			return err
		}
		return pocketRepo.Delete(id, userID)
	})
	if err != nil {
		return err
	}

	refs := domledger.NewEntityRefs()
	refs.AddAccount(pocket.AccountID)
	uc.recalculate(userID, refs)
	return nil
}

func (uc *PocketUseCase) recalculate(userID string, refs domledger.EntityRefs) {
	if err := uc.recalc.Recalculate(userID, refs); err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("recálculo de saldos incompleto")
	}
}

func toPocketResponse(p *entity.Pocket) *dto.PocketResponse {
	if p == nil {
		return nil
	}
	return &dto.PocketResponse{
		ID:        p.ID,
		AccountID: p.AccountID,
		Name:      p.Name,
		Kind:      p.Kind,
		Balance:   p.Balance,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
