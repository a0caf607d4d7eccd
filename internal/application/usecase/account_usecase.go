package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

// AccountUseCase casos de uso CRUD para cuentas. Eliminar una cuenta no borra
// sus movimientos: los deja huérfanos con el snapshot de identidad del padre.
type AccountUseCase struct {
	accountRepo repository.AccountRepository
	txRunner    TxRunner
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(accountRepo repository.AccountRepository, txRunner TxRunner) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo, txRunner: txRunner}
}

// Create crea una cuenta con saldo cero.
func (uc *AccountUseCase) Create(userID string, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if in.Name == "" {
		return nil, domain.Validation("la cuenta requiere nombre")
	}
	currency := in.Currency
	if currency == "" {
		currency = entity.OrphanDefaultCurrency
	}
	now := time.Now()
	account := &entity.Account{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Currency:  currency,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// GetByID obtiene una cuenta por ID.
func (uc *AccountUseCase) GetByID(userID, id string) (*dto.AccountResponse, error) {
	account, err := uc.accountRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	return toAccountResponse(account), nil
}

// List lista las cuentas del usuario.
func (uc *AccountUseCase) List(userID string) (*dto.AccountListResponse, error) {
	list, err := uc.accountRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAccountResponse(a))
	}
	return &dto.AccountListResponse{Items: items, Total: len(items)}, nil
}

// Update actualiza nombre y/o moneda de una cuenta.
func (uc *AccountUseCase) Update(userID, id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.accountRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validation("la cuenta requiere nombre")
		}
		account.Name = *in.Name
	}
	if in.Currency != nil {
		account.Currency = *in.Currency
	}
	account.UpdatedAt = time.Now()
	if err := uc.accountRepo.Update(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Delete elimina una cuenta en una sola transacción: primero deja huérfanos
// todos sus movimientos (con el snapshot nombre/moneda, y el nombre del
// bolsillo resuelto por movimiento mientras los bolsillos siguen existiendo),
// luego borra subbolsillos, bolsillos y la cuenta. No hay nada que recalcular
// después: los padres ya no existen.
func (uc *AccountUseCase) Delete(ctx context.Context, userID, id string) error {
	account, err := uc.accountRepo.GetByID(id, userID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		accountRepo repository.AccountRepository,
		pocketRepo repository.PocketRepository,
		subPocketRepo repository.SubPocketRepository,
	) error {
		if err := movRepo.MarkAsOrphanedByAccountID(userID, id, account.Name, account.Currency); err != nil {
			return err
		}
		if err := subPocketRepo.DeleteByAccountID(id); err != nil {
			return err
		}
		if err := pocketRepo.DeleteByAccountID(id); err != nil {
			return err
		}
		return accountRepo.Delete(id, userID)
	})
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Currency:  a.Currency,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
