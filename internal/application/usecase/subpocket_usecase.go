package usecase

import (
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

// SubPocketUseCase casos de uso CRUD para subbolsillos. Solo los bolsillos de
// tipo fijo admiten subbolsillos. La orfandad existe únicamente al eliminar
// cuentas o bolsillos, así que un subbolsillo con movimientos no se puede
// eliminar.
type SubPocketUseCase struct {
	subPocketRepo repository.SubPocketRepository
	pocketRepo    repository.PocketRepository
	movementRepo  repository.MovementRepository
	recalc        *ledger.Recalculator
	log           *logger.Logger
}

// NewSubPocketUseCase construye el caso de uso.
func NewSubPocketUseCase(
	subPocketRepo repository.SubPocketRepository,
	pocketRepo repository.PocketRepository,
	movementRepo repository.MovementRepository,
	recalc *ledger.Recalculator,
	log *logger.Logger,
) *SubPocketUseCase {
	return &SubPocketUseCase{
		subPocketRepo: subPocketRepo,
		pocketRepo:    pocketRepo,
		movementRepo:  movementRepo,
		recalc:        recalc,
		log:           log,
	}
}

// Create crea un subbolsillo con saldo cero dentro de un bolsillo fijo.
func (uc *SubPocketUseCase) Create(userID string, in dto.CreateSubPocketRequest) (*dto.SubPocketResponse, error) {
	if in.Name == "" {
		return nil, domain.Validation("el subbolsillo requiere nombre")
	}
	pocket, err := uc.pocketRepo.GetByID(in.PocketID, userID)
	if err != nil {
		return nil, err
	}
	if pocket == nil {
		return nil, domain.ErrNotFound
	}
	if pocket.Kind != entity.PocketKindFixed {
		return nil, domain.Validation("el subbolsillo requiere un bolsillo de tipo fijo")
	}
	now := time.Now()
	sp := &entity.SubPocket{
		ID:        uuid.New().String(),
		UserID:    userID,
		PocketID:  in.PocketID,
		Name:      in.Name,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.subPocketRepo.Create(sp); err != nil {
		return nil, err
	}
	return toSubPocketResponse(sp), nil
}

// ListByPocket lista los subbolsillos de un bolsillo del usuario.
func (uc *SubPocketUseCase) ListByPocket(userID, pocketID string) (*dto.SubPocketListResponse, error) {
	pocket, err := uc.pocketRepo.GetByID(pocketID, userID)
	if err != nil {
		return nil, err
	}
	if pocket == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.subPocketRepo.ListByPocket(pocketID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubPocketResponse, 0, len(list))
	for _, sp := range list {
		items = append(items, *toSubPocketResponse(sp))
	}
	return &dto.SubPocketListResponse{Items: items, Total: len(items)}, nil
}

// Update renombra un subbolsillo.
func (uc *SubPocketUseCase) Update(userID, id string, in dto.UpdateSubPocketRequest) (*dto.SubPocketResponse, error) {
	sp, err := uc.subPocketRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validation("el subbolsillo requiere nombre")
		}
		sp.Name = *in.Name
	}
	sp.UpdatedAt = time.Now()
	if err := uc.subPocketRepo.Update(sp); err != nil {
		return nil, err
	}
	return toSubPocketResponse(sp), nil
}

// Delete elimina un subbolsillo sin movimientos asociados y recalcula su
// bolsillo dueño (el saldo del bolsillo fijo suma subbolsillos).
func (uc *SubPocketUseCase) Delete(userID, id string) error {
	sp, err := uc.subPocketRepo.GetByID(id, userID)
	if err != nil {
		return err
	}
	if sp == nil {
		return domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListBySubPocket(userID, id)
	if err != nil {
		return err
	}
	if len(movements) > 0 {
		return domain.Validation("el subbolsillo tiene movimientos asociados")
	}
	if err := uc.subPocketRepo.Delete(id, userID); err != nil {
		return err
	}
	refs := domledger.NewEntityRefs()
	refs.AddPocket(sp.PocketID)
	if pocket, err := uc.pocketRepo.GetByID(sp.PocketID, userID); err == nil && pocket != nil {
		refs.AddAccount(pocket.AccountID)
	}
	if err := uc.recalc.Recalculate(userID, refs); err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("recálculo de saldos incompleto")
	}
	return nil
}

func toSubPocketResponse(sp *entity.SubPocket) *dto.SubPocketResponse {
	if sp == nil {
		return nil
	}
	return &dto.SubPocketResponse{
		ID:        sp.ID,
		PocketID:  sp.PocketID,
		Name:      sp.Name,
		Balance:   sp.Balance,
		CreatedAt: sp.CreatedAt,
		UpdatedAt: sp.UpdatedAt,
	}
}
