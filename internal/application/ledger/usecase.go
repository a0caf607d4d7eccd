package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	domledger "github.com/jhoicas/finanzas-api/internal/domain/ledger"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/pkg/logger"
)

// DateLayout formato ISO-8601 de la fecha mostrada de un movimiento.
const DateLayout = "2006-01-02"

// MovementUseCase orquesta el ciclo de vida de movimientos: validar →
// verificar padres → persistir → recalcular saldos afectados → devolver vista.
//
// La cascada de recálculo es best-effort: si falla, la mutación primaria ya
// comprometida no se revierte; se deja un warn en el log y el barrido manual
// (RecalculateBalances) corrige el desfase.
type MovementUseCase struct {
	movementRepo  repository.MovementRepository
	accountRepo   repository.AccountRepository
	pocketRepo    repository.PocketRepository
	subPocketRepo repository.SubPocketRepository
	recalc        *Recalculator
	reminders     ReminderService
	log           *logger.Logger
}

// NewMovementUseCase construye el caso de uso. reminders puede ser nil si la
// aplicación no tiene recordatorios configurados.
func NewMovementUseCase(
	movementRepo repository.MovementRepository,
	accountRepo repository.AccountRepository,
	pocketRepo repository.PocketRepository,
	subPocketRepo repository.SubPocketRepository,
	recalc *Recalculator,
	reminders ReminderService,
	log *logger.Logger,
) *MovementUseCase {
	return &MovementUseCase{
		movementRepo:  movementRepo,
		accountRepo:   accountRepo,
		pocketRepo:    pocketRepo,
		subPocketRepo: subPocketRepo,
		recalc:        recalc,
		reminders:     reminders,
		log:           log,
	}
}

// Create valida y registra un movimiento, y recalcula los saldos de sus padres.
func (uc *MovementUseCase) Create(userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	displayedDate, err := time.Parse(DateLayout, in.DisplayedDate)
	if err != nil {
		return nil, domain.Validation("la fecha del movimiento es inválida")
	}
	if err := uc.verifyParents(userID, in.AccountID, in.PocketID, in.SubPocketID); err != nil {
		return nil, err
	}
	m, err := entity.NewMovement(userID, in.Type, in.AccountID, in.PocketID, in.SubPocketID, in.Amount, displayedDate, in.Notes, in.IsPending)
	if err != nil {
		return nil, err
	}
	m.ID = uuid.New().String()
	if err := uc.movementRepo.Create(m); err != nil {
		return nil, err
	}
	uc.recalculate(userID, domledger.Affected(m))
	return toMovementResponse(m), nil
}

// Update aplica los campos presentes del request y recalcula solo si cambió
// algo que afecte saldos; una edición solo de notas no dispara la cascada.
// Si el movimiento cambió de cuenta/bolsillo se recalculan origen y destino.
func (uc *MovementUseCase) Update(userID, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	m, err := uc.movementRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	before := *m

	if in.Type != nil {
		m.Type = *in.Type
	}
	if in.AccountID != nil {
		m.AccountID = *in.AccountID
	}
	if in.PocketID != nil {
		m.PocketID = *in.PocketID
	}
	if in.SubPocketID != nil {
		m.SubPocketID = *in.SubPocketID
	}
	if in.Amount != nil {
		m.Amount = *in.Amount
	}
	if in.DisplayedDate != nil {
		d, err := time.Parse(DateLayout, *in.DisplayedDate)
		if err != nil {
			return nil, domain.Validation("la fecha del movimiento es inválida")
		}
		m.DisplayedDate = d
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}

	if in.AccountID != nil || in.PocketID != nil || in.SubPocketID != nil {
		if err := uc.verifyParents(userID, m.AccountID, m.PocketID, m.SubPocketID); err != nil {
			return nil, err
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.UpdatedAt = time.Now()
	if err := uc.movementRepo.Update(m); err != nil {
		return nil, err
	}
	if domledger.RequiresRecalculation(&before, m) {
		uc.recalculate(userID, domledger.AffectedAcrossChange(&before, m))
	}
	return toMovementResponse(m), nil
}

// Delete elimina un movimiento. Si estaba huérfano sus padres ya no existen y
// no hay nada que recalcular; si no, se recalculan sus padres reales. Además
// despaga cualquier recordatorio ligado al movimiento.
func (uc *MovementUseCase) Delete(userID, id string) error {
	m, err := uc.movementRepo.GetByID(id, userID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	if err := uc.movementRepo.Delete(id, userID); err != nil {
		return err
	}
	if uc.reminders != nil {
		if err := uc.reminders.UnlinkMovement(userID, id); err != nil {
			uc.log.Warn().Err(err).Str("movement_id", id).Msg("despagar recordatorio del movimiento eliminado")
		}
	}
	if !m.IsOrphaned {
		uc.recalculate(userID, domledger.Affected(m))
	}
	return nil
}

// MarkPending pasa un movimiento aplicado a pendiente y lo excluye de los
// saldos de sus padres.
func (uc *MovementUseCase) MarkPending(userID, id string) (*dto.MovementResponse, error) {
	return uc.transition(userID, id, (*entity.Movement).MarkAsPending)
}

// ApplyPending aplica un movimiento pendiente y lo incorpora a los saldos.
func (uc *MovementUseCase) ApplyPending(userID, id string) (*dto.MovementResponse, error) {
	return uc.transition(userID, id, (*entity.Movement).ApplyPending)
}

// transition ejecuta un cambio de estado pendiente↔aplicado y recalcula,
// porque cambió la pertenencia al conjunto de inclusión del agregador.
func (uc *MovementUseCase) transition(userID, id string, fn func(*entity.Movement) error) (*dto.MovementResponse, error) {
	m, err := uc.movementRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if err := fn(m); err != nil {
		return nil, err
	}
	if err := uc.movementRepo.Update(m); err != nil {
		return nil, err
	}
	uc.recalculate(userID, domledger.Affected(m))
	return toMovementResponse(m), nil
}

// GetByID obtiene un movimiento por ID.
func (uc *MovementUseCase) GetByID(userID, id string) (*dto.MovementResponse, error) {
	m, err := uc.movementRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(m), nil
}

// ListByAccount lista los movimientos de una cuenta.
func (uc *MovementUseCase) ListByAccount(userID, accountID string) (*dto.MovementListResponse, error) {
	return uc.toList(uc.movementRepo.ListByAccount(userID, accountID))
}

// ListByPocket lista los movimientos de un bolsillo.
func (uc *MovementUseCase) ListByPocket(userID, pocketID string) (*dto.MovementListResponse, error) {
	return uc.toList(uc.movementRepo.ListByPocket(userID, pocketID))
}

// ListByMonth lista los movimientos cuya fecha mostrada cae en el mes dado.
func (uc *MovementUseCase) ListByMonth(userID string, year int, month time.Month) (*dto.MovementListResponse, error) {
	return uc.toList(uc.movementRepo.ListByMonth(userID, year, month))
}

// ListPending lista los movimientos pendientes del usuario.
func (uc *MovementUseCase) ListPending(userID string) (*dto.MovementListResponse, error) {
	return uc.toList(uc.movementRepo.ListPending(userID))
}

// ListOrphaned lista los movimientos huérfanos del usuario.
func (uc *MovementUseCase) ListOrphaned(userID string) (*dto.MovementListResponse, error) {
	return uc.toList(uc.movementRepo.ListOrphaned(userID))
}

// RecalculateBalances reconstruye todos los saldos del usuario desde el log de
// movimientos (corrección manual de desfases).
func (uc *MovementUseCase) RecalculateBalances(userID string) error {
	return uc.recalc.RecalculateAll(userID)
}

// verifyParents comprueba que los padres referenciados existen y se pertenecen
// entre sí: el bolsillo a la cuenta y, si hay subbolsillo, al bolsillo, que
// además debe ser de tipo fijo.
func (uc *MovementUseCase) verifyParents(userID, accountID, pocketID, subPocketID string) error {
	account, err := uc.accountRepo.GetByID(accountID, userID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	pocket, err := uc.pocketRepo.GetByID(pocketID, userID)
	if err != nil {
		return err
	}
	if pocket == nil {
		return domain.ErrNotFound
	}
	if pocket.AccountID != accountID {
		return domain.Validation("el bolsillo no pertenece a la cuenta")
	}
	if subPocketID == "" {
		return nil
	}
	sub, err := uc.subPocketRepo.GetByID(subPocketID, userID)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrNotFound
	}
	if sub.PocketID != pocketID {
		return domain.Validation("el subbolsillo no pertenece al bolsillo")
	}
	if pocket.Kind != entity.PocketKindFixed {
		return domain.Validation("el subbolsillo requiere un bolsillo de tipo fijo")
	}
	return nil
}

// recalculate ejecuta la cascada best-effort; un fallo no revierte la
// mutación primaria.
func (uc *MovementUseCase) recalculate(userID string, refs domledger.EntityRefs) {
	if refs.Empty() {
		return
	}
	if err := uc.recalc.Recalculate(userID, refs); err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("recálculo de saldos incompleto")
	}
}

func (uc *MovementUseCase) toList(movements []*entity.Movement, err error) (*dto.MovementListResponse, error) {
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:                      m.ID,
		Type:                    m.Type,
		AccountID:               m.AccountID,
		PocketID:                m.PocketID,
		SubPocketID:             m.SubPocketID,
		Amount:                  m.Amount,
		DisplayedDate:           m.DisplayedDate.Format(DateLayout),
		Notes:                   m.Notes,
		IsPending:               m.IsPending,
		IsOrphaned:              m.IsOrphaned,
		OrphanedAccountName:     m.OrphanedAccountName,
		OrphanedAccountCurrency: m.OrphanedAccountCurrency,
		OrphanedPocketName:      m.OrphanedPocketName,
		CreatedAt:               m.CreatedAt,
	}
}
