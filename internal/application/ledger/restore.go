package ledger

import (
	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	domledger "github.com/jhoicas/finanzas-api/internal/domain/ledger"
)

// parentKey identidad del padre eliminado, tomada del snapshot del huérfano.
type parentKey struct {
	accountName     string
	accountCurrency string
	pocketName      string
}

// RestoreOrphaned reata los movimientos huérfanos del usuario a padres vivos.
// Agrupa por (nombre de cuenta, moneda) y luego por nombre de bolsillo, y
// busca una cuenta/bolsillo existentes con esa identidad. No crea padres: los
// grupos sin padre vivo se reportan para que el cliente los cree y reintente.
// Devuelve los contadores de restaurados y fallidos.
func (uc *MovementUseCase) RestoreOrphaned(userID string) (*dto.RestoreOrphanedResponse, error) {
	orphans, err := uc.movementRepo.ListOrphaned(userID)
	if err != nil {
		return nil, err
	}

	groups := make(map[parentKey][]*entity.Movement)
	var order []parentKey
	for _, m := range orphans {
		key := parentKey{m.OrphanedAccountName, m.OrphanedAccountCurrency, m.OrphanedPocketName}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], m)
	}

	resp := &dto.RestoreOrphanedResponse{}
	refs := domledger.NewEntityRefs()
	for _, key := range order {
		movements := groups[key]
		account, err := uc.accountRepo.GetByNameAndCurrency(userID, key.accountName, key.accountCurrency)
		if err != nil {
			return nil, err
		}
		if account == nil {
			resp.Failed += len(movements)
			resp.MissingParents = append(resp.MissingParents, missingGroup(key, len(movements)))
			continue
		}
		pocket, err := uc.pocketRepo.GetByAccountAndName(account.ID, key.pocketName)
		if err != nil {
			return nil, err
		}
		if pocket == nil {
			resp.Failed += len(movements)
			resp.MissingParents = append(resp.MissingParents, missingGroup(key, len(movements)))
			continue
		}
		for _, m := range movements {
			// El subbolsillo original ya no existe; el movimiento se reata
			// directamente al bolsillo restaurado.
			if err := m.RestoreFromOrphaned(account.ID, pocket.ID, ""); err != nil {
				resp.Failed++
				continue
			}
			if err := uc.movementRepo.Update(m); err != nil {
				resp.Failed++
				continue
			}
			resp.Restored++
		}
		refs.AddAccount(account.ID)
		refs.AddPocket(pocket.ID)
	}

	uc.recalculate(userID, refs)
	return resp, nil
}

func missingGroup(key parentKey, n int) dto.MissingParentGroup {
	return dto.MissingParentGroup{
		AccountName:     key.accountName,
		AccountCurrency: key.accountCurrency,
		PocketName:      key.pocketName,
		Movements:       n,
	}
}
