package ledger_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// memStore es un doble en memoria de los cuatro repositorios de persistencia.
// Guarda y devuelve copias para imitar el comportamiento de una base de datos:
// mutar un puntero obtenido con GetByID no altera el almacén hasta Update.
type memStore struct {
	movements  map[string]*entity.Movement
	accounts   map[string]*entity.Account
	pockets    map[string]*entity.Pocket
	subPockets map[string]*entity.SubPocket
}

func newMemStore() *memStore {
	return &memStore{
		movements:  make(map[string]*entity.Movement),
		accounts:   make(map[string]*entity.Account),
		pockets:    make(map[string]*entity.Pocket),
		subPockets: make(map[string]*entity.SubPocket),
	}
}

// ── MovementRepository ────────────────────────────────────────────────────────

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.s.movements[m.ID] = &cp
	return nil
}

func (r *memMovementRepo) GetByID(id, userID string) (*entity.Movement, error) {
	m, ok := r.s.movements[id]
	if !ok || m.UserID != userID {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMovementRepo) Update(m *entity.Movement) error {
	cp := *m
	r.s.movements[m.ID] = &cp
	return nil
}

func (r *memMovementRepo) Delete(id, userID string) error {
	if m, ok := r.s.movements[id]; ok && m.UserID == userID {
		delete(r.s.movements, id)
	}
	return nil
}

func (r *memMovementRepo) list(filter func(*entity.Movement) bool) []*entity.Movement {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if filter(m) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out
}

func (r *memMovementRepo) ListByAccount(userID, accountID string) ([]*entity.Movement, error) {
	return r.list(func(m *entity.Movement) bool {
		return m.UserID == userID && m.AccountID == accountID
	}), nil
}

func (r *memMovementRepo) ListByPocket(userID, pocketID string) ([]*entity.Movement, error) {
	return r.list(func(m *entity.Movement) bool {
		return m.UserID == userID && m.PocketID == pocketID
	}), nil
}

func (r *memMovementRepo) ListBySubPocket(userID, subPocketID string) ([]*entity.Movement, error) {
	return r.list(func(m *entity.Movement) bool {
		return m.UserID == userID && m.SubPocketID == subPocketID
	}), nil
}

func (r *memMovementRepo) ListByMonth(userID string, year int, month time.Month) ([]*entity.Movement, error) {
	return r.list(func(m *entity.Movement) bool {
		d := m.DisplayedDate.UTC()
		return m.UserID == userID && d.Year() == year && d.Month() == month
	}), nil
}

func (r *memMovementRepo) ListPending(userID string) ([]*entity.Movement, error) {
	return r.list(func(m *entity.Movement) bool {
		return m.UserID == userID && m.IsPending
	}), nil
}

func (r *memMovementRepo) ListOrphaned(userID string) ([]*entity.Movement, error) {
	return r.list(func(m *entity.Movement) bool {
		return m.UserID == userID && m.IsOrphaned
	}), nil
}

func (r *memMovementRepo) MarkAsOrphanedByAccountID(userID, accountID, accountName, accountCurrency string) error {
	for _, m := range r.s.movements {
		if m.UserID != userID || m.AccountID != accountID || m.IsOrphaned {
			continue
		}
		pocketName := entity.OrphanDefaultName
		if p, ok := r.s.pockets[m.PocketID]; ok {
			pocketName = p.Name
		}
		_ = m.MarkAsOrphaned(accountName, accountCurrency, pocketName)
	}
	return nil
}

func (r *memMovementRepo) MarkAsOrphanedByPocketID(userID, pocketID, accountName, accountCurrency, pocketName string) error {
	for _, m := range r.s.movements {
		if m.UserID != userID || m.PocketID != pocketID || m.IsOrphaned {
			continue
		}
		_ = m.MarkAsOrphaned(accountName, accountCurrency, pocketName)
	}
	return nil
}

func (r *memMovementRepo) UpdateAccountIDByPocketID(userID, pocketID, newAccountID string) error {
	for _, m := range r.s.movements {
		if m.UserID == userID && m.PocketID == pocketID {
			m.AccountID = newAccountID
		}
	}
	return nil
}

// ── AccountRepository ─────────────────────────────────────────────────────────

type memAccountRepo struct{ s *memStore }

func (r *memAccountRepo) Create(a *entity.Account) error {
	cp := *a
	r.s.accounts[a.ID] = &cp
	return nil
}

func (r *memAccountRepo) GetByID(id, userID string) (*entity.Account, error) {
	a, ok := r.s.accounts[id]
	if !ok || a.UserID != userID {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memAccountRepo) GetByNameAndCurrency(userID, name, currency string) (*entity.Account, error) {
	for _, a := range r.s.accounts {
		if a.UserID == userID && a.Name == name && a.Currency == currency {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memAccountRepo) ListByUser(userID string) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range r.s.accounts {
		if a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memAccountRepo) Update(a *entity.Account) error {
	cp := *a
	r.s.accounts[a.ID] = &cp
	return nil
}

func (r *memAccountRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	if a, ok := r.s.accounts[id]; ok {
		a.Balance = balance
	}
	return nil
}

func (r *memAccountRepo) Delete(id, userID string) error {
	if a, ok := r.s.accounts[id]; ok && a.UserID == userID {
		delete(r.s.accounts, id)
	}
	return nil
}

// ── PocketRepository ──────────────────────────────────────────────────────────

type memPocketRepo struct{ s *memStore }

func (r *memPocketRepo) Create(p *entity.Pocket) error {
	cp := *p
	r.s.pockets[p.ID] = &cp
	return nil
}

func (r *memPocketRepo) GetByID(id, userID string) (*entity.Pocket, error) {
	p, ok := r.s.pockets[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPocketRepo) GetByAccountAndName(accountID, name string) (*entity.Pocket, error) {
	for _, p := range r.s.pockets {
		if p.AccountID == accountID && p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memPocketRepo) ListByAccount(accountID string) ([]*entity.Pocket, error) {
	var out []*entity.Pocket
	for _, p := range r.s.pockets {
		if p.AccountID == accountID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPocketRepo) Update(p *entity.Pocket) error {
	cp := *p
	r.s.pockets[p.ID] = &cp
	return nil
}

func (r *memPocketRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	if p, ok := r.s.pockets[id]; ok {
		p.Balance = balance
	}
	return nil
}

func (r *memPocketRepo) Delete(id, userID string) error {
	if p, ok := r.s.pockets[id]; ok && p.UserID == userID {
		delete(r.s.pockets, id)
	}
	return nil
}

func (r *memPocketRepo) DeleteByAccountID(accountID string) error {
	for id, p := range r.s.pockets {
		if p.AccountID == accountID {
			delete(r.s.pockets, id)
		}
	}
	return nil
}

// ── SubPocketRepository ───────────────────────────────────────────────────────

type memSubPocketRepo struct{ s *memStore }

func (r *memSubPocketRepo) Create(sp *entity.SubPocket) error {
	cp := *sp
	r.s.subPockets[sp.ID] = &cp
	return nil
}

func (r *memSubPocketRepo) GetByID(id, userID string) (*entity.SubPocket, error) {
	sp, ok := r.s.subPockets[id]
	if !ok || sp.UserID != userID {
		return nil, nil
	}
	cp := *sp
	return &cp, nil
}

func (r *memSubPocketRepo) ListByPocket(pocketID string) ([]*entity.SubPocket, error) {
	var out []*entity.SubPocket
	for _, sp := range r.s.subPockets {
		if sp.PocketID == pocketID {
			cp := *sp
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memSubPocketRepo) Update(sp *entity.SubPocket) error {
	cp := *sp
	r.s.subPockets[sp.ID] = &cp
	return nil
}

func (r *memSubPocketRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	if sp, ok := r.s.subPockets[id]; ok {
		sp.Balance = balance
	}
	return nil
}

func (r *memSubPocketRepo) Delete(id, userID string) error {
	if sp, ok := r.s.subPockets[id]; ok && sp.UserID == userID {
		delete(r.s.subPockets, id)
	}
	return nil
}

func (r *memSubPocketRepo) DeleteByPocketID(pocketID string) error {
	for id, sp := range r.s.subPockets {
		if sp.PocketID == pocketID {
			delete(r.s.subPockets, id)
		}
	}
	return nil
}

func (r *memSubPocketRepo) DeleteByAccountID(accountID string) error {
	for id, sp := range r.s.subPockets {
		if p, ok := r.s.pockets[sp.PocketID]; ok && p.AccountID == accountID {
			delete(r.s.subPockets, id)
		}
	}
	return nil
}

// ── ReminderService ───────────────────────────────────────────────────────────

// memReminders registra las invocaciones de despago de recordatorios.
type memReminders struct {
	unlinked []string
}

func (r *memReminders) UnlinkMovement(userID, movementID string) error {
	r.unlinked = append(r.unlinked, movementID)
	return nil
}
