package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// Columnas de la tabla movements, en el orden que espera scanMovement.
const movementColumns = `
	id, user_id, type, account_id, pocket_id, sub_pocket_id, amount,
	displayed_date, notes, is_pending, is_orphaned,
	orphaned_account_name, orphaned_account_currency, orphaned_pocket_name,
	created_at, updated_at`

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.UserID, m.Type, m.AccountID, m.PocketID, nullable(m.SubPocketID),
		m.Amount, m.DisplayedDate, nullable(m.Notes), m.IsPending, m.IsOrphaned,
		nullable(m.OrphanedAccountName), nullable(m.OrphanedAccountCurrency), nullable(m.OrphanedPocketName),
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID, escopado al usuario.
func (r *MovementRepo) GetByID(id, userID string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1 AND user_id = $2`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Update reescribe todos los campos mutables del movimiento.
func (r *MovementRepo) Update(m *entity.Movement) error {
	query := `
		UPDATE movements SET
			type = $3, account_id = $4, pocket_id = $5, sub_pocket_id = $6,
			amount = $7, displayed_date = $8, notes = $9,
			is_pending = $10, is_orphaned = $11,
			orphaned_account_name = $12, orphaned_account_currency = $13, orphaned_pocket_name = $14,
			updated_at = $15
		WHERE id = $1 AND user_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.UserID, m.Type, m.AccountID, m.PocketID, nullable(m.SubPocketID),
		m.Amount, m.DisplayedDate, nullable(m.Notes), m.IsPending, m.IsOrphaned,
		nullable(m.OrphanedAccountName), nullable(m.OrphanedAccountCurrency), nullable(m.OrphanedPocketName),
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// Delete elimina un movimiento, escopado al usuario.
func (r *MovementRepo) Delete(id, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM movements WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// ListByAccount lista los movimientos de una cuenta.
func (r *MovementRepo) ListByAccount(userID, accountID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements WHERE user_id = $1 AND account_id = $2 ORDER BY displayed_date DESC, created_at DESC`
	return r.list(query, userID, accountID)
}

// ListByPocket lista los movimientos de un bolsillo.
func (r *MovementRepo) ListByPocket(userID, pocketID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements WHERE user_id = $1 AND pocket_id = $2 ORDER BY displayed_date DESC, created_at DESC`
	return r.list(query, userID, pocketID)
}

// ListBySubPocket lista los movimientos de un subbolsillo.
func (r *MovementRepo) ListBySubPocket(userID, subPocketID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements WHERE user_id = $1 AND sub_pocket_id = $2 ORDER BY displayed_date DESC, created_at DESC`
	return r.list(query, userID, subPocketID)
}

// ListByMonth lista los movimientos cuya fecha mostrada cae en el mes dado.
func (r *MovementRepo) ListByMonth(userID string, year int, month time.Month) ([]*entity.Movement, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	query := `SELECT ` + movementColumns + `
		FROM movements WHERE user_id = $1 AND displayed_date >= $2 AND displayed_date < $3
		ORDER BY displayed_date DESC, created_at DESC`
	return r.list(query, userID, from, to)
}

// ListPending lista los movimientos pendientes del usuario.
func (r *MovementRepo) ListPending(userID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements WHERE user_id = $1 AND is_pending = TRUE ORDER BY displayed_date DESC, created_at DESC`
	return r.list(query, userID)
}

// ListOrphaned lista los movimientos huérfanos del usuario.
func (r *MovementRepo) ListOrphaned(userID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements WHERE user_id = $1 AND is_orphaned = TRUE ORDER BY displayed_date DESC, created_at DESC`
	return r.list(query, userID)
}

// MarkAsOrphanedByAccountID deja huérfanos todos los movimientos de una
// cuenta. El nombre del bolsillo del snapshot se resuelve por movimiento
// mientras la fila del bolsillo todavía existe (se invoca antes de borrar los
// bolsillos, dentro de la misma transacción).
func (r *MovementRepo) MarkAsOrphanedByAccountID(userID, accountID, accountName, accountCurrency string) error {
	query := `
		UPDATE movements m SET
			is_orphaned = TRUE,
			orphaned_account_name = $3,
			orphaned_account_currency = $4,
			orphaned_pocket_name = COALESCE((SELECT p.name FROM pockets p WHERE p.id = m.pocket_id), 'Unknown'),
			updated_at = now()
		WHERE m.user_id = $1 AND m.account_id = $2 AND m.is_orphaned = FALSE`
	_, err := r.q.Exec(context.Background(), query, userID, accountID, accountName, accountCurrency)
	if err != nil {
		return fmt.Errorf("mark orphaned by account: %w", err)
	}
	return nil
}

// MarkAsOrphanedByPocketID deja huérfanos todos los movimientos de un bolsillo.
func (r *MovementRepo) MarkAsOrphanedByPocketID(userID, pocketID, accountName, accountCurrency, pocketName string) error {
	query := `
		UPDATE movements SET
			is_orphaned = TRUE,
			orphaned_account_name = $3,
			orphaned_account_currency = $4,
			orphaned_pocket_name = $5,
			updated_at = now()
		WHERE user_id = $1 AND pocket_id = $2 AND is_orphaned = FALSE`
	_, err := r.q.Exec(context.Background(), query, userID, pocketID, accountName, accountCurrency, pocketName)
	if err != nil {
		return fmt.Errorf("mark orphaned by pocket: %w", err)
	}
	return nil
}

// UpdateAccountIDByPocketID reescribe la cuenta de todos los movimientos de un
// bolsillo; se usa al trasladar un bolsillo a otra cuenta.
func (r *MovementRepo) UpdateAccountIDByPocketID(userID, pocketID, newAccountID string) error {
	query := `
		UPDATE movements SET account_id = $3, updated_at = now()
		WHERE user_id = $1 AND pocket_id = $2 AND is_orphaned = FALSE`
	_, err := r.q.Exec(context.Background(), query, userID, pocketID, newAccountID)
	if err != nil {
		return fmt.Errorf("update account by pocket: %w", err)
	}
	return nil
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// scanMovement lee una fila de movements; los campos opcionales van como
// punteros por las columnas NULL.
func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var subPocketID, notes, orphanName, orphanCurrency, orphanPocket *string
	err := row.Scan(
		&m.ID, &m.UserID, &m.Type, &m.AccountID, &m.PocketID, &subPocketID,
		&m.Amount, &m.DisplayedDate, &notes, &m.IsPending, &m.IsOrphaned,
		&orphanName, &orphanCurrency, &orphanPocket,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.SubPocketID = deref(subPocketID)
	m.Notes = deref(notes)
	m.OrphanedAccountName = deref(orphanName)
	m.OrphanedAccountCurrency = deref(orphanCurrency)
	m.OrphanedPocketName = deref(orphanPocket)
	if m.IsOrphaned {
		// Registros huérfanos antiguos pueden venir con el snapshot incompleto.
		if m.OrphanedAccountName == "" {
			m.OrphanedAccountName = entity.OrphanDefaultName
		}
		if m.OrphanedAccountCurrency == "" {
			m.OrphanedAccountCurrency = entity.OrphanDefaultCurrency
		}
		if m.OrphanedPocketName == "" {
			m.OrphanedPocketName = entity.OrphanDefaultName
		}
	}
	return &m, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
