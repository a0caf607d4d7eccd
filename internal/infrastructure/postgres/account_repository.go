package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una cuenta.
func (r *AccountRepo) Create(a *entity.Account) error {
	query := `
		INSERT INTO accounts (id, user_id, name, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.UserID, a.Name, a.Currency, a.Balance, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID, escopada al usuario.
func (r *AccountRepo) GetByID(id, userID string) (*entity.Account, error) {
	query := `
		SELECT id, user_id, name, currency, balance, created_at, updated_at
		FROM accounts WHERE id = $1 AND user_id = $2`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&a.ID, &a.UserID, &a.Name, &a.Currency, &a.Balance, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// GetByNameAndCurrency localiza una cuenta por nombre y moneda (restauración
// de huérfanos).
func (r *AccountRepo) GetByNameAndCurrency(userID, name, currency string) (*entity.Account, error) {
	query := `
		SELECT id, user_id, name, currency, balance, created_at, updated_at
		FROM accounts WHERE user_id = $1 AND name = $2 AND currency = $3`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, userID, name, currency).Scan(
		&a.ID, &a.UserID, &a.Name, &a.Currency, &a.Balance, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by name: %w", err)
	}
	return &a, nil
}

// ListByUser lista las cuentas de un usuario.
func (r *AccountRepo) ListByUser(userID string) ([]*entity.Account, error) {
	query := `
		SELECT id, user_id, name, currency, balance, created_at, updated_at
		FROM accounts WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Currency, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza nombre y moneda de una cuenta.
func (r *AccountRepo) Update(a *entity.Account) error {
	query := `
		UPDATE accounts SET name = $3, currency = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.UserID, a.Name, a.Currency, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// UpdateBalance reemplaza el saldo cacheado (solo el recalculador).
func (r *AccountRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET balance = $2, updated_at = now() WHERE id = $1`, id, balance)
	if err != nil {
		return fmt.Errorf("update account balance: %w", err)
	}
	return nil
}

// Delete elimina una cuenta, escopada al usuario.
func (r *AccountRepo) Delete(id, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM accounts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
