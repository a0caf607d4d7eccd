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

var _ repository.PocketRepository = (*PocketRepo)(nil)

// PocketRepo implementación del puerto PocketRepository sobre PostgreSQL.
type PocketRepo struct {
	q Querier
}

// NewPocketRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPocketRepository(q Querier) *PocketRepo {
	return &PocketRepo{q: q}
}

// Create persiste un bolsillo.
func (r *PocketRepo) Create(p *entity.Pocket) error {
	query := `
		INSERT INTO pockets (id, user_id, account_id, name, kind, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.UserID, p.AccountID, p.Name, p.Kind, p.Balance, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pocket: %w", err)
	}
	return nil
}

// GetByID obtiene un bolsillo por ID, escopado al usuario.
func (r *PocketRepo) GetByID(id, userID string) (*entity.Pocket, error) {
	query := `
		SELECT id, user_id, account_id, name, kind, balance, created_at, updated_at
		FROM pockets WHERE id = $1 AND user_id = $2`
	var p entity.Pocket
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&p.ID, &p.UserID, &p.AccountID, &p.Name, &p.Kind, &p.Balance, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pocket: %w", err)
	}
	return &p, nil
}

// GetByAccountAndName localiza un bolsillo por nombre dentro de una cuenta
// (restauración de huérfanos).
func (r *PocketRepo) GetByAccountAndName(accountID, name string) (*entity.Pocket, error) {
	query := `
		SELECT id, user_id, account_id, name, kind, balance, created_at, updated_at
		FROM pockets WHERE account_id = $1 AND name = $2`
	var p entity.Pocket
	err := r.q.QueryRow(context.Background(), query, accountID, name).Scan(
		&p.ID, &p.UserID, &p.AccountID, &p.Name, &p.Kind, &p.Balance, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pocket by name: %w", err)
	}
	return &p, nil
}

// ListByAccount lista los bolsillos de una cuenta.
func (r *PocketRepo) ListByAccount(accountID string) ([]*entity.Pocket, error) {
	query := `
		SELECT id, user_id, account_id, name, kind, balance, created_at, updated_at
		FROM pockets WHERE account_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list pockets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pocket
	for rows.Next() {
		var p entity.Pocket
		if err := rows.Scan(&p.ID, &p.UserID, &p.AccountID, &p.Name, &p.Kind, &p.Balance, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pocket: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre y cuenta dueña de un bolsillo.
func (r *PocketRepo) Update(p *entity.Pocket) error {
	query := `
		UPDATE pockets SET account_id = $3, name = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.UserID, p.AccountID, p.Name, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pocket: %w", err)
	}
	return nil
}

// UpdateBalance reemplaza el saldo cacheado (solo el recalculador).
func (r *PocketRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pockets SET balance = $2, updated_at = now() WHERE id = $1`, id, balance)
	if err != nil {
		return fmt.Errorf("update pocket balance: %w", err)
	}
	return nil
}

// Delete elimina un bolsillo, escopado al usuario.
func (r *PocketRepo) Delete(id, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM pockets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete pocket: %w", err)
	}
	return nil
}

// DeleteByAccountID elimina todos los bolsillos de una cuenta (cascada de
// eliminación de cuenta).
func (r *PocketRepo) DeleteByAccountID(accountID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM pockets WHERE account_id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("delete pockets by account: %w", err)
	}
	return nil
}
