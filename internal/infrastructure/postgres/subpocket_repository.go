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

var _ repository.SubPocketRepository = (*SubPocketRepo)(nil)

// SubPocketRepo implementación del puerto SubPocketRepository sobre PostgreSQL.
type SubPocketRepo struct {
	q Querier
}

// NewSubPocketRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubPocketRepository(q Querier) *SubPocketRepo {
	return &SubPocketRepo{q: q}
}

// Create persiste un subbolsillo.
func (r *SubPocketRepo) Create(sp *entity.SubPocket) error {
	query := `
		INSERT INTO sub_pockets (id, user_id, pocket_id, name, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sp.ID, sp.UserID, sp.PocketID, sp.Name, sp.Balance, sp.CreatedAt, sp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subpocket: %w", err)
	}
	return nil
}

// GetByID obtiene un subbolsillo por ID, escopado al usuario.
func (r *SubPocketRepo) GetByID(id, userID string) (*entity.SubPocket, error) {
	query := `
		SELECT id, user_id, pocket_id, name, balance, created_at, updated_at
		FROM sub_pockets WHERE id = $1 AND user_id = $2`
	var sp entity.SubPocket
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&sp.ID, &sp.UserID, &sp.PocketID, &sp.Name, &sp.Balance, &sp.CreatedAt, &sp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subpocket: %w", err)
	}
	return &sp, nil
}

// ListByPocket lista los subbolsillos de un bolsillo.
func (r *SubPocketRepo) ListByPocket(pocketID string) ([]*entity.SubPocket, error) {
	query := `
		SELECT id, user_id, pocket_id, name, balance, created_at, updated_at
		FROM sub_pockets WHERE pocket_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, pocketID)
	if err != nil {
		return nil, fmt.Errorf("list subpockets: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubPocket
	for rows.Next() {
		var sp entity.SubPocket
		if err := rows.Scan(&sp.ID, &sp.UserID, &sp.PocketID, &sp.Name, &sp.Balance, &sp.CreatedAt, &sp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subpocket: %w", err)
		}
		list = append(list, &sp)
	}
	return list, rows.Err()
}

// Update renombra un subbolsillo.
func (r *SubPocketRepo) Update(sp *entity.SubPocket) error {
	query := `
		UPDATE sub_pockets SET name = $3, updated_at = $4
		WHERE id = $1 AND user_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		sp.ID, sp.UserID, sp.Name, sp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update subpocket: %w", err)
	}
	return nil
}

// UpdateBalance reemplaza el saldo cacheado (solo el recalculador).
func (r *SubPocketRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sub_pockets SET balance = $2, updated_at = now() WHERE id = $1`, id, balance)
	if err != nil {
		return fmt.Errorf("update subpocket balance: %w", err)
	}
	return nil
}

// Delete elimina un subbolsillo, escopado al usuario.
func (r *SubPocketRepo) Delete(id, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM sub_pockets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete subpocket: %w", err)
	}
	return nil
}

// DeleteByPocketID elimina los subbolsillos de un bolsillo (cascada de
// eliminación de bolsillo).
func (r *SubPocketRepo) DeleteByPocketID(pocketID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM sub_pockets WHERE pocket_id = $1`, pocketID)
	if err != nil {
		return fmt.Errorf("delete subpockets by pocket: %w", err)
	}
	return nil
}

// DeleteByAccountID elimina los subbolsillos de todos los bolsillos de una
// cuenta (cascada de eliminación de cuenta).
func (r *SubPocketRepo) DeleteByAccountID(accountID string) error {
	query := `
		DELETE FROM sub_pockets
		WHERE pocket_id IN (SELECT id FROM pockets WHERE account_id = $1)`
	_, err := r.q.Exec(context.Background(), query, accountID)
	if err != nil {
		return fmt.Errorf("delete subpockets by account: %w", err)
	}
	return nil
}
