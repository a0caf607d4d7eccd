package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/finanzas-api/internal/application/ledger"
)

var _ ledger.ReminderService = (*ReminderRepo)(nil)

// ReminderRepo adaptador mínimo sobre la tabla de recordatorios de pago. El
// subsistema de recordatorios vive fuera de este servicio; aquí solo se
// despaga el recordatorio cuando el movimiento que lo pagó se elimina.
type ReminderRepo struct {
	pool *pgxpool.Pool
}

// NewReminderRepository construye el adaptador.
func NewReminderRepository(pool *pgxpool.Pool) *ReminderRepo {
	return &ReminderRepo{pool: pool}
}

// UnlinkMovement despaga cualquier recordatorio ligado al movimiento.
func (r *ReminderRepo) UnlinkMovement(userID, movementID string) error {
	query := `
		UPDATE reminders SET movement_id = NULL, is_paid = FALSE, updated_at = now()
		WHERE user_id = $1 AND movement_id = $2`
	_, err := r.pool.Exec(context.Background(), query, userID, movementID)
	if err != nil {
		return fmt.Errorf("unlink reminder: %w", err)
	}
	return nil
}
