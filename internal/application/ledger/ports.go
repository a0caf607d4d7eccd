package ledger

// ReminderService colaborador externo de recordatorios de pago. Al eliminar
// un movimiento se despaga cualquier recordatorio que lo referencie; los
// recordatorios no pertenecen a este núcleo.
type ReminderService interface {
	UnlinkMovement(userID, movementID string) error
}
