package entity

import "time"

// User usuario de la aplicación (solo autenticación; todo recurso se escopa
// por su ID).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
