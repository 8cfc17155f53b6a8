package entity

import "time"

// Estados de User.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// User usuario de una empresa. El rol decide qué puede editar (ver pkg/jwt).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt, nunca el password plano
	Name         string
	Role         string // admin, vendedor, analista
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
