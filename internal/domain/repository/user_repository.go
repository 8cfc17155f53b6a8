package repository

import (
	"context"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// El email es único en todo el sistema: el login no pide empresa.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail devuelve (nil, nil) si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
