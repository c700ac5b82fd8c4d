package repository

import (
	"context"

	"github.com/tu-usuario/empleos-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios (auth).
type UserRepository interface {
	// GetByUsername devuelve nil, nil si el usuario no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Create inserta un usuario nuevo. Devuelve domain.ErrUserAlreadyExists si
	// el username ya está tomado.
	Create(ctx context.Context, u *entity.User) error
}
