package repository

import (
	"context"

	"github.com/tu-usuario/empleos-api/internal/domain/entity"
)

// EmployerRepository puerto de persistencia para empleadores.
type EmployerRepository interface {
	Search(ctx context.Context, term string, limit, offset int) ([]*entity.Employer, error)
	// Create inserta un empleador nuevo. Devuelve domain.ErrDuplicate si el
	// government_id ya existe.
	Create(ctx context.Context, e *entity.Employer) (*entity.Employer, error)
	// GetByName busca un empleador por nombre exacto. Devuelve nil, nil si no existe.
	GetByName(ctx context.Context, name string) (*entity.Employer, error)
}
