package repository

import (
	"context"

	"github.com/tu-usuario/empleos-api/internal/domain/entity"
)

// EmployeeRepository puerto de persistencia para empleados.
type EmployeeRepository interface {
	// Search devuelve una página de empleados. Con term vacío lista por nombre;
	// con term numérico hace match exacto de identificadores; con texto libre
	// hace búsqueda rankeada.
	Search(ctx context.Context, term string, limit, offset int) ([]*entity.Employee, error)
	// Create inserta un empleado nuevo. Devuelve domain.ErrDuplicate si el
	// personal_id ya existe.
	Create(ctx context.Context, e *entity.Employee) (*entity.Employee, error)
	// Attach vincula el empleado al empleador y devuelve el registro recargado.
	// Devuelve domain.ErrNotFound si el empleado no existe.
	Attach(ctx context.Context, personalID, governmentID int64) (*entity.Employee, error)
}
