package usecase

import (
	"context"

	"github.com/tu-usuario/empleos-api/internal/application/dto"
	"github.com/tu-usuario/empleos-api/internal/domain"
	"github.com/tu-usuario/empleos-api/internal/domain/entity"
	"github.com/tu-usuario/empleos-api/internal/domain/repository"
	"github.com/tu-usuario/empleos-api/internal/infrastructure/cache"
)

const opSearchEmployees = "search_employees"

// EmployeeUseCase casos de uso de empleados: búsqueda con cache read-through,
// alta y vinculación a empleador.
type EmployeeUseCase struct {
	repo         repository.EmployeeRepository
	employerRepo repository.EmployerRepository
	searchCache  *cache.Store[[]dto.EmployeeResponse]
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(
	repo repository.EmployeeRepository,
	employerRepo repository.EmployerRepository,
	searchCache *cache.Store[[]dto.EmployeeResponse],
) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, employerRepo: employerRepo, searchCache: searchCache}
}

// Search busca empleados. El resultado se sirve desde el cache cuando existe
// una entrada fresca para (término, offset, limit); en miss se consulta la DB
// y se escribe la entrada con el TTL fijo antes de responder. Dos misses
// concurrentes idénticos pueden poblar el cache dos veces; es inocuo.
func (uc *EmployeeUseCase) Search(ctx context.Context, term string, offset, limit int) ([]dto.EmployeeResponse, error) {
	term = normalizeTerm(term)
	key := cache.SearchKey(opSearchEmployees, term, offset, limit)
	if cached, ok := uc.searchCache.Get(key); ok {
		return cached, nil
	}

	employees, err := uc.repo.Search(ctx, term, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	uc.searchCache.Set(key, out)
	return out, nil
}

// Create crea un empleado. Devuelve domain.ErrDuplicate si el personal_id ya existe.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	created, err := uc.repo.Create(ctx, &entity.Employee{
		PersonalID: in.PersonalID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Position:   in.Position,
	})
	if err != nil {
		return nil, err
	}
	out := toEmployeeResponse(created)
	return &out, nil
}

// Attach vincula un empleado a un empleador. Si no viene government_id se
// resuelve por employer_name. Devuelve domain.ErrNotFound si el empleado (o el
// empleador por nombre) no existe y domain.ErrInvalidInput si no hay con qué
// resolver el empleador.
func (uc *EmployeeUseCase) Attach(ctx context.Context, in dto.AttachEmployeeRequest) (*dto.EmployeeResponse, error) {
	governmentID := in.GovernmentID
	if governmentID == 0 {
		if in.EmployerName == "" {
			return nil, domain.ErrInvalidInput
		}
		employer, err := uc.employerRepo.GetByName(ctx, in.EmployerName)
		if err != nil {
			return nil, err
		}
		if employer == nil {
			return nil, domain.ErrNotFound
		}
		governmentID = employer.GovernmentID
	}

	updated, err := uc.repo.Attach(ctx, in.PersonalID, governmentID)
	if err != nil {
		return nil, err
	}
	out := toEmployeeResponse(updated)
	return &out, nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		PersonalID:   e.PersonalID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Position:     e.Position,
		GovernmentID: e.GovernmentID,
	}
}
