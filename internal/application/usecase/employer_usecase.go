package usecase

import (
	"context"

	"github.com/tu-usuario/empleos-api/internal/application/dto"
	"github.com/tu-usuario/empleos-api/internal/domain/entity"
	"github.com/tu-usuario/empleos-api/internal/domain/repository"
	"github.com/tu-usuario/empleos-api/internal/infrastructure/cache"
)

const opSearchEmployers = "search_employers"

// EmployerUseCase casos de uso de empleadores: búsqueda con cache read-through y alta.
type EmployerUseCase struct {
	repo        repository.EmployerRepository
	searchCache *cache.Store[[]dto.EmployerResponse]
}

// NewEmployerUseCase construye el caso de uso.
func NewEmployerUseCase(repo repository.EmployerRepository, searchCache *cache.Store[[]dto.EmployerResponse]) *EmployerUseCase {
	return &EmployerUseCase{repo: repo, searchCache: searchCache}
}

// Search busca empleadores con la misma disciplina de cache que los empleados.
func (uc *EmployerUseCase) Search(ctx context.Context, term string, offset, limit int) ([]dto.EmployerResponse, error) {
	term = normalizeTerm(term)
	key := cache.SearchKey(opSearchEmployers, term, offset, limit)
	if cached, ok := uc.searchCache.Get(key); ok {
		return cached, nil
	}

	employers, err := uc.repo.Search(ctx, term, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployerResponse, 0, len(employers))
	for _, e := range employers {
		out = append(out, dto.EmployerResponse{
			GovernmentID: e.GovernmentID,
			EmployerName: e.EmployerName,
		})
	}
	uc.searchCache.Set(key, out)
	return out, nil
}

// Create crea un empleador. Devuelve domain.ErrDuplicate si el government_id ya existe.
func (uc *EmployerUseCase) Create(ctx context.Context, in dto.CreateEmployerRequest) (*dto.EmployerResponse, error) {
	created, err := uc.repo.Create(ctx, &entity.Employer{
		GovernmentID: in.GovernmentID,
		EmployerName: in.EmployerName,
	})
	if err != nil {
		return nil, err
	}
	return &dto.EmployerResponse{
		GovernmentID: created.GovernmentID,
		EmployerName: created.EmployerName,
	}, nil
}
