package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/empleos-api/internal/application/dto"
	"github.com/tu-usuario/empleos-api/internal/application/usecase"
	"github.com/tu-usuario/empleos-api/internal/domain"
	"github.com/tu-usuario/empleos-api/internal/infrastructure/cache"
)

func newEmployerUC(repo *fakeEmployerRepo, ttl time.Duration) *usecase.EmployerUseCase {
	searchCache := cache.NewStoreWithTTL[[]dto.EmployerResponse](100, 4, ttl)
	return usecase.NewEmployerUseCase(repo, searchCache)
}

func TestEmployerSearch_SegundaLlamadaSaleDelCache(t *testing.T) {
	repo := newFakeEmployerRepo()
	uc := newEmployerUC(repo, time.Minute)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateEmployerRequest{GovernmentID: 100, EmployerName: "Acme"})
	require.NoError(t, err)

	first, err := uc.Search(ctx, "Acme", 0, 10)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, repo.searchCalls)

	second, err := uc.Search(ctx, "Acme", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.searchCalls, "el hit de cache no debe tocar el repositorio")
	assert.Equal(t, first, second)
}

func TestEmployerSearch_TerminoNumericoMatchExacto(t *testing.T) {
	repo := newFakeEmployerRepo()
	uc := newEmployerUC(repo, time.Minute)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateEmployerRequest{GovernmentID: 100, EmployerName: "Acme"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateEmployerRequest{GovernmentID: 200, EmployerName: "Acme 100 Sucursal"})
	require.NoError(t, err)

	results, err := uc.Search(ctx, "100", 0, 10)
	require.NoError(t, err)
	require.Len(t, results, 1, "término numérico solo hace match exacto de government_id")
	assert.Equal(t, int64(100), results[0].GovernmentID)
}

func TestEmployerCreate_DuplicadoRetornaConflicto(t *testing.T) {
	repo := newFakeEmployerRepo()
	uc := newEmployerUC(repo, time.Minute)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateEmployerRequest{GovernmentID: 100, EmployerName: "Acme"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateEmployerRequest{GovernmentID: 100, EmployerName: "Acme Bis"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.employers, 1)
}
