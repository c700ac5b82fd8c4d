package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/empleos-api/internal/domain"
	"github.com/tu-usuario/empleos-api/internal/domain/entity"
	"github.com/tu-usuario/empleos-api/internal/domain/repository"
)

var _ repository.EmployerRepository = (*EmployerRepo)(nil)

// EmployerRepo implementación del puerto EmployerRepository sobre PostgreSQL.
type EmployerRepo struct {
	q Querier
}

// NewEmployerRepository construye el adaptador de persistencia para empleadores. Pasar pool o tx (Querier).
func NewEmployerRepository(q Querier) *EmployerRepo {
	return &EmployerRepo{q: q}
}

// Search devuelve una página de empleadores con la misma política que la
// búsqueda de empleados: término vacío lista por nombre, numérico hace match
// exacto de government_id, texto libre hace búsqueda rankeada sobre el nombre.
func (r *EmployerRepo) Search(ctx context.Context, term string, limit, offset int) ([]*entity.Employer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var (
		rows pgx.Rows
		err  error
	)
	switch {
	case term == "":
		query := `
			SELECT government_id, employer_name
			FROM employers
			ORDER BY employer_name ASC
			LIMIT $1 OFFSET $2`
		rows, err = r.q.Query(ctx, query, limit, offset)
	case isNumeric(term):
		query := `
			SELECT government_id, employer_name
			FROM employers
			WHERE government_id::TEXT = $1
			ORDER BY government_id ASC
			LIMIT $2 OFFSET $3`
		rows, err = r.q.Query(ctx, query, term, limit, offset)
	default:
		query := `
			SELECT government_id, employer_name
			FROM employers
			WHERE to_tsvector('english', employer_name) @@ plainto_tsquery('english', $1)
			ORDER BY ts_rank_cd(
				setweight(to_tsvector('english', employer_name), 'A'),
				plainto_tsquery('english', $1)
			) DESC
			LIMIT $2 OFFSET $3`
		rows, err = r.q.Query(ctx, query, term, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("search employers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employer
	for rows.Next() {
		var e entity.Employer
		if err := rows.Scan(&e.GovernmentID, &e.EmployerName); err != nil {
			log.Warn().Err(err).Msg("empleador omitido: fila no escaneable")
			continue
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search employers rows: %w", err)
	}
	return list, nil
}

// Create persiste un nuevo empleador y devuelve el registro confirmado por la DB.
func (r *EmployerRepo) Create(ctx context.Context, e *entity.Employer) (*entity.Employer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		INSERT INTO employers (government_id, employer_name)
		VALUES ($1, $2)
		RETURNING government_id, employer_name`
	var created entity.Employer
	err := r.q.QueryRow(ctx, query, e.GovernmentID, e.EmployerName).Scan(
		&created.GovernmentID, &created.EmployerName,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert employer: %w", err)
	}
	return &created, nil
}

// GetByName busca un empleador por nombre exacto. Devuelve nil, nil si no existe.
func (r *EmployerRepo) GetByName(ctx context.Context, name string) (*entity.Employer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var e entity.Employer
	err := r.q.QueryRow(ctx, `
		SELECT government_id, employer_name
		FROM employers WHERE employer_name = $1
		LIMIT 1`, name).Scan(&e.GovernmentID, &e.EmployerName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employer by name: %w", err)
	}
	return &e, nil
}
