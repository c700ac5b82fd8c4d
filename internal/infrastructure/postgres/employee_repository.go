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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db DB
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const employeeColumns = `personal_id, first_name, last_name, position, government_id`

// Search devuelve una página de empleados según la política de búsqueda:
// término vacío lista por nombre; término numérico hace match exacto contra
// personal_id o government_id; texto libre hace búsqueda full-text rankeada
// (nombre y apellido peso A, cargo B, government_id como texto C).
func (r *EmployeeRepo) Search(ctx context.Context, term string, limit, offset int) ([]*entity.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var (
		rows pgx.Rows
		err  error
	)
	switch {
	case term == "":
		query := `
			SELECT ` + employeeColumns + `
			FROM employees
			ORDER BY first_name ASC, last_name ASC
			LIMIT $1 OFFSET $2`
		rows, err = r.db.Query(ctx, query, limit, offset)
	case isNumeric(term):
		query := `
			SELECT ` + employeeColumns + `
			FROM employees
			WHERE personal_id::TEXT = $1 OR government_id::TEXT = $1
			ORDER BY personal_id ASC
			LIMIT $2 OFFSET $3`
		rows, err = r.db.Query(ctx, query, term, limit, offset)
	default:
		query := `
			SELECT ` + employeeColumns + `
			FROM employees
			WHERE (
				setweight(to_tsvector('english', COALESCE(first_name, '')), 'A') ||
				setweight(to_tsvector('english', COALESCE(last_name, '')), 'A') ||
				setweight(to_tsvector('english', COALESCE(position, '')), 'B') ||
				setweight(to_tsvector('english', COALESCE(government_id::TEXT, '')), 'C')
			) @@ plainto_tsquery('english', $1)
			ORDER BY ts_rank_cd(
				setweight(to_tsvector('english', COALESCE(first_name, '')), 'A') ||
				setweight(to_tsvector('english', COALESCE(last_name, '')), 'A') ||
				setweight(to_tsvector('english', COALESCE(position, '')), 'B') ||
				setweight(to_tsvector('english', COALESCE(government_id::TEXT, '')), 'C'),
				plainto_tsquery('english', $1)
			) DESC
			LIMIT $2 OFFSET $3`
		rows, err = r.db.Query(ctx, query, term, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.PersonalID, &e.FirstName, &e.LastName, &e.Position, &e.GovernmentID); err != nil {
			// Fila malformada: se omite y se registra, no se corta la búsqueda.
			log.Warn().Err(err).Msg("empleado omitido: fila no escaneable")
			continue
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search employees rows: %w", err)
	}
	return list, nil
}

// Create persiste un nuevo empleado y devuelve el registro confirmado por la DB.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) (*entity.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		INSERT INTO employees (personal_id, first_name, last_name, position)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + employeeColumns
	var created entity.Employee
	err := r.db.QueryRow(ctx, query, e.PersonalID, e.FirstName, e.LastName, e.Position).Scan(
		&created.PersonalID, &created.FirstName, &created.LastName, &created.Position, &created.GovernmentID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	return &created, nil
}

// Attach vincula el empleado al empleador dentro de una transacción:
// UPDATE ... RETURNING para detectar empleado inexistente y SELECT del
// registro completo antes del commit, para devolver un snapshot consistente.
func (r *EmployeeRepo) Attach(ctx context.Context, personalID, governmentID int64) (*entity.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var updatedID int64
	err = tx.QueryRow(ctx, `
		UPDATE employees SET government_id = $1
		WHERE personal_id = $2
		RETURNING personal_id`, governmentID, personalID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		// El empleador referenciado no existe: la FK lo reporta como 23503.
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("attach employee: %w", err)
	}

	var e entity.Employee
	err = tx.QueryRow(ctx, `
		SELECT `+employeeColumns+`
		FROM employees WHERE personal_id = $1`, personalID).Scan(
		&e.PersonalID, &e.FirstName, &e.LastName, &e.Position, &e.GovernmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("reload employee: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return &e, nil
}
