package usecase_test

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/tu-usuario/empleos-api/internal/domain"
	"github.com/tu-usuario/empleos-api/internal/domain/entity"
)

// fakeEmployeeRepo repositorio de empleados en memoria con contador de
// consultas, para verificar que el cache evita el segundo viaje a la DB.
type fakeEmployeeRepo struct {
	employees   map[int64]*entity.Employee
	searchCalls int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[int64]*entity.Employee{}}
}

func (f *fakeEmployeeRepo) Search(_ context.Context, term string, limit, offset int) ([]*entity.Employee, error) {
	f.searchCalls++
	var all []*entity.Employee
	for _, e := range f.employees {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].FirstName < all[j].FirstName })

	var matched []*entity.Employee
	for _, e := range all {
		if term == "" || matchesEmployee(e, term) {
			matched = append(matched, e)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func matchesEmployee(e *entity.Employee, term string) bool {
	if id, err := strconv.ParseInt(term, 10, 64); err == nil {
		return e.PersonalID == id || (e.GovernmentID != nil && *e.GovernmentID == id)
	}
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.FirstName), t) ||
		strings.Contains(strings.ToLower(e.LastName), t) ||
		strings.Contains(strings.ToLower(e.Position), t)
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) (*entity.Employee, error) {
	if _, ok := f.employees[e.PersonalID]; ok {
		return nil, domain.ErrDuplicate
	}
	copied := *e
	f.employees[e.PersonalID] = &copied
	return &copied, nil
}

func (f *fakeEmployeeRepo) Attach(_ context.Context, personalID, governmentID int64) (*entity.Employee, error) {
	e, ok := f.employees[personalID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.GovernmentID = &governmentID
	copied := *e
	return &copied, nil
}

// fakeEmployerRepo repositorio de empleadores en memoria.
type fakeEmployerRepo struct {
	employers   map[int64]*entity.Employer
	searchCalls int
}

func newFakeEmployerRepo() *fakeEmployerRepo {
	return &fakeEmployerRepo{employers: map[int64]*entity.Employer{}}
}

func (f *fakeEmployerRepo) Search(_ context.Context, term string, limit, offset int) ([]*entity.Employer, error) {
	f.searchCalls++
	var all []*entity.Employer
	for _, e := range f.employers {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].EmployerName < all[j].EmployerName })

	var matched []*entity.Employer
	for _, e := range all {
		if term == "" || matchesEmployer(e, term) {
			matched = append(matched, e)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func matchesEmployer(e *entity.Employer, term string) bool {
	if id, err := strconv.ParseInt(term, 10, 64); err == nil {
		return e.GovernmentID == id
	}
	return strings.Contains(strings.ToLower(e.EmployerName), strings.ToLower(term))
}

func (f *fakeEmployerRepo) Create(_ context.Context, e *entity.Employer) (*entity.Employer, error) {
	if _, ok := f.employers[e.GovernmentID]; ok {
		return nil, domain.ErrDuplicate
	}
	copied := *e
	f.employers[e.GovernmentID] = &copied
	return &copied, nil
}

func mustEmployer(governmentID int64, name string) *entity.Employer {
	return &entity.Employer{GovernmentID: governmentID, EmployerName: name}
}

func (f *fakeEmployerRepo) GetByName(_ context.Context, name string) (*entity.Employer, error) {
	for _, e := range f.employers {
		if e.EmployerName == name {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}
