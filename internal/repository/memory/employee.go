package memory

import (
	"context"
	"slices"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{store: store}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) []employee.Employee {
	return slices.Clone(r.store.load().employees)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range r.store.load().employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	for _, e := range r.store.load().employees {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// Add implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Add(ctx context.Context, e employee.Employee) employee.Employee {
	e.ID = r.store.newID()
	r.store.update(func(next *state) {
		next.employees = withAppended(next.employees, e)
	})
	return e
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, patch employee.Patch) {
	r.store.update(func(next *state) {
		i := slices.IndexFunc(next.employees, func(e employee.Employee) bool { return e.ID == id })
		if i < 0 {
			return
		}
		next.employees = withReplaced(next.employees, i, patch.Apply(next.employees[i]))
	})
}
