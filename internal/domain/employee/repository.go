package employee

import "context"

// EmployeeRepository is the employee collection of the HR store. Mutations never
// fail: Update on an unknown id is a no-op.
type EmployeeRepository interface {
	List(ctx context.Context) []Employee
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	Add(ctx context.Context, e Employee) Employee
	Update(ctx context.Context, id string, patch Patch)
}
