package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	Departments(ctx context.Context) []string
	Get(ctx context.Context, id string) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (*Employee, error)
}
