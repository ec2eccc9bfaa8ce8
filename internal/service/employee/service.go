package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/hrstats"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/paging"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]employee.Employee, 0)
	for _, e := range s.employeeRepo.List(ctx) {
		if !matchesEmployee(e, search, filter.Department, filter.Status) {
			continue
		}
		matched = append(matched, e)
	}

	page, meta := paging.Slice(matched, filter.Page, filter.Limit)
	return employee.ListEmployeeResponse{Employees: page, Meta: meta}, nil
}

func matchesEmployee(e employee.Employee, search, department, status string) bool {
	if department != "" && department != "all" && e.Department != department {
		return false
	}
	if status != "" && status != "all" && string(e.Status) != status {
		return false
	}
	if search == "" {
		return true
	}
	for _, field := range []string{e.Name, e.EmployeeID, e.Email, e.Department, e.Position} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// Departments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Departments(ctx context.Context) []string {
	return hrstats.Departments(s.employeeRepo.List(ctx))
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee %q: %w", id, err)
	}
	return e, nil
}

// GetByEmployeeID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	if strings.TrimSpace(employeeID) == "" {
		return employee.Employee{}, employee.ErrEmployeeIDRequired
	}
	e, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee %q: %w", employeeID, err)
	}
	return e, nil
}

// Create implements employee.EmployeeService.
//
// Uniqueness is checked against the current snapshot only; two concurrent
// creates with the same employee ID can both pass.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	for _, e := range s.employeeRepo.List(ctx) {
		if e.EmployeeID == req.EmployeeID {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		if strings.EqualFold(e.Email, req.Email) {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	return s.employeeRepo.Add(ctx, req.ToEmployee()), nil
}

// Update implements employee.EmployeeService. An unknown id is not an error;
// it returns nil.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (*employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Email != nil {
		for _, e := range s.employeeRepo.List(ctx) {
			if e.ID != req.ID && strings.EqualFold(e.Email, *req.Email) {
				return nil, employee.ErrEmailExists
			}
		}
	}

	s.employeeRepo.Update(ctx, req.ID, req.ToPatch())

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reload employee %q: %w", req.ID, err)
	}
	return &updated, nil
}
