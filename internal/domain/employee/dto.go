package employee

import (
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/paging"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID   string       `json:"employee_id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Department   string       `json:"department"`
	Position     string       `json:"position"`
	JoinDate     string       `json:"join_date"`
	Salary       int64        `json:"salary"`
	LeaveBalance LeaveBalance `json:"leave_balance"`
	Status       string       `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be 2-5 uppercase letters followed by 3-6 digits, e.g. EMP0001",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}
	errs = append(errs, validateBalance(r.LeaveBalance)...)

	if r.Status == "" {
		r.Status = string(StatusActive)
	} else if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEmployee builds the entity; the store assigns ID.
func (r *CreateEmployeeRequest) ToEmployee() Employee {
	return Employee{
		EmployeeID:   r.EmployeeID,
		Name:         r.Name,
		Email:        r.Email,
		Department:   r.Department,
		Position:     r.Position,
		JoinDate:     r.JoinDate,
		Salary:       r.Salary,
		LeaveBalance: r.LeaveBalance,
		Status:       Status(r.Status),
	}
}

type UpdateEmployeeRequest struct {
	ID           string        `json:"-"`
	Name         *string       `json:"name,omitempty"`
	Email        *string       `json:"email,omitempty"`
	Department   *string       `json:"department,omitempty"`
	Position     *string       `json:"position,omitempty"`
	JoinDate     *string       `json:"join_date,omitempty"`
	Salary       *int64        `json:"salary,omitempty"`
	LeaveBalance *LeaveBalance `json:"leave_balance,omitempty"`
	Status       *string       `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}
	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must not be empty",
		})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}
	if r.LeaveBalance != nil {
		errs = append(errs, validateBalance(*r.LeaveBalance)...)
	}
	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpdateEmployeeRequest) ToPatch() Patch {
	p := Patch{
		Name:         r.Name,
		Email:        r.Email,
		Department:   r.Department,
		Position:     r.Position,
		JoinDate:     r.JoinDate,
		Salary:       r.Salary,
		LeaveBalance: r.LeaveBalance,
	}
	if r.Status != nil {
		s := Status(*r.Status)
		p.Status = &s
	}
	return p
}

func validateBalance(b LeaveBalance) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if b.Paid < 0 || b.Sick < 0 || b.Unpaid < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_balance",
			Message: "leave balances must not be negative",
		})
	}
	return errs
}

type EmployeeFilter struct {
	Search     string `json:"search,omitempty"`
	Department string `json:"department,omitempty"` // "all" or empty disables
	Status     string `json:"status,omitempty"`     // "all" or empty disables

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
	errs := paging.Normalize(&f.Page, &f.Limit)

	if f.Status != "" && f.Status != "all" && !Status(f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: all, active, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeeResponse struct {
	Employees []Employee `json:"employees"`
	paging.Meta
}
