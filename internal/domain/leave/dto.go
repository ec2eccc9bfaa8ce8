package leave

import (
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/paging"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID   string `json:"-"`
	EmployeeName string `json:"-"`
	Type         string `json:"type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
}

// Validate checks field shapes only; date order and leave balance are not
// enforced.
func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.Type, Types) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: paid, sick, unpaid",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *SubmitLeaveRequest) ToLeaveRequest() LeaveRequest {
	return LeaveRequest{
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Type:         Type(r.Type),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Reason:       r.Reason,
	}
}

// ReviewLeaveRequest approves or rejects a request. Comments replace any
// previous comments; nil clears them.
type ReviewLeaveRequest struct {
	ID         string  `json:"-"`
	ApprovedBy string  `json:"-"`
	Comments   *string `json:"comments,omitempty"`
}

func (r *ReviewLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.ApprovedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "approved_by",
			Message: "approved_by is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveFilter selects requests for the review queue. Pending and processed
// requests are paged independently.
type LeaveFilter struct {
	Search string `json:"search,omitempty"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`

	PendingPage   int `json:"pending_page"`
	ProcessedPage int `json:"processed_page"`
	Limit         int `json:"limit"`
}

func (f *LeaveFilter) Validate() error {
	errs := paging.Normalize(&f.PendingPage, &f.Limit)
	for _, e := range paging.Normalize(&f.ProcessedPage, &f.Limit) {
		if e.Field == "page" {
			e.Field = "processed_page"
			errs = append(errs, e)
		}
	}
	for i := range errs {
		if errs[i].Field == "page" {
			errs[i].Field = "pending_page"
		}
	}

	if f.Type != "" && f.Type != "all" && !validator.IsInSlice(f.Type, Types) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: all, paid, sick, unpaid",
		})
	}
	if f.Status != "" && f.Status != "all" && !validator.IsInSlice(f.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: all, pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestPage struct {
	Requests []LeaveRequest `json:"requests"`
	paging.Meta
}

type ListLeaveResponse struct {
	Pending   RequestPage `json:"pending"`
	Processed RequestPage `json:"processed"`
}
