package leave

type Type string

const (
	TypePaid   Type = "paid"
	TypeSick   Type = "sick"
	TypeUnpaid Type = "unpaid"
)

var Types = []string{string(TypePaid), string(TypeSick), string(TypeUnpaid)}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var Statuses = []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}

// LeaveRequest is a leave application. EmployeeName is captured when the
// request is made and is not refreshed when the employee is renamed.
// ApprovedBy and ApprovedDate are set only once the request leaves pending.
type LeaveRequest struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Type         Type    `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       Status  `json:"status"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	ApprovedDate *string `json:"approved_date,omitempty"`
	Comments     *string `json:"comments,omitempty"`
}

func (r LeaveRequest) IsPending() bool {
	return r.Status == StatusPending
}
