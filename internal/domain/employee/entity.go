package employee

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// LeaveBalance holds remaining leave days per type.
type LeaveBalance struct {
	Paid   int `json:"paid"`
	Sick   int `json:"sick"`
	Unpaid int `json:"unpaid"`
}

// Employee is a directory entry. EmployeeID is the stable business key used by
// attendance records and leave requests; ID is the store-internal identifier.
type Employee struct {
	ID           string       `json:"id"`
	EmployeeID   string       `json:"employee_id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Department   string       `json:"department"`
	Position     string       `json:"position"`
	JoinDate     string       `json:"join_date"` // YYYY-MM-DD
	Salary       int64        `json:"salary"`    // annual, whole rupees
	LeaveBalance LeaveBalance `json:"leave_balance"`
	Status       Status       `json:"status"`
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}

// Patch is a partial update. Nil fields are left untouched; ID and EmployeeID
// are not patchable.
type Patch struct {
	Name         *string
	Email        *string
	Department   *string
	Position     *string
	JoinDate     *string
	Salary       *int64
	LeaveBalance *LeaveBalance
	Status       *Status
}

// Apply merges p into e and returns the result.
func (p Patch) Apply(e Employee) Employee {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.Position != nil {
		e.Position = *p.Position
	}
	if p.JoinDate != nil {
		e.JoinDate = *p.JoinDate
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	if p.LeaveBalance != nil {
		e.LeaveBalance = *p.LeaveBalance
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	return e
}
