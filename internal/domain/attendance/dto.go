package attendance

import (
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/paging"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/validator"
)

// MyAttendanceLimit caps the personal history view.
const MyAttendanceLimit = 30

type RecordResponse struct {
	AttendanceRecord
	Hours float64 `json:"hours"`
}

type MyAttendanceResponse struct {
	Records     []RecordResponse `json:"records"`
	PresentDays int              `json:"present_days"`
	AbsentDays  int              `json:"absent_days"`
	LeaveDays   int              `json:"leave_days"`
	HalfDays    int              `json:"half_days"`
}

type OverviewFilter struct {
	Search     string `json:"search,omitempty"`
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *OverviewFilter) Validate() error {
	errs := paging.Normalize(&f.Page, &f.Limit)

	if f.Status != "" && f.Status != "all" && !validator.IsInSlice(f.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: all, present, absent, half-day, leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RosterEntry is one employee on today's attendance sheet. Employees without a
// record show as absent.
type RosterEntry struct {
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	Status     Status  `json:"status"`
	Worked     *string `json:"worked,omitempty"` // "8h 15m"
}

type OverviewResponse struct {
	Date            string        `json:"date"`
	PresentToday    int           `json:"present_today"`
	ActiveEmployees int           `json:"active_employees"`
	AttendanceRate  int           `json:"attendance_rate"`
	AverageCheckIn  string        `json:"average_check_in"`
	Departments     []string      `json:"departments"`
	Records         []RosterEntry `json:"records"`
	paging.Meta
}
