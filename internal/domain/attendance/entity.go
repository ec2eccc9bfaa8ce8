package attendance

import "github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
)

var Statuses = []string{string(StatusPresent), string(StatusAbsent), string(StatusHalfDay), string(StatusLeave)}

// AttendanceRecord is one employee's attendance for one calendar day.
// (EmployeeID, Date) is unique across the store.
type AttendanceRecord struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`                // YYYY-MM-DD
	CheckIn    *string `json:"check_in,omitempty"`  // HH:MM
	CheckOut   *string `json:"check_out,omitempty"` // HH:MM
	Status     Status  `json:"status"`
	Remarks    *string `json:"remarks,omitempty"`
}

// WorkedMinutes is the time from check-in to check-out. ok is false until both
// are set, and when check-out is earlier than check-in.
func (r AttendanceRecord) WorkedMinutes() (minutes int, ok bool) {
	if r.CheckIn == nil || r.CheckOut == nil {
		return 0, false
	}
	in, okIn := clock.MinutesOfDay(*r.CheckIn)
	out, okOut := clock.MinutesOfDay(*r.CheckOut)
	if !okIn || !okOut {
		return 0, false
	}
	if out < in {
		return 0, false
	}
	return out - in, true
}
