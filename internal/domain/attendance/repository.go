package attendance

import "context"

// AttendanceRepository is the attendance collection of the HR store. CheckIn and
// CheckOut read the store clock and decide atomically against today's record.
type AttendanceRepository interface {
	List(ctx context.Context) []AttendanceRecord
	ListByDate(ctx context.Context, date string) []AttendanceRecord
	ListByEmployee(ctx context.Context, employeeID string) []AttendanceRecord
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (AttendanceRecord, bool)

	// CheckIn creates today's present record unless one already exists, and
	// returns today's record. created is true only for the call that made it.
	CheckIn(ctx context.Context, employeeID string) (rec AttendanceRecord, created bool)

	// CheckOut stamps the check-out time on today's record. ok is false when
	// there is no record for today.
	CheckOut(ctx context.Context, employeeID string) (rec AttendanceRecord, ok bool)
}
