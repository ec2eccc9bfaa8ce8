package attendance

import "context"

type AttendanceService interface {
	// CheckIn records today's arrival and returns today's record. Repeated calls
	// keep the first check-in time.
	CheckIn(ctx context.Context, employeeID string) (AttendanceRecord, error)

	// CheckOut returns today's record after stamping it, or nil when the
	// employee never checked in.
	CheckOut(ctx context.Context, employeeID string) (*AttendanceRecord, error)

	Today(ctx context.Context, employeeID string) (*AttendanceRecord, error)

	// MyAttendance lists the employee's latest records, newest first.
	MyAttendance(ctx context.Context, employeeID string) (MyAttendanceResponse, error)

	// Overview joins every employee with today's record.
	Overview(ctx context.Context, filter OverviewFilter) (OverviewResponse, error)
}
