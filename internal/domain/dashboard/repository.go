package dashboard

import (
	"context"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/leave"
)

// HRData is a consistent view of all three collections taken at one instant.
// Callers must treat the slices as read-only.
type HRData struct {
	Today         string
	Employees     []employee.Employee
	Attendance    []attendance.AttendanceRecord
	LeaveRequests []leave.LeaveRequest
}

type DashboardRepository interface {
	Snapshot(ctx context.Context) HRData
}
