package dashboard

import (
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/leave"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/hrstats"
	"github.com/shopspring/decimal"
)

const (
	RecentLeaveLimit     = 5
	DepartmentStatsLimit = 10
)

// ========== ADMIN DASHBOARD ==========

type AdminDashboardResponse struct {
	Date string `json:"date"`

	TotalEmployees    int `json:"total_employees"`
	ActiveEmployees   int `json:"active_employees"`
	InactiveEmployees int `json:"inactive_employees"`

	PresentToday   int    `json:"present_today"`
	AttendanceRate int    `json:"attendance_rate"`
	AverageCheckIn string `json:"average_check_in"`

	PendingLeaves int `json:"pending_leaves"`

	// Sum of monthly salaries of active employees.
	MonthlyPayroll        decimal.Decimal `json:"monthly_payroll"`
	MonthlyPayrollDisplay string          `json:"monthly_payroll_display"`

	RecentLeaveRequests []leave.LeaveRequest     `json:"recent_leave_requests"`
	DepartmentStats     []hrstats.DepartmentStat `json:"department_stats"`
}

// ========== EMPLOYEE DASHBOARD ==========

type EmployeeDashboardResponse struct {
	Employee         *employee.Employee           `json:"employee"`
	TodayAttendance  *attendance.AttendanceRecord `json:"today_attendance"`
	PaidLeaveBalance int                          `json:"paid_leave_balance"`
	PendingRequests  int                          `json:"pending_requests"`
	CurrentMonth     string                       `json:"current_month"`
}
