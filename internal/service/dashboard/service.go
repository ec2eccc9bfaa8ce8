package dashboard

import (
	"context"
	"sort"
	"strings"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/leave"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/payroll"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/hrstats"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	clock clock.Clock
}

func NewDashboardService(repo dashboard.DashboardRepository, c clock.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		clock:               c,
	}
}

// Admin implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Admin(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	data := s.Snapshot(ctx)

	var (
		active, inactive int
		present          []attendance.AttendanceRecord
		deptStats        []hrstats.DepartmentStat
		pendingCount     int
		recent           []leave.LeaveRequest
		monthlyPayroll   decimal.Decimal
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Headcount and payroll of active employees
	g.Go(func() error {
		total := decimal.Zero
		for _, e := range data.Employees {
			if !e.IsActive() {
				inactive++
				continue
			}
			active++
			total = total.Add(payroll.Monthly(e.Salary))
		}
		monthlyPayroll = total
		return gCtx.Err()
	})

	// 2. Today's attendance and department breakdown
	g.Go(func() error {
		todays := make([]attendance.AttendanceRecord, 0)
		for _, r := range data.Attendance {
			if r.Date == data.Today {
				todays = append(todays, r)
			}
		}
		present = hrstats.Present(todays)
		deptStats = hrstats.DepartmentStats(data.Employees, present)
		if len(deptStats) > dashboard.DepartmentStatsLimit {
			deptStats = deptStats[:dashboard.DepartmentStatsLimit]
		}
		return gCtx.Err()
	})

	// 3. Leave queue
	g.Go(func() error {
		for _, r := range data.LeaveRequests {
			if r.IsPending() {
				pendingCount++
			}
		}
		recent = recentRequests(data.LeaveRequests, dashboard.RecentLeaveLimit)
		return gCtx.Err()
	})

	if err := g.Wait(); err != nil {
		return dashboard.AdminDashboardResponse{}, err
	}

	return dashboard.AdminDashboardResponse{
		Date:                  data.Today,
		TotalEmployees:        len(data.Employees),
		ActiveEmployees:       active,
		InactiveEmployees:     inactive,
		PresentToday:          len(present),
		AttendanceRate:        hrstats.AttendanceRate(len(present), active),
		AverageCheckIn:        hrstats.AverageCheckIn(present),
		PendingLeaves:         pendingCount,
		MonthlyPayroll:        monthlyPayroll.Round(2),
		MonthlyPayrollDisplay: payroll.FormatINRL(monthlyPayroll),
		RecentLeaveRequests:   recent,
		DepartmentStats:       deptStats,
	}, nil
}

// recentRequests returns up to n requests by start date, latest first.
func recentRequests(requests []leave.LeaveRequest, n int) []leave.LeaveRequest {
	sorted := make([]leave.LeaveRequest, len(requests))
	copy(sorted, requests)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate > sorted[j].StartDate
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Employee implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Employee(ctx context.Context, employeeID string) (dashboard.EmployeeDashboardResponse, error) {
	if strings.TrimSpace(employeeID) == "" {
		return dashboard.EmployeeDashboardResponse{}, employee.ErrEmployeeIDRequired
	}

	data := s.Snapshot(ctx)
	res := dashboard.EmployeeDashboardResponse{
		CurrentMonth: s.clock.Now().Month().String(),
	}

	for i := range data.Employees {
		if data.Employees[i].EmployeeID == employeeID {
			e := data.Employees[i]
			res.Employee = &e
			res.PaidLeaveBalance = e.LeaveBalance.Paid
			break
		}
	}

	for i := range data.Attendance {
		if data.Attendance[i].EmployeeID == employeeID && data.Attendance[i].Date == data.Today {
			rec := data.Attendance[i]
			res.TodayAttendance = &rec
			break
		}
	}

	for _, r := range data.LeaveRequests {
		if r.EmployeeID == employeeID && r.IsPending() {
			res.PendingRequests++
		}
	}

	return res, nil
}
