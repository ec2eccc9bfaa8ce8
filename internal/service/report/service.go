package report

import (
	"context"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/leave"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/payroll"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

var leaveTypeLabels = []struct {
	Type  leave.Type
	Label string
}{
	{leave.TypePaid, "Paid"},
	{leave.TypeSick, "Sick"},
	{leave.TypeUnpaid, "Unpaid"},
}

type ReportServiceImpl struct {
	dataRepo dashboard.DashboardRepository
}

func NewReportService(dataRepo dashboard.DashboardRepository) report.ReportService {
	return &ReportServiceImpl{
		dataRepo: dataRepo,
	}
}

// Generate implements report.ReportService. Headcounts include inactive
// employees; departments keep first-seen order.
func (s *ReportServiceImpl) Generate(ctx context.Context) (report.ReportResponse, error) {
	data := s.dataRepo.Snapshot(ctx)

	index := make(map[string]int)
	departments := []report.DepartmentCount{}
	totalSalary := decimal.Zero
	for _, e := range data.Employees {
		totalSalary = totalSalary.Add(decimal.NewFromInt(e.Salary))

		i, ok := index[e.Department]
		if !ok {
			i = len(departments)
			index[e.Department] = i
			departments = append(departments, report.DepartmentCount{Name: e.Department})
		}
		departments[i].Count++
	}

	byType := make(map[leave.Type]int)
	pending := 0
	for _, r := range data.LeaveRequests {
		byType[r.Type]++
		if r.IsPending() {
			pending++
		}
	}

	leaveTypes := make([]report.LeaveTypeCount, 0, len(leaveTypeLabels))
	for _, lt := range leaveTypeLabels {
		leaveTypes = append(leaveTypes, report.LeaveTypeCount{Name: lt.Label, Value: byType[lt.Type]})
	}

	return report.ReportResponse{
		Departments:     departments,
		LeaveTypes:      leaveTypes,
		TotalEmployees:  len(data.Employees),
		PendingLeaves:   pending,
		DepartmentCount: len(departments),
		SalaryDisplay:   payroll.FormatINRK(totalSalary) + "/month",
	}, nil
}
