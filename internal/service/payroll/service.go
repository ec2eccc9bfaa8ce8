package payroll

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/payroll"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/paging"
	"github.com/shopspring/decimal"
)

// HistoryMonths is how many closed months a payslip history shows.
const HistoryMonths = 3

type PayrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewPayrollService(employeeRepo employee.EmployeeRepository, c clock.Clock) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo: employeeRepo,
		clock:        c,
	}
}

// MyPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) MyPayroll(ctx context.Context, employeeID string) (payroll.MyPayrollResponse, error) {
	if strings.TrimSpace(employeeID) == "" {
		return payroll.MyPayrollResponse{}, payroll.ErrEmployeeIDRequired
	}

	res := payroll.MyPayrollResponse{EmployeeID: employeeID}
	var annual int64
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	switch {
	case err == nil:
		res.Name = emp.Name
		annual = emp.Salary
	case !errors.Is(err, employee.ErrEmployeeNotFound):
		return payroll.MyPayrollResponse{}, fmt.Errorf("failed to get employee %q: %w", employeeID, err)
	}

	res.Structure = payroll.NewSalaryStructure(annual)
	res.History = payslipHistory(s.clock.Now(), res.Structure)
	res.NetSalaryDisplay = payroll.FormatINR(res.Structure.NetSalary)
	return res, nil
}

// payslipHistory lists the months before now's month, newest first.
func payslipHistory(now time.Time, st payroll.SalaryStructure) []payroll.Payslip {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	history := make([]payroll.Payslip, 0, HistoryMonths)
	for k := 1; k <= HistoryMonths; k++ {
		history = append(history, payroll.Payslip{
			Month:      first.AddDate(0, -k, 0).Format("January 2006"),
			Gross:      st.TotalEarnings,
			Deductions: st.TotalDeductions,
			Net:        st.NetSalary,
			Status:     payroll.PayslipStatusPaid,
		})
	}
	return history
}

// Overview implements payroll.PayrollService. Totals cover every employee;
// only the rows are filtered and paged.
func (s *PayrollServiceImpl) Overview(ctx context.Context, filter payroll.PayrollFilter) (payroll.OverviewResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.OverviewResponse{}, err
	}

	employees := s.employeeRepo.List(ctx)
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	total := decimal.Zero
	rows := make([]payroll.PayrollRow, 0)
	for _, e := range employees {
		monthly := payroll.Monthly(e.Salary)
		total = total.Add(monthly)

		if !matchesRow(e, search, filter.Department) {
			continue
		}
		rows = append(rows, payrollRow(e, monthly))
	}

	average := decimal.Zero
	if len(employees) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(employees))))
	}

	page, meta := paging.Slice(rows, filter.Page, filter.Limit)
	return payroll.OverviewResponse{
		EmployeeCount:        len(employees),
		TotalMonthlyPayroll:  total.Round(2),
		AverageMonthlySalary: average.Round(2),
		TotalDisplay:         payroll.FormatINRL(total),
		AverageDisplay:       payroll.FormatINRL(average),
		Rows:                 page,
		Meta:                 meta,
	}, nil
}

func payrollRow(e employee.Employee, monthly decimal.Decimal) payroll.PayrollRow {
	deductions := payroll.Deductions(monthly)
	net := monthly.Sub(deductions)
	return payroll.PayrollRow{
		EmployeeID:     e.EmployeeID,
		Name:           e.Name,
		Department:     e.Department,
		Position:       e.Position,
		AnnualSalary:   e.Salary,
		MonthlyGross:   monthly.Round(2),
		Deductions:     deductions.Round(2),
		Net:            net.Round(2),
		AnnualDisplay:  payroll.FormatINRL(decimal.NewFromInt(e.Salary)),
		MonthlyDisplay: payroll.FormatINR(monthly),
		NetDisplay:     payroll.FormatINR(net),
	}
}

func matchesRow(e employee.Employee, search, department string) bool {
	if department != "" && department != "all" && e.Department != department {
		return false
	}
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), search) ||
		strings.Contains(strings.ToLower(e.EmployeeID), search)
}
