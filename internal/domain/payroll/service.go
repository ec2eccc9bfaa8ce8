package payroll

import "context"

type PayrollService interface {
	// MyPayroll is the salary structure and recent payslips of one employee.
	// Unknown employees get a zero salary.
	MyPayroll(ctx context.Context, employeeID string) (MyPayrollResponse, error)

	Overview(ctx context.Context, filter PayrollFilter) (OverviewResponse, error)
}
