package payroll

import (
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/paging"
	"github.com/shopspring/decimal"
)

type MyPayrollResponse struct {
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"name"`
	Structure  SalaryStructure `json:"structure"`
	History    []Payslip       `json:"history"`

	NetSalaryDisplay string `json:"net_salary_display"`
}

type PayrollFilter struct {
	Search     string `json:"search,omitempty"`
	Department string `json:"department,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *PayrollFilter) Validate() error {
	if errs := paging.Normalize(&f.Page, &f.Limit); len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRow struct {
	EmployeeID   string          `json:"employee_id"`
	Name         string          `json:"name"`
	Department   string          `json:"department"`
	Position     string          `json:"position"`
	AnnualSalary int64           `json:"annual_salary"`
	MonthlyGross decimal.Decimal `json:"monthly_gross"`
	Deductions   decimal.Decimal `json:"deductions"`
	Net          decimal.Decimal `json:"net"`

	AnnualDisplay  string `json:"annual_display"`
	MonthlyDisplay string `json:"monthly_display"`
	NetDisplay     string `json:"net_display"`
}

type OverviewResponse struct {
	EmployeeCount        int             `json:"employee_count"`
	TotalMonthlyPayroll  decimal.Decimal `json:"total_monthly_payroll"`
	AverageMonthlySalary decimal.Decimal `json:"average_monthly_salary"`
	TotalDisplay         string          `json:"total_display"`
	AverageDisplay       string          `json:"average_display"`
	Rows                 []PayrollRow    `json:"rows"`
	paging.Meta
}
