package payroll

import "github.com/shopspring/decimal"

// Fixed heuristics applied to the monthly salary. Transport and medical are
// informational allowances; earnings are always the full monthly salary.
var (
	BasicRate     = decimal.RequireFromString("0.5")
	HRARate       = decimal.RequireFromString("0.2")
	TaxRate       = decimal.RequireFromString("0.1")
	Transport     = decimal.NewFromInt(25000)
	Medical       = decimal.NewFromInt(15000)
	Insurance     = decimal.NewFromInt(10000)
	monthsPerYear = decimal.NewFromInt(12)
)

const PayslipStatusPaid = "Paid"

// SalaryStructure is the monthly breakdown of an annual salary. Amounts are
// rounded to two decimal places.
type SalaryStructure struct {
	AnnualSalary    decimal.Decimal `json:"annual_salary"`
	MonthlySalary   decimal.Decimal `json:"monthly_salary"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	HRA             decimal.Decimal `json:"hra"`
	Transport       decimal.Decimal `json:"transport"`
	Medical         decimal.Decimal `json:"medical"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	Tax             decimal.Decimal `json:"tax"`
	Insurance       decimal.Decimal `json:"insurance"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}

func NewSalaryStructure(annual int64) SalaryStructure {
	monthly := Monthly(annual)
	deductions := Deductions(monthly)

	return SalaryStructure{
		AnnualSalary:    decimal.NewFromInt(annual),
		MonthlySalary:   monthly.Round(2),
		BasicSalary:     monthly.Mul(BasicRate).Round(2),
		HRA:             monthly.Mul(HRARate).Round(2),
		Transport:       Transport,
		Medical:         Medical,
		TotalEarnings:   monthly.Round(2),
		Tax:             monthly.Mul(TaxRate).Round(2),
		Insurance:       Insurance,
		TotalDeductions: deductions.Round(2),
		NetSalary:       monthly.Sub(deductions).Round(2),
	}
}

// Monthly is annual / 12 at full precision.
func Monthly(annual int64) decimal.Decimal {
	return decimal.NewFromInt(annual).Div(monthsPerYear)
}

// Deductions is tax plus the fixed insurance premium.
func Deductions(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(TaxRate).Add(Insurance)
}

type Payslip struct {
	Month      string          `json:"month"` // "December 2025"
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
	Status     string          `json:"status"`
}
