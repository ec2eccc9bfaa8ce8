package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/payroll"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/mockdata"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/repository/memory"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/repository/memory/memorytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() payroll.PayrollService {
	store, c := memorytest.NewStore()
	return NewPayrollService(memory.NewEmployeeRepository(store), c)
}

func TestMyPayroll(t *testing.T) {
	svc := newTestService()

	res, err := svc.MyPayroll(context.Background(), "EMP0001")
	require.NoError(t, err)
	assert.Equal(t, "Aarav Sharma", res.Name)

	st := res.Structure
	assert.Equal(t, "100000", st.MonthlySalary.String())
	assert.Equal(t, "50000", st.BasicSalary.String())
	assert.Equal(t, "20000", st.HRA.String())
	assert.Equal(t, "10000", st.Tax.String())
	assert.Equal(t, "20000", st.TotalDeductions.String())
	assert.Equal(t, "80000", st.NetSalary.String())
	assert.Equal(t, "₹80,000", res.NetSalaryDisplay)

	require.Len(t, res.History, HistoryMonths)
	months := []string{res.History[0].Month, res.History[1].Month, res.History[2].Month}
	assert.Equal(t, []string{"December 2025", "November 2025", "October 2025"}, months)
	for _, p := range res.History {
		assert.Equal(t, payroll.PayslipStatusPaid, p.Status)
		assert.True(t, p.Net.Equal(st.NetSalary))
	}
}

func TestMyPayroll_UnknownEmployeeHasZeroSalary(t *testing.T) {
	svc := newTestService()

	res, err := svc.MyPayroll(context.Background(), "EMP001")
	require.NoError(t, err)
	assert.Empty(t, res.Name)
	assert.True(t, res.Structure.MonthlySalary.IsZero())
	assert.Equal(t, "-10000", res.Structure.NetSalary.String())

	_, err = svc.MyPayroll(context.Background(), "")
	assert.ErrorIs(t, err, payroll.ErrEmployeeIDRequired)
}

func TestPayslipHistory_CrossesYear(t *testing.T) {
	st := payroll.NewSalaryStructure(1200000)
	history := payslipHistory(time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC), st)
	require.Len(t, history, 3)
	assert.Equal(t, "February 2026", history[0].Month)
	assert.Equal(t, "December 2025", history[2].Month)
}

func TestOverview(t *testing.T) {
	svc := newTestService()

	res, err := svc.Overview(context.Background(), payroll.PayrollFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, res.EmployeeCount)
	assert.Equal(t, "340000", res.TotalMonthlyPayroll.String())
	assert.Equal(t, "85000", res.AverageMonthlySalary.String())
	assert.Equal(t, "₹3.40L", res.TotalDisplay)
	assert.Equal(t, "₹0.85L", res.AverageDisplay)
	require.Len(t, res.Rows, 4)

	row := res.Rows[1]
	assert.Equal(t, "EMP0002", row.EmployeeID)
	assert.Equal(t, "50000", row.MonthlyGross.String())
	assert.Equal(t, "15000", row.Deductions.String())
	assert.Equal(t, "35000", row.Net.String())
	assert.Equal(t, "₹6.00L", row.AnnualDisplay)
	assert.Equal(t, "₹50,000", row.MonthlyDisplay)
	assert.Equal(t, "₹35,000", row.NetDisplay)
}

func TestOverview_FiltersRowsNotTotals(t *testing.T) {
	svc := newTestService()

	res, err := svc.Overview(context.Background(), payroll.PayrollFilter{Department: "Engineering", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, res.EmployeeCount)
	assert.Equal(t, "340000", res.TotalMonthlyPayroll.String())
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "EMP0001", res.Rows[0].EmployeeID)
	assert.Equal(t, 2, res.TotalItems)

	res, err = svc.Overview(context.Background(), payroll.PayrollFilter{Search: "rohan"})
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "EMP0003", res.Rows[0].EmployeeID)
}

func TestOverview_NoEmployees(t *testing.T) {
	c := &clock.Fixed{T: memorytest.Now}
	store := memory.NewStore(mockdata.Dataset{}, c)
	svc := NewPayrollService(memory.NewEmployeeRepository(store), c)

	res, err := svc.Overview(context.Background(), payroll.PayrollFilter{})
	require.NoError(t, err)
	assert.Zero(t, res.EmployeeCount)
	assert.True(t, res.AverageMonthlySalary.IsZero())
	assert.Empty(t, res.Rows)
}
