// Package mockdata synthesises the HR dataset the application starts with:
// an employee directory, a month of weekday attendance and a batch of leave
// requests.
package mockdata

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/leave"
)

const DefaultEmployeeCount = 1500

// Generator draws every random value from one Source, so a seeded Source
// reproduces the same dataset.
type Generator struct {
	src     Source
	catalog Catalog
}

func NewGenerator(src Source, catalog Catalog) *Generator {
	return &Generator{src: src, catalog: catalog}
}

// Dataset is a complete generated HR dataset.
type Dataset struct {
	Employees     []employee.Employee
	Attendance    []attendance.AttendanceRecord
	LeaveRequests []leave.LeaveRequest
}

// Generate builds n employees plus their attendance and leave requests as of now.
func (g *Generator) Generate(n int, now time.Time) (Dataset, error) {
	emps := g.Employees(n)

	records, err := g.Attendance(emps, now)
	if err != nil {
		return Dataset{}, err
	}

	return Dataset{
		Employees:     emps,
		Attendance:    records,
		LeaveRequests: g.LeaveRequests(emps, now),
	}, nil
}

// FormatEmployeeID renders the sequential business key, e.g. EMP0042.
func FormatEmployeeID(n int) string {
	return fmt.Sprintf("EMP%04d", n)
}
