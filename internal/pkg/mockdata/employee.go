package mockdata

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
)

const (
	salaryBand   = 300000
	activeChance = 0.95
)

var (
	joinDateStart = utcDate(2020, 1, 1)
	joinDateEnd   = utcDate(2025, 12, 31)
)

// Employees returns n employees with sequential ids and unique emails.
func (g *Generator) Employees(n int) []employee.Employee {
	emps := make([]employee.Employee, 0, n)
	usedEmails := make(map[string]struct{}, n)

	for i := 1; i <= n; i++ {
		first := pick(g.src, g.catalog.FirstNames)
		last := pick(g.src, g.catalog.LastNames)
		email := uniqueEmail(first, last, usedEmails)

		dept := pick(g.src, g.catalog.Departments)
		idx := g.src.IntN(len(dept.Positions))

		emp := employee.Employee{
			ID:         strconv.Itoa(i),
			EmployeeID: FormatEmployeeID(i),
			Name:       first + " " + last,
			Email:      email,
			Department: dept.Name,
			Position:   dept.Positions[idx],
			Salary:     g.salary(dept, idx),
			JoinDate:   randomDate(g.src, joinDateStart, joinDateEnd),
			Status:     employee.StatusInactive,
		}
		if g.src.Float64() < activeChance {
			emp.Status = employee.StatusActive
		}
		emp.LeaveBalance = employee.LeaveBalance{
			Paid:   g.src.IntN(20) + 5,
			Sick:   g.src.IntN(15) + 5,
			Unpaid: g.src.IntN(10),
		}

		emps = append(emps, emp)
	}

	return emps
}

// salary interpolates a floor from the position's rung on the ladder and draws
// uniformly from the fixed band above it.
func (g *Generator) salary(dept Department, idx int) int64 {
	span := float64(dept.SalaryMax - dept.SalaryMin)
	floor := float64(dept.SalaryMin) + float64(idx)/float64(len(dept.Positions))*span
	return int64(math.Floor(g.src.Float64()*salaryBand + floor))
}

func uniqueEmail(first, last string, used map[string]struct{}) string {
	local := strings.ToLower(first) + "." + strings.ToLower(last)
	email := local + "@gmail.com"
	for counter := 1; ; counter++ {
		if _, taken := used[email]; !taken {
			break
		}
		email = fmt.Sprintf("%s%d@gmail.com", local, counter)
	}
	used[email] = struct{}{}
	return email
}
