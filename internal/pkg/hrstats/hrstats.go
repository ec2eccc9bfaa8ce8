// Package hrstats computes the read-only aggregates shown on dashboards and
// overviews.
package hrstats

import (
	"fmt"
	"math"
	"sort"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
)

// DefaultAverageCheckIn is reported when nobody has checked in.
const DefaultAverageCheckIn = "9:00 AM"

type DepartmentStat struct {
	Department     string `json:"department"`
	EmployeeCount  int    `json:"employee_count"`
	PresentCount   int    `json:"present_count"`
	AttendanceRate int    `json:"attendance_rate"`
}

// AttendanceRate is present/total as a rounded percentage, 0 for an empty total.
func AttendanceRate(present, total int) int {
	if total <= 0 {
		return 0
	}
	return roundHalfUp(float64(present) / float64(total) * 100)
}

// CountActive returns the number of active employees.
func CountActive(emps []employee.Employee) int {
	n := 0
	for _, e := range emps {
		if e.IsActive() {
			n++
		}
	}
	return n
}

// Present filters records down to status present.
func Present(records []attendance.AttendanceRecord) []attendance.AttendanceRecord {
	out := make([]attendance.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if r.Status == attendance.StatusPresent {
			out = append(out, r)
		}
	}
	return out
}

// DepartmentStats reports, per department, active headcount and how many of
// them appear in present. Departments keep their first-seen order among
// equal headcounts.
func DepartmentStats(emps []employee.Employee, present []attendance.AttendanceRecord) []DepartmentStat {
	presentIDs := make(map[string]struct{}, len(present))
	for _, r := range present {
		presentIDs[r.EmployeeID] = struct{}{}
	}

	index := make(map[string]int)
	var stats []DepartmentStat
	for _, e := range emps {
		i, ok := index[e.Department]
		if !ok {
			i = len(stats)
			index[e.Department] = i
			stats = append(stats, DepartmentStat{Department: e.Department})
		}
		if !e.IsActive() {
			continue
		}
		stats[i].EmployeeCount++
		if _, ok := presentIDs[e.EmployeeID]; ok {
			stats[i].PresentCount++
		}
	}

	for i := range stats {
		stats[i].AttendanceRate = AttendanceRate(stats[i].PresentCount, stats[i].EmployeeCount)
	}
	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].EmployeeCount > stats[b].EmployeeCount
	})

	return stats
}

// AverageCheckIn is the mean check-in time of the present records that have
// one, as "h:MM AM|PM".
func AverageCheckIn(records []attendance.AttendanceRecord) string {
	total, n := 0, 0
	for _, r := range records {
		if r.Status != attendance.StatusPresent || r.CheckIn == nil {
			continue
		}
		m, ok := clock.MinutesOfDay(*r.CheckIn)
		if !ok {
			continue
		}
		total += m
		n++
	}
	if n == 0 {
		return DefaultAverageCheckIn
	}

	avg := roundHalfUp(float64(total) / float64(n))
	hours, mins := avg/60, avg%60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	if hours > 12 {
		hours -= 12
	}

	return fmt.Sprintf("%d:%02d %s", hours, mins, period)
}

// Departments returns the distinct departments, sorted.
func Departments(emps []employee.Employee) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, e := range emps {
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		out = append(out, e.Department)
	}
	sort.Strings(out)
	return out
}

// FormatWorked renders minutes as "8h 15m".
func FormatWorked(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
