package mockdata

import (
	"fmt"
	"slices"
	"time"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
	"github.com/teambition/rrule-go"
)

const (
	// AttendanceWindowDays is the length of the trailing window, today included.
	AttendanceWindowDays = 30

	workdayRule = "FREQ=DAILY;BYDAY=MO,TU,WE,TH,FR"

	presentChance         = 0.9
	missingCheckOutChance = 0.3
	leaveChance           = 0.7
)

// Workdays returns the Monday-to-Friday calendar dates of the trailing window
// ending on today's date, newest first.
func Workdays(today time.Time) ([]time.Time, error) {
	end := utcDate(today.Year(), today.Month(), today.Day())
	start := end.AddDate(0, 0, -(AttendanceWindowDays - 1))

	opt, err := rrule.StrToROption(workdayRule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workday rule: %w", err)
	}
	opt.Dtstart = start

	rr, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("failed to build workday rule: %w", err)
	}

	set := rrule.Set{}
	set.RRule(rr)

	days := set.Between(start, end, true)
	slices.Reverse(days)
	return days, nil
}

// Attendance synthesises one record per active employee per workday in the
// trailing window. today decides which date counts as the current day.
func (g *Generator) Attendance(emps []employee.Employee, today time.Time) ([]attendance.AttendanceRecord, error) {
	days, err := Workdays(today)
	if err != nil {
		return nil, err
	}

	active := make([]employee.Employee, 0, len(emps))
	for _, e := range emps {
		if e.IsActive() {
			active = append(active, e)
		}
	}

	todayStr := today.Format(clock.DateLayout)
	records := make([]attendance.AttendanceRecord, 0, len(days)*len(active))

	for _, day := range days {
		date := day.Format(clock.DateLayout)
		isToday := date == todayStr

		for _, e := range active {
			rec := attendance.AttendanceRecord{
				ID:         RecordID(date, e.ID),
				EmployeeID: e.EmployeeID,
				Date:       date,
			}

			if g.src.Float64() < presentChance {
				checkIn := randomTime(g.src, 8, 11)
				rec.Status = attendance.StatusPresent
				rec.CheckIn = &checkIn
				if !(isToday && g.src.Float64() < missingCheckOutChance) {
					checkOut := randomTime(g.src, 17, 20)
					rec.CheckOut = &checkOut
				}
			} else if g.src.Float64() < leaveChance {
				rec.Status = attendance.StatusLeave
			} else {
				rec.Status = attendance.StatusAbsent
			}

			records = append(records, rec)
		}
	}

	return records, nil
}

// RecordID derives the attendance id from the natural key, so regenerating
// the same day yields the same id.
func RecordID(date, employeeInternalID string) string {
	return "att-" + date + "-" + employeeInternalID
}
