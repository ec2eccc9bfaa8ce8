package attendance

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/hrstats"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/paging"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/sse"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
	publisher      sse.Publisher
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	c clock.Clock,
	publisher sse.Publisher,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          c,
		publisher:      publisher,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceRecord, error) {
	if strings.TrimSpace(employeeID) == "" {
		return attendance.AttendanceRecord{}, attendance.ErrEmployeeIDRequired
	}

	rec, created := s.attendanceRepo.CheckIn(ctx, employeeID)
	if created {
		s.publisher.Publish(sse.Event{EmployeeID: employeeID, Event: sse.EventAttendanceCheckedIn, Data: rec})
	}
	return rec, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (*attendance.AttendanceRecord, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, attendance.ErrEmployeeIDRequired
	}

	rec, ok := s.attendanceRepo.CheckOut(ctx, employeeID)
	if !ok {
		return nil, nil
	}

	s.publisher.Publish(sse.Event{EmployeeID: employeeID, Event: sse.EventAttendanceCheckedOut, Data: rec})
	return &rec, nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context, employeeID string) (*attendance.AttendanceRecord, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, attendance.ErrEmployeeIDRequired
	}

	rec, ok := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, clock.Today(s.clock))
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// MyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MyAttendance(ctx context.Context, employeeID string) (attendance.MyAttendanceResponse, error) {
	if strings.TrimSpace(employeeID) == "" {
		return attendance.MyAttendanceResponse{}, attendance.ErrEmployeeIDRequired
	}

	records := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	if len(records) > attendance.MyAttendanceLimit {
		records = records[:attendance.MyAttendanceLimit]
	}

	res := attendance.MyAttendanceResponse{Records: make([]attendance.RecordResponse, 0, len(records))}
	for _, r := range records {
		item := attendance.RecordResponse{AttendanceRecord: r}
		if minutes, ok := r.WorkedMinutes(); ok {
			item.Hours = math.Round(float64(minutes)/60*10) / 10
		}
		res.Records = append(res.Records, item)

		switch r.Status {
		case attendance.StatusPresent:
			res.PresentDays++
		case attendance.StatusAbsent:
			res.AbsentDays++
		case attendance.StatusLeave:
			res.LeaveDays++
		case attendance.StatusHalfDay:
			res.HalfDays++
		}
	}
	return res, nil
}

// Overview implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Overview(ctx context.Context, filter attendance.OverviewFilter) (attendance.OverviewResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.OverviewResponse{}, err
	}

	today := clock.Today(s.clock)
	employees := s.employeeRepo.List(ctx)
	todays := s.attendanceRepo.ListByDate(ctx, today)
	present := hrstats.Present(todays)
	active := hrstats.CountActive(employees)

	byEmployee := make(map[string]attendance.AttendanceRecord, len(todays))
	for _, r := range todays {
		byEmployee[r.EmployeeID] = r
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	roster := make([]attendance.RosterEntry, 0)
	for _, e := range employees {
		entry := rosterEntry(e, byEmployee)
		if !matchesRoster(entry, search, filter.Department, filter.Status) {
			continue
		}
		roster = append(roster, entry)
	}

	page, meta := paging.Slice(roster, filter.Page, filter.Limit)
	return attendance.OverviewResponse{
		Date:            today,
		PresentToday:    len(present),
		ActiveEmployees: active,
		AttendanceRate:  hrstats.AttendanceRate(len(present), active),
		AverageCheckIn:  hrstats.AverageCheckIn(present),
		Departments:     hrstats.Departments(employees),
		Records:         page,
		Meta:            meta,
	}, nil
}

func rosterEntry(e employee.Employee, byEmployee map[string]attendance.AttendanceRecord) attendance.RosterEntry {
	entry := attendance.RosterEntry{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Department: e.Department,
		Position:   e.Position,
		Status:     attendance.StatusAbsent,
	}

	rec, ok := byEmployee[e.EmployeeID]
	if !ok {
		return entry
	}
	entry.CheckIn = rec.CheckIn
	entry.CheckOut = rec.CheckOut
	entry.Status = rec.Status
	if minutes, ok := rec.WorkedMinutes(); ok {
		worked := hrstats.FormatWorked(minutes)
		entry.Worked = &worked
	}
	return entry
}

func matchesRoster(entry attendance.RosterEntry, search, department, status string) bool {
	if department != "" && department != "all" && entry.Department != department {
		return false
	}
	if status != "" && status != "all" && string(entry.Status) != status {
		return false
	}
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(entry.Name), search) ||
		strings.Contains(strings.ToLower(entry.EmployeeID), search) ||
		strings.Contains(strings.ToLower(entry.Department), search)
}
