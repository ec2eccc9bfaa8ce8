package memory

import (
	"context"
	"slices"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
)

type attendanceRepositoryImpl struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{store: store}
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) []attendance.AttendanceRecord {
	return slices.Clone(r.store.load().attendance)
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date string) []attendance.AttendanceRecord {
	return filterRecords(r.store.load().attendance, func(a attendance.AttendanceRecord) bool {
		return a.Date == date
	})
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) []attendance.AttendanceRecord {
	return filterRecords(r.store.load().attendance, func(a attendance.AttendanceRecord) bool {
		return a.EmployeeID == employeeID
	})
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (attendance.AttendanceRecord, bool) {
	records := r.store.load().attendance
	if i := indexRecord(records, employeeID, date); i >= 0 {
		return records[i], true
	}
	return attendance.AttendanceRecord{}, false
}

// CheckIn implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CheckIn(ctx context.Context, employeeID string) (rec attendance.AttendanceRecord, created bool) {
	r.store.update(func(next *state) {
		today := clock.Today(r.store.clock)
		if i := indexRecord(next.attendance, employeeID, today); i >= 0 {
			rec = next.attendance[i]
			return
		}

		now := clock.TimeOfDay(r.store.clock)
		rec = attendance.AttendanceRecord{
			ID:         r.store.newID(),
			EmployeeID: employeeID,
			Date:       today,
			CheckIn:    &now,
			Status:     attendance.StatusPresent,
		}
		next.attendance = withAppended(next.attendance, rec)
		created = true
	})
	return rec, created
}

// CheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CheckOut(ctx context.Context, employeeID string) (rec attendance.AttendanceRecord, ok bool) {
	r.store.update(func(next *state) {
		i := indexRecord(next.attendance, employeeID, clock.Today(r.store.clock))
		if i < 0 {
			return
		}

		now := clock.TimeOfDay(r.store.clock)
		rec = next.attendance[i]
		rec.CheckOut = &now
		next.attendance = withReplaced(next.attendance, i, rec)
		ok = true
	})
	return rec, ok
}

func indexRecord(records []attendance.AttendanceRecord, employeeID, date string) int {
	return slices.IndexFunc(records, func(a attendance.AttendanceRecord) bool {
		return a.EmployeeID == employeeID && a.Date == date
	})
}

func filterRecords(records []attendance.AttendanceRecord, keep func(attendance.AttendanceRecord) bool) []attendance.AttendanceRecord {
	out := []attendance.AttendanceRecord{}
	for _, a := range records {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
