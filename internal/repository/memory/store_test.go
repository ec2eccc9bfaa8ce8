package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/leave"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/mockdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestStore(t *testing.T) (*Store, *clock.Fixed) {
	t.Helper()

	c := &clock.Fixed{T: time.Date(2026, 1, 14, 9, 5, 0, 0, time.UTC)}
	ds := mockdata.Dataset{
		Employees: []employee.Employee{
			{ID: "1", EmployeeID: "EMP0001", Name: "Aarav Sharma", Email: "aarav.sharma@gmail.com", Department: "Engineering", Status: employee.StatusActive},
			{ID: "2", EmployeeID: "EMP0002", Name: "Diya Nair", Email: "diya.nair@gmail.com", Department: "Sales", Status: employee.StatusActive},
		},
		Attendance: []attendance.AttendanceRecord{
			{ID: "att-2026-01-13-1", EmployeeID: "EMP0001", Date: "2026-01-13", CheckIn: strPtr("09:00"), CheckOut: strPtr("18:00"), Status: attendance.StatusPresent},
		},
		LeaveRequests: []leave.LeaveRequest{
			{ID: "leave-1", EmployeeID: "EMP0001", EmployeeName: "Aarav Sharma", Type: leave.TypeSick, StartDate: "2026-02-02", EndDate: "2026-02-04", Reason: "Medical appointment", Status: leave.StatusPending},
		},
	}

	s := NewStore(ds, c)
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return s, c
}

func TestCheckIn_FirstCheckInWins(t *testing.T) {
	ctx := context.Background()
	s, c := newTestStore(t)
	repo := NewAttendanceRepository(s)

	first, created := repo.CheckIn(ctx, "EMP0002")
	assert.True(t, created)
	c.T = c.T.Add(2 * time.Hour)
	again, created := repo.CheckIn(ctx, "EMP0002")
	assert.False(t, created)
	assert.Equal(t, first, again)

	rec, ok := repo.GetByEmployeeAndDate(ctx, "EMP0002", "2026-01-14")
	require.True(t, ok)
	require.NotNil(t, rec.CheckIn)
	assert.Equal(t, "09:05", *rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, "id-1", rec.ID)
	assert.Len(t, repo.ListByDate(ctx, "2026-01-14"), 1)
}

func TestCheckOut(t *testing.T) {
	ctx := context.Background()
	s, c := newTestStore(t)
	repo := NewAttendanceRepository(s)

	// no record for today: nothing happens
	_, ok := repo.CheckOut(ctx, "EMP0001")
	assert.False(t, ok)
	assert.Len(t, repo.List(ctx), 1)

	repo.CheckIn(ctx, "EMP0001")
	c.T = c.T.Add(9 * time.Hour)
	out, ok := repo.CheckOut(ctx, "EMP0001")
	require.True(t, ok)
	assert.Equal(t, "18:05", *out.CheckOut)

	rec, ok := repo.GetByEmployeeAndDate(ctx, "EMP0001", "2026-01-14")
	require.True(t, ok)
	assert.Equal(t, out, rec)
	assert.Equal(t, "09:05", *rec.CheckIn)

	// yesterday's record is untouched
	prev, ok := repo.GetByEmployeeAndDate(ctx, "EMP0001", "2026-01-13")
	require.True(t, ok)
	assert.Equal(t, "18:00", *prev.CheckOut)
}

func TestApprove_PendingRequest(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	repo := NewLeaveRequestRepository(s)

	before, err := repo.GetByID(ctx, "leave-1")
	require.NoError(t, err)

	repo.Approve(ctx, "leave-1", "EMP0002", strPtr("ok"))

	after, err := repo.GetByID(ctx, "leave-1")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, after.Status)
	assert.Equal(t, "EMP0002", *after.ApprovedBy)
	assert.Equal(t, "2026-01-14", *after.ApprovedDate)
	assert.Equal(t, "ok", *after.Comments)

	assert.Equal(t, before.StartDate, after.StartDate)
	assert.Equal(t, before.EndDate, after.EndDate)
	assert.Equal(t, before.Type, after.Type)
	assert.Equal(t, before.Reason, after.Reason)
	assert.Equal(t, before.EmployeeName, after.EmployeeName)

	// the earlier read is a value and did not change
	assert.Equal(t, leave.StatusPending, before.Status)
}

func TestReject_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	repo := NewLeaveRequestRepository(s)

	repo.Approve(ctx, "leave-1", "EMP0002", strPtr("ok"))
	repo.Reject(ctx, "leave-1", "ADM001", nil)

	got, err := repo.GetByID(ctx, "leave-1")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, got.Status)
	assert.Equal(t, "ADM001", *got.ApprovedBy)
	assert.Nil(t, got.Comments)
}

func TestReview_UnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	repo := NewLeaveRequestRepository(s)

	repo.Approve(ctx, "leave-404", "EMP0002", nil)
	assert.Equal(t, repo.List(ctx)[0].Status, leave.StatusPending)
	_, err := repo.GetByID(ctx, "leave-404")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestSubmit_ForcesPending(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	repo := NewLeaveRequestRepository(s)

	got := repo.Submit(ctx, leave.LeaveRequest{
		EmployeeID:   "EMP0002",
		EmployeeName: "Diya Nair",
		Type:         leave.TypePaid,
		StartDate:    "2026-03-10",
		EndDate:      "2026-03-01",
		Reason:       "Vacation",
		Status:       leave.StatusApproved,
		ApprovedBy:   strPtr("EMP0001"),
	})

	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, leave.StatusPending, got.Status)
	assert.Nil(t, got.ApprovedBy)
	assert.Len(t, repo.List(ctx), 2)
	assert.Len(t, repo.ListByEmployee(ctx, "EMP0002"), 1)
}

func TestEmployee_AddAndUpdate(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	repo := NewEmployeeRepository(s)
	leaves := NewLeaveRequestRepository(s)

	added := repo.Add(ctx, employee.Employee{EmployeeID: "EMP0003", Name: "Kabir Khan", Status: employee.StatusActive})
	assert.Equal(t, "id-1", added.ID)

	got, err := repo.GetByEmployeeID(ctx, "EMP0003")
	require.NoError(t, err)
	assert.Equal(t, added, got)

	name := "Aarav S. Sharma"
	repo.Update(ctx, "1", employee.Patch{Name: &name})
	renamed, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, name, renamed.Name)
	assert.Equal(t, "EMP0001", renamed.EmployeeID)

	// leave requests keep the name captured at request time
	req, err := leaves.GetByID(ctx, "leave-1")
	require.NoError(t, err)
	assert.Equal(t, "Aarav Sharma", req.EmployeeName)

	repo.Update(ctx, "missing", employee.Patch{Name: &name})
	assert.Len(t, repo.List(ctx), 3)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSnapshot_IsStableAcrossMutations(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	dash := NewDashboardRepository(s)

	snap := dash.Snapshot(ctx)
	NewAttendanceRepository(s).CheckIn(ctx, "EMP0002")
	NewLeaveRequestRepository(s).Approve(ctx, "leave-1", "EMP0002", nil)

	assert.Len(t, snap.Attendance, 1)
	assert.Equal(t, leave.StatusPending, snap.LeaveRequests[0].Status)
	assert.Equal(t, "2026-01-14", snap.Today)

	fresh := dash.Snapshot(ctx)
	assert.Len(t, fresh.Attendance, 2)
	assert.Equal(t, leave.StatusApproved, fresh.LeaveRequests[0].Status)
}

func TestConcurrentCheckIns(t *testing.T) {
	ctx := context.Background()
	c := &clock.Fixed{T: time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)}
	s := NewStore(mockdata.Dataset{}, c)
	repo := NewAttendanceRepository(s)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("EMP%04d", i%10)
			repo.CheckIn(ctx, id)
			_ = repo.List(ctx)
			repo.CheckOut(ctx, id)
		}(i)
	}
	wg.Wait()

	records := repo.List(ctx)
	assert.Len(t, records, 10)
	seen := make(map[string]bool)
	for _, r := range records {
		assert.False(t, seen[r.EmployeeID])
		seen[r.EmployeeID] = true
	}
}

func TestConcurrentCheckIns_CreateOnce(t *testing.T) {
	ctx := context.Background()
	c := &clock.Fixed{T: time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)}
	repo := NewAttendanceRepository(NewStore(mockdata.Dataset{}, c))

	var wg sync.WaitGroup
	var created atomic.Int32
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := repo.CheckIn(ctx, "EMP0003"); ok {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Len(t, repo.ListByEmployee(ctx, "EMP0003"), 1)
}
