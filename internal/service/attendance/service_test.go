package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/sse"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/validator"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/repository/memory"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/repository/memory/memorytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []sse.Event
}

func (p *recordingPublisher) Publish(event sse.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := []string{}
	for _, e := range p.events {
		out = append(out, e.EmployeeID+" "+e.Event)
	}
	return out
}

func newTestService() (attendance.AttendanceService, *clock.Fixed, *recordingPublisher) {
	store, c := memorytest.NewStore()
	pub := &recordingPublisher{}
	svc := NewAttendanceService(memory.NewAttendanceRepository(store), memory.NewEmployeeRepository(store), c, pub)
	return svc, c, pub
}

func TestCheckIn_KeepsFirstTime(t *testing.T) {
	svc, c, pub := newTestService()
	ctx := context.Background()

	rec, err := svc.CheckIn(ctx, "EMP0002")
	require.NoError(t, err)
	require.NotNil(t, rec.CheckIn)
	assert.Equal(t, "09:05", *rec.CheckIn)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, memorytest.Today, rec.Date)

	c.T = c.T.Add(3 * time.Hour)
	again, err := svc.CheckIn(ctx, "EMP0002")
	require.NoError(t, err)
	assert.Equal(t, "09:05", *again.CheckIn)
	assert.Equal(t, rec.ID, again.ID)

	assert.Equal(t, []string{"EMP0002 attendance.checked_in"}, pub.names())

	_, err = svc.CheckIn(ctx, " ")
	assert.ErrorIs(t, err, attendance.ErrEmployeeIDRequired)
}

func TestCheckIn_ConcurrentPublishesOnce(t *testing.T) {
	svc, _, pub := newTestService()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CheckIn(ctx, "EMP0002")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"EMP0002 attendance.checked_in"}, pub.names())
}

func TestCheckOut(t *testing.T) {
	svc, c, pub := newTestService()
	ctx := context.Background()

	missing, err := svc.CheckOut(ctx, "EMP0002")
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.Empty(t, pub.names())

	c.T = time.Date(2026, 1, 14, 18, 40, 0, 0, time.UTC)
	rec, err := svc.CheckOut(ctx, "EMP0001")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, "18:40", *rec.CheckOut)
	assert.Equal(t, "09:00", *rec.CheckIn)
	assert.Equal(t, []string{"EMP0001 attendance.checked_out"}, pub.names())
}

func TestToday(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	rec, err := svc.Today(ctx, "EMP0003")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "10:30", *rec.CheckIn)

	none, err := svc.Today(ctx, "EMP0002")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestMyAttendance(t *testing.T) {
	svc, _, _ := newTestService()

	res, err := svc.MyAttendance(context.Background(), "EMP0001")
	require.NoError(t, err)
	require.Len(t, res.Records, 3)

	assert.Equal(t, "2026-01-14", res.Records[0].Date)
	assert.Equal(t, "2026-01-13", res.Records[1].Date)
	assert.Equal(t, "2026-01-12", res.Records[2].Date)

	assert.Zero(t, res.Records[0].Hours)
	assert.InDelta(t, 9.3, res.Records[1].Hours, 1e-9)

	assert.Equal(t, 2, res.PresentDays)
	assert.Equal(t, 1, res.AbsentDays)
	assert.Zero(t, res.LeaveDays)
	assert.Zero(t, res.HalfDays)
}

func TestMyAttendance_CapsHistory(t *testing.T) {
	svc, c, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < attendance.MyAttendanceLimit+5; i++ {
		c.T = time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		_, err := svc.CheckIn(ctx, "EMP0002")
		require.NoError(t, err)
	}

	res, err := svc.MyAttendance(ctx, "EMP0002")
	require.NoError(t, err)
	assert.Len(t, res.Records, attendance.MyAttendanceLimit)
	assert.Equal(t, "2026-01-13", res.Records[0].Date)
}

func TestOverview(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	res, err := svc.Overview(ctx, attendance.OverviewFilter{})
	require.NoError(t, err)
	assert.Equal(t, memorytest.Today, res.Date)
	assert.Equal(t, 2, res.PresentToday)
	assert.Equal(t, 3, res.ActiveEmployees)
	assert.Equal(t, 67, res.AttendanceRate)
	assert.Equal(t, "9:45 AM", res.AverageCheckIn)
	assert.Equal(t, []string{"Engineering", "Finance", "Sales"}, res.Departments)
	require.Len(t, res.Records, 4)

	statuses := map[string]attendance.Status{}
	for _, r := range res.Records {
		statuses[r.EmployeeID] = r.Status
	}
	assert.Equal(t, map[string]attendance.Status{
		"EMP0001": attendance.StatusPresent,
		"EMP0002": attendance.StatusAbsent,
		"EMP0003": attendance.StatusPresent,
		"EMP0004": attendance.StatusAbsent,
	}, statuses)
}

func TestOverview_Filters(t *testing.T) {
	svc, c, _ := newTestService()
	ctx := context.Background()

	res, err := svc.Overview(ctx, attendance.OverviewFilter{Status: "absent", Department: "Sales"})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "EMP0002", res.Records[0].EmployeeID)
	assert.Nil(t, res.Records[0].CheckIn)

	res, err = svc.Overview(ctx, attendance.OverviewFilter{Search: "engineer"})
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)

	c.T = time.Date(2026, 1, 14, 18, 15, 0, 0, time.UTC)
	_, err = svc.CheckOut(ctx, "EMP0001")
	require.NoError(t, err)
	res, err = svc.Overview(ctx, attendance.OverviewFilter{Search: "EMP0001"})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	require.NotNil(t, res.Records[0].Worked)
	assert.Equal(t, "9h 15m", *res.Records[0].Worked)

	_, err = svc.Overview(ctx, attendance.OverviewFilter{Status: "late"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
