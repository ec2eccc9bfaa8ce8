package memory

import (
	"context"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
)

type dashboardRepositoryImpl struct {
	store *Store
}

func NewDashboardRepository(store *Store) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{store: store}
}

// Snapshot implements dashboard.DashboardRepository. The slices are shared
// with the store and are never written again.
func (r *dashboardRepositoryImpl) Snapshot(ctx context.Context) dashboard.HRData {
	st := r.store.load()
	return dashboard.HRData{
		Today:         clock.Today(r.store.clock),
		Employees:     st.employees,
		Attendance:    st.attendance,
		LeaveRequests: st.leaves,
	}
}
