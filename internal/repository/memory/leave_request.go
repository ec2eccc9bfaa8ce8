package memory

import (
	"context"
	"slices"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/leave"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
)

type leaveRequestRepositoryImpl struct {
	store *Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{store: store}
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) []leave.LeaveRequest {
	return slices.Clone(r.store.load().leaves)
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) []leave.LeaveRequest {
	out := []leave.LeaveRequest{}
	for _, l := range r.store.load().leaves {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	for _, l := range r.store.load().leaves {
		if l.ID == id {
			return l, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

// Submit implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Submit(ctx context.Context, req leave.LeaveRequest) leave.LeaveRequest {
	req.ID = r.store.newID()
	req.Status = leave.StatusPending
	req.ApprovedBy, req.ApprovedDate, req.Comments = nil, nil, nil

	r.store.update(func(next *state) {
		next.leaves = withAppended(next.leaves, req)
	})
	return req
}

// Approve implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Approve(ctx context.Context, id, approvedBy string, comments *string) {
	r.review(id, leave.StatusApproved, approvedBy, comments)
}

// Reject implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Reject(ctx context.Context, id, approvedBy string, comments *string) {
	r.review(id, leave.StatusRejected, approvedBy, comments)
}

func (r *leaveRequestRepositoryImpl) review(id string, status leave.Status, approvedBy string, comments *string) {
	r.store.update(func(next *state) {
		i := slices.IndexFunc(next.leaves, func(l leave.LeaveRequest) bool { return l.ID == id })
		if i < 0 {
			return
		}

		today := clock.Today(r.store.clock)
		req := next.leaves[i]
		req.Status = status
		req.ApprovedBy = &approvedBy
		req.ApprovedDate = &today
		req.Comments = nil
		if comments != nil {
			c := *comments
			req.Comments = &c
		}
		next.leaves = withReplaced(next.leaves, i, req)
	})
}
