package leave

import "context"

// LeaveRequestRepository is the leave collection of the HR store. Approve and
// Reject on an unknown id do nothing. Neither guards against re-processing a
// request that already left pending; the last call wins.
type LeaveRequestRepository interface {
	List(ctx context.Context) []LeaveRequest
	ListByEmployee(ctx context.Context, employeeID string) []LeaveRequest
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// Submit stores r as a new pending request with a fresh id.
	Submit(ctx context.Context, r LeaveRequest) LeaveRequest

	Approve(ctx context.Context, id, approvedBy string, comments *string)
	Reject(ctx context.Context, id, approvedBy string, comments *string)
}
