package leave

import "context"

type LeaveService interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequest, error)

	// Approve and Reject return nil when the id is unknown.
	Approve(ctx context.Context, req ReviewLeaveRequest) (*LeaveRequest, error)
	Reject(ctx context.Context, req ReviewLeaveRequest) (*LeaveRequest, error)

	MyRequests(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
}
