package leave

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/leave"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/paging"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/sse"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRequestRepository
	publisher sse.Publisher
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository, publisher sse.Publisher) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo: leaveRepo,
		publisher: publisher,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}
	return s.leaveRepo.Submit(ctx, req.ToLeaveRequest()), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ReviewLeaveRequest) (*leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.leaveRepo.Approve(ctx, req.ID, req.ApprovedBy, req.Comments)
	return s.reviewed(ctx, req.ID, sse.EventLeaveApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.ReviewLeaveRequest) (*leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.leaveRepo.Reject(ctx, req.ID, req.ApprovedBy, req.Comments)
	return s.reviewed(ctx, req.ID, sse.EventLeaveRejected)
}

// reviewed reloads a request after review and notifies its owner.
func (s *LeaveServiceImpl) reviewed(ctx context.Context, id, event string) (*leave.LeaveRequest, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if errors.Is(err, leave.ErrLeaveRequestNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reload leave request %q: %w", id, err)
	}

	s.publisher.Publish(sse.Event{EmployeeID: req.EmployeeID, Event: event, Data: req})
	return &req, nil
}

// MyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) MyRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, leave.ErrEmployeeIDRequired
	}

	requests := s.leaveRepo.ListByEmployee(ctx, employeeID)
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].StartDate > requests[j].StartDate
	})
	return requests, nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	pending, processed := []leave.LeaveRequest{}, []leave.LeaveRequest{}
	for _, r := range s.leaveRepo.List(ctx) {
		if !matchesRequest(r, search, filter.Type, filter.Status) {
			continue
		}
		if r.IsPending() {
			pending = append(pending, r)
		} else {
			processed = append(processed, r)
		}
	}

	var res leave.ListLeaveResponse
	res.Pending.Requests, res.Pending.Meta = paging.Slice(pending, filter.PendingPage, filter.Limit)
	res.Processed.Requests, res.Processed.Meta = paging.Slice(processed, filter.ProcessedPage, filter.Limit)
	return res, nil
}

func matchesRequest(r leave.LeaveRequest, search, typ, status string) bool {
	if typ != "" && typ != "all" && string(r.Type) != typ {
		return false
	}
	if status != "" && status != "all" && string(r.Status) != status {
		return false
	}
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.EmployeeName), search) ||
		strings.Contains(strings.ToLower(r.EmployeeID), search)
}
