package mockdata

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/leave"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
)

const (
	minLeaveRequests  = 200
	leaveRequestRange = 100
	maxExtraLeaveDays = 5
	approverPool      = 100

	CommentApproved = "Approved"
	CommentRejected = "Insufficient leave balance"
)

var (
	leaveStart    = utcDate(2026, 1, 1)
	leaveEnd      = utcDate(2026, 3, 31)
	approvalStart = utcDate(2025, 12, 1)

	leaveTypes    = []leave.Type{leave.TypePaid, leave.TypeSick, leave.TypeUnpaid}
	leaveStatuses = []leave.Status{leave.StatusPending, leave.StatusApproved, leave.StatusRejected}
)

// LeaveRequests synthesises 200 to 299 requests from active employees.
// Processed requests carry an approver id drawn from EMP0000-EMP0099, which
// need not match a real employee.
func (g *Generator) LeaveRequests(emps []employee.Employee, now time.Time) []leave.LeaveRequest {
	active := make([]employee.Employee, 0, len(emps))
	for _, e := range emps {
		if e.IsActive() {
			active = append(active, e)
		}
	}

	count := g.src.IntN(leaveRequestRange) + minLeaveRequests
	if len(active) == 0 {
		return []leave.LeaveRequest{}
	}

	requests := make([]leave.LeaveRequest, 0, count)
	for i := 1; i <= count; i++ {
		emp := pick(g.src, active)
		typ := pick(g.src, leaveTypes)

		start := randomDate(g.src, leaveStart, leaveEnd)
		startDay, _ := time.Parse(clock.DateLayout, start)
		end := startDay.AddDate(0, 0, g.src.IntN(maxExtraLeaveDays)).Format(clock.DateLayout)

		status := pick(g.src, leaveStatuses)

		req := leave.LeaveRequest{
			ID:           fmt.Sprintf("leave-%d", i),
			EmployeeID:   emp.EmployeeID,
			EmployeeName: emp.Name,
			Type:         typ,
			StartDate:    start,
			EndDate:      end,
			Status:       status,
		}
		req.Reason = pick(g.src, leaveReasons)

		if status != leave.StatusPending {
			approvedBy := FormatEmployeeID(g.src.IntN(approverPool))
			approvedDate := randomDate(g.src, approvalStart, now)
			comments := CommentApproved
			if status == leave.StatusRejected {
				comments = CommentRejected
			}
			req.ApprovedBy = &approvedBy
			req.ApprovedDate = &approvedDate
			req.Comments = &comments
		}

		requests = append(requests, req)
	}

	return requests
}
