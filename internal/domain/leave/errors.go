package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrEmployeeIDRequired   = errors.New("employee ID is required")
)
