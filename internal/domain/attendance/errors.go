package attendance

import "errors"

var (
	ErrEmployeeIDRequired = errors.New("employee ID is required")
)
