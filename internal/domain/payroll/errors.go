package payroll

import "errors"

var ErrEmployeeIDRequired = errors.New("employee ID is required")
