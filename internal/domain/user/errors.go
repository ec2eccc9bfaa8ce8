package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAdminAccessRequired = errors.New("admin or HR access required")
)
