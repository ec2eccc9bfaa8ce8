package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email, password or role")
	ErrUserAlreadyExists  = errors.New("user with this email or employee ID already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)
