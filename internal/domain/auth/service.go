package auth

import (
	"context"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/user"
)

type AuthService interface {
	// Login matches the demo accounts first, then registered users, on exact
	// email, role and password.
	Login(ctx context.Context, req LoginRequest) (SessionResponse, error)

	// Signup registers a new employee account and signs it in.
	Signup(ctx context.Context, req SignupRequest) (SessionResponse, error)

	// Logout clears the current session and revokes the presented token.
	Logout(ctx context.Context, token string) error

	// Session returns the persisted current user, or nil.
	Session(ctx context.Context) (*user.User, error)

	// Profile returns the caller, taken from the access token claims, and
	// their directory entry.
	Profile(ctx context.Context) (user.ProfileResponse, error)
}
