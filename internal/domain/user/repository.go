package user

import "context"

// UserRepository persists registered accounts and the current session.
// Implementations swallow storage failures: reads degrade to empty and writes
// to no-ops.
type UserRepository interface {
	ListRegistered(ctx context.Context) []StoredUser
	// AppendRegistered reports false, without saving, when a registered
	// account already uses the same email or employee ID.
	AppendRegistered(ctx context.Context, u StoredUser) bool

	CurrentSession(ctx context.Context) *User
	SetCurrentSession(ctx context.Context, u User)
	ClearCurrentSession(ctx context.Context)
}
