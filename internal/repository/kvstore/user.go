// Package kvstore persists auth state in a key-value storage under two keys:
// the registered users and the current session.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/user"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/storage"
)

const (
	RegisteredUsersKey = "dayflow_registered_users"
	CurrentUserKey     = "dayflow_current_user"
)

// userRecord is the persisted shape of a user. Password is only present in the
// registered users list.
type userRecord struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employeeId"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Department     string  `json:"department"`
	Position       string  `json:"position"`
	JoinDate       string  `json:"joinDate"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	Password       string  `json:"password,omitempty"`
}

func toRecord(u user.User) userRecord {
	return userRecord{
		ID:             u.ID,
		EmployeeID:     u.EmployeeID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           string(u.Role),
		Department:     u.Department,
		Position:       u.Position,
		JoinDate:       u.JoinDate,
		ProfilePicture: u.ProfilePicture,
	}
}

func (r userRecord) toUser() user.User {
	return user.User{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		Email:          r.Email,
		Name:           r.Name,
		Role:           user.Role(r.Role),
		Department:     r.Department,
		Position:       r.Position,
		JoinDate:       r.JoinDate,
		ProfilePicture: r.ProfilePicture,
	}
}

type userRepositoryImpl struct {
	kv storage.KeyValueStorage
	mu sync.Mutex // guards the read-modify-write of the registered list
}

func NewUserRepository(kv storage.KeyValueStorage) user.UserRepository {
	return &userRepositoryImpl{kv: kv}
}

// ListRegistered implements user.UserRepository.
func (r *userRepositoryImpl) ListRegistered(ctx context.Context) []user.StoredUser {
	records, err := r.readRegistered(ctx)
	if err != nil {
		slog.Error("failed to load registered users", "key", RegisteredUsersKey, "error", err)
	}

	users := make([]user.StoredUser, 0, len(records))
	for _, rec := range records {
		users = append(users, user.StoredUser{User: rec.toUser(), PasswordHash: rec.Password})
	}
	return users
}

// AppendRegistered implements user.UserRepository. The duplicate check and the
// write share one critical section so concurrent signups for the same email or
// employee ID cannot both land. An unreadable list is never overwritten.
func (r *userRepositoryImpl) AppendRegistered(ctx context.Context, u user.StoredUser) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.readRegistered(ctx)
	if err != nil {
		slog.Error("failed to load registered users, skipping save", "key", RegisteredUsersKey, "error", err)
		return true
	}
	for _, rec := range records {
		if rec.Email == u.Email || rec.EmployeeID == u.EmployeeID {
			return false
		}
	}

	rec := toRecord(u.User)
	rec.Password = u.PasswordHash
	records = append(records, rec)

	data, err := json.Marshal(records)
	if err != nil {
		slog.Error("failed to encode registered users", "error", err)
		return true
	}
	if err := r.kv.Set(ctx, RegisteredUsersKey, data); err != nil {
		slog.Error("failed to save registered users", "key", RegisteredUsersKey, "error", err)
	}
	return true
}

// CurrentSession implements user.UserRepository.
func (r *userRepositoryImpl) CurrentSession(ctx context.Context) *user.User {
	data, err := r.kv.Get(ctx, CurrentUserKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			slog.Error("failed to load current session", "key", CurrentUserKey, "error", err)
		}
		return nil
	}

	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		slog.Error("failed to decode current session", "key", CurrentUserKey, "error", err)
		return nil
	}

	u := rec.toUser()
	return &u
}

// SetCurrentSession implements user.UserRepository.
func (r *userRepositoryImpl) SetCurrentSession(ctx context.Context, u user.User) {
	data, err := json.Marshal(toRecord(u))
	if err != nil {
		slog.Error("failed to encode current session", "error", err)
		return
	}
	if err := r.kv.Set(ctx, CurrentUserKey, data); err != nil {
		slog.Error("failed to save current session", "key", CurrentUserKey, "error", err)
	}
}

// ClearCurrentSession implements user.UserRepository.
func (r *userRepositoryImpl) ClearCurrentSession(ctx context.Context) {
	if err := r.kv.Delete(ctx, CurrentUserKey); err != nil {
		slog.Error("failed to clear current session", "key", CurrentUserKey, "error", err)
	}
}

// readRegistered returns nil, nil when nothing has been registered yet.
func (r *userRepositoryImpl) readRegistered(ctx context.Context) ([]userRecord, error) {
	data, err := r.kv.Get(ctx, RegisteredUsersKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var records []userRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode registered users: %w", err)
	}
	return records, nil
}
