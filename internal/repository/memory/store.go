// Package memory holds the session-scoped HR store. Every collection is an
// immutable snapshot: a mutation copies the affected slice, changes the copy
// and publishes it atomically, so readers never lock and never see a half
// applied change.
package memory

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/leave"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/mockdata"
	"github.com/google/uuid"
)

type state struct {
	employees  []employee.Employee
	attendance []attendance.AttendanceRecord
	leaves     []leave.LeaveRequest
}

type Store struct {
	mu    sync.Mutex // serialises writers
	state atomic.Pointer[state]
	clock clock.Clock
	newID func() string
}

// NewStore takes ownership of the dataset's slices.
func NewStore(ds mockdata.Dataset, c clock.Clock) *Store {
	s := &Store{clock: c, newID: newID}
	s.state.Store(&state{
		employees:  nonNil(ds.Employees),
		attendance: nonNil(ds.Attendance),
		leaves:     nonNil(ds.LeaveRequests),
	})
	return s
}

func (s *Store) load() *state {
	return s.state.Load()
}

// update runs fn on a shallow copy of the current state under the writer lock
// and publishes the result. fn replaces, never edits, the slices it changes.
func (s *Store) update(fn func(next *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.load()
	fn(&next)
	s.state.Store(&next)
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// withReplaced returns a copy of items with items[i] set to v.
func withReplaced[T any](items []T, i int, v T) []T {
	out := slices.Clone(items)
	out[i] = v
	return out
}

// withAppended returns a copy of items with v appended; the original backing
// array is never shared with the result.
func withAppended[T any](items []T, v T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, v)
}
