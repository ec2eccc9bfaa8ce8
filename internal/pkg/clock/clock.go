// Package clock provides the wall-clock source used by the HR store and services,
// plus the calendar formats shared by every collection.
package clock

import "time"

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct {
	loc *time.Location
}

// New returns a Clock reading the system time in loc. A nil loc means time.Local.
func New(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return realClock{loc: loc}
}

func (c realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed is a Clock frozen at T. Tests advance it by assigning T.
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T
}

// Today renders the current calendar date of c.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

// TimeOfDay renders the current 24h wall-clock time of c as HH:MM.
func TimeOfDay(c Clock) string {
	return c.Now().Format(TimeOfDayLayout)
}

// MinutesOfDay parses an HH:MM string into minutes past midnight.
func MinutesOfDay(hhmm string) (int, bool) {
	t, err := time.Parse(TimeOfDayLayout, hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
