package mockdata

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
)

// Source is the randomness the generators consume.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// NewSource returns a PCG source. A zero seed is replaced by the current time.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// randomDate draws an instant uniformly from [start, end] and returns its UTC
// calendar date.
func randomDate(src Source, start, end time.Time) string {
	span := end.Sub(start)
	t := start.Add(time.Duration(src.Float64() * float64(span)))
	return t.UTC().Format(clock.DateLayout)
}

// randomTime returns HH:MM with the hour in [startHour, endHour).
func randomTime(src Source, startHour, endHour int) string {
	hour := src.IntN(endHour-startHour) + startHour
	minute := src.IntN(60)
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
