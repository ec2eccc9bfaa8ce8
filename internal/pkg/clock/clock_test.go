package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClockFormats(t *testing.T) {
	c := &Fixed{T: time.Date(2026, 1, 7, 9, 5, 0, 0, time.UTC)}

	assert.Equal(t, "2026-01-07", Today(c))
	assert.Equal(t, "09:05", TimeOfDay(c))

	c.T = c.T.Add(8 * time.Hour)
	assert.Equal(t, "17:05", TimeOfDay(c))
}

func TestNewUsesLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	c := New(loc)
	assert.Equal(t, loc, c.Now().Location())
}

func TestMinutesOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"08:30", 510, true},
		{"19:59", 1199, true},
		{"bad", 0, false},
	}
	for _, c := range cases {
		got, ok := MinutesOfDay(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}
