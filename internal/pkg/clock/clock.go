// Package clock provides the time source used by rental date arithmetic.
package clock

import (
	"math"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type Real struct{}

func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Manual is a controllable clock for tests.
// It is safe for concurrent use.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (c *Manual) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *Manual) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *Manual) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// HoursBetween returns the number of whole hours from start to end.
// It is negative when end is before start.
func HoursBetween(start, end time.Time) int {
	return int(truncate(end.Sub(start).Hours()))
}

// DaysBetween returns the number of whole days from start to end.
// It is negative when end is before start.
func DaysBetween(start, end time.Time) int {
	return int(truncate(end.Sub(start).Hours() / 24))
}

func truncate(v float64) float64 {
	if v < 0 {
		return math.Ceil(v)
	}
	return math.Floor(v)
}
