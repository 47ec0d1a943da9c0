// Package mock provides controllable collaborators for tests.
package mock

import (
	"sync"
	"time"
)

// Time is a clock that only moves when told to.
type Time struct {
	mu  sync.Mutex
	now time.Time
}

// NewTime creates a clock frozen at start.
func NewTime(start time.Time) *Time {
	return &Time{now: start}
}

// SetCurrentTime moves the clock to currentTime.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = currentTime
}

// Advance moves the clock forward by d.
func (t *Time) Advance(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = t.now.Add(d)
}

// Now returns the current mock time.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now
}
