package session

import "time"

// Clock supplies monotonic timestamps relative to an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// SystemClock measures time since it was created using the monotonic clock.
type SystemClock struct {
	origin time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

func (c *SystemClock) Now() time.Duration {
	return time.Since(c.origin)
}

// ManualClock only moves when told to. The simulator and tests drive it one
// tick at a time.
type ManualClock struct {
	now time.Duration
}

func (c *ManualClock) Now() time.Duration { return c.now }

func (c *ManualClock) Advance(d time.Duration) { c.now += d }

func (c *ManualClock) Set(t time.Duration) { c.now = t }
