package game

import "time"

// Clock measures the time between loop iterations.
type Clock struct {
	now     func() time.Time
	start   time.Time
	last    time.Time
	started bool
}

// NewClock returns a stopped clock reading from now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Start resets the clock. The next Tick measures from this instant.
func (c *Clock) Start() {
	c.start = c.now()
	c.last = c.start
	c.started = true
}

// Tick returns the time since the previous Tick (or Start) and advances the
// reference point. It has no effect on a stopped clock.
func (c *Clock) Tick() time.Duration {
	if !c.started {
		return 0
	}
	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		return 0
	}
	return d
}

// SinceTick returns the time since the last Tick without advancing.
func (c *Clock) SinceTick() time.Duration {
	if !c.started {
		return 0
	}
	return c.now().Sub(c.last)
}

// Elapsed returns the time since Start.
func (c *Clock) Elapsed() time.Duration {
	if !c.started {
		return 0
	}
	return c.now().Sub(c.start)
}

// ClampStep bounds a frame delta to [0, limit]. A non-positive limit disables
// the upper bound.
func ClampStep(d, limit time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if limit > 0 && d > limit {
		return limit
	}
	return d
}
