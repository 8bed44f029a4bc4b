package game

import "time"

// Clock paces ticks at a fixed interval for frontends that poll every frame.
// Stopping it is permanent.
type Clock struct {
	interval   time.Duration
	lastUpdate time.Time
	started    bool
	stopped    bool
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{interval: interval}
}

func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Due reports whether a tick should run at now. The first call only arms
// the clock so the first tick lands one interval after the game appears.
func (c *Clock) Due(now time.Time) bool {
	if c.stopped {
		return false
	}
	if !c.started {
		c.started = true
		c.lastUpdate = now
		return false
	}
	if now.Sub(c.lastUpdate) >= c.interval {
		c.lastUpdate = now
		return true
	}
	return false
}

func (c *Clock) Stop() {
	c.stopped = true
}

func (c *Clock) Stopped() bool {
	return c.stopped
}
