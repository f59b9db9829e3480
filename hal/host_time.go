package hal

import "time"

// hostClock reports seconds since the first Elapsed call (wall mode) or
// whole fixed-rate ticks since start (fixed mode).
type hostClock struct {
	now   func() time.Time
	start time.Time

	hz    int
	ticks uint64
}

func newWallClock() *hostClock {
	return newWallClockWith(time.Now)
}

func newWallClockWith(now func() time.Time) *hostClock {
	return &hostClock{now: now}
}

func newFixedClock(hz int) *hostClock {
	return &hostClock{hz: hz}
}

func (c *hostClock) Elapsed() float64 {
	if c.hz > 0 {
		return float64(c.ticks) / float64(c.hz)
	}
	t := c.now()
	if c.start.IsZero() {
		c.start = t
	}
	return t.Sub(c.start).Seconds()
}

// step advances a fixed clock by one tick. It is a no-op on the wall clock.
func (c *hostClock) step() {
	if c.hz > 0 {
		c.ticks++
	}
}
