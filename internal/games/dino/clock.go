package dino

import "time"

// FrameClock turns frame timestamps into elapsed milliseconds.
// The first tick after creation or Stop only anchors the baseline, so a
// resumed driver never sees a delta spanning the halted interval.
type FrameClock struct {
	last     time.Time
	anchored bool
}

// Tick records now and returns the milliseconds since the previous tick.
// ok is false for the baseline tick and for zero or backwards deltas; those
// frames must not advance the simulation.
func (c *FrameClock) Tick(now time.Time) (elapsed float64, ok bool) {
	if !c.anchored {
		c.last = now
		c.anchored = true
		return 0, false
	}
	d := now.Sub(c.last)
	c.last = now
	if d <= 0 {
		return 0, false
	}
	return float64(d) / float64(time.Millisecond), true
}

// Stop drops the baseline. The next Tick re-anchors.
func (c *FrameClock) Stop() {
	c.anchored = false
}
