package gesture

import "time"

// DefaultTapWindow is the maximum gap between taps of one sequence.
const DefaultTapWindow = 350 * time.Millisecond

// TapCounter accumulates taps that arrive within Window of each other.
// It is evaluated against event timestamps, so there is exactly one
// deadline per counter and no timer to cancel.
type TapCounter struct {
	Window time.Duration

	count      int
	armedUntil time.Time
}

// Tap registers a tap at the given time and returns the running count.
func (c *TapCounter) Tap(at time.Time) int {
	if c.count > 0 && at.After(c.armedUntil) {
		c.count = 0
	}
	c.count++
	c.armedUntil = at.Add(c.window())
	return c.count
}

func (c *TapCounter) Reset() {
	c.count = 0
	c.armedUntil = time.Time{}
}

func (c *TapCounter) window() time.Duration {
	if c.Window <= 0 {
		return DefaultTapWindow
	}
	return c.Window
}
