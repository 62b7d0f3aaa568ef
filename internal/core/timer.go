package core

import "time"

// FixedStep splits variable frame deltas into whole fixed-size steps.
type FixedStep struct {
	step        float64
	accumulator float64
}

// NewFixedStep constructs a FixedStep running at the given steps per second.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(rate)
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = 1 / float64(rate)
}

// Step returns the fixed step length in seconds.
func (f *FixedStep) Step() float64 { return f.step }

// Advance adds dt seconds and reports how many whole steps are now due.
// Negative deltas are ignored.
func (f *FixedStep) Advance(dt float64) int {
	if dt > 0 {
		f.accumulator += dt
	}
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	return n
}

// Clear drops any partially accumulated time.
func (f *FixedStep) Clear() { f.accumulator = 0 }

// Clock is a pausable monotonic animation clock reporting seconds.
type Clock struct {
	now     func() time.Time
	start   time.Time
	paused  bool
	pausedA time.Time
	offset  time.Duration
}

// NewClock starts a clock at zero. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, start: now()}
}

// Seconds returns the elapsed animation time, excluding paused spans.
func (c *Clock) Seconds() float64 {
	at := c.now()
	if c.paused {
		at = c.pausedA
	}
	return (at.Sub(c.start) - c.offset).Seconds()
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool { return c.paused }

// Toggle pauses a running clock or resumes a paused one.
func (c *Clock) Toggle() {
	if c.paused {
		c.offset += c.now().Sub(c.pausedA)
		c.paused = false
		return
	}
	c.pausedA = c.now()
	c.paused = true
}

// Reset restarts the clock from zero, keeping the paused state.
func (c *Clock) Reset() {
	c.start = c.now()
	c.pausedA = c.start
	c.offset = 0
}
