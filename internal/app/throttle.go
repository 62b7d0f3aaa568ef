package app

// Throttle lets every n-th tick through. Ticks in between redraw the last
// computed frame.
type Throttle struct {
	every int
	n     int
}

// NewThrottle returns a Throttle passing one tick in every. Values below 1
// pass every tick.
func NewThrottle(every int) *Throttle {
	return &Throttle{every: max(every, 1)}
}

// Tick reports whether the current tick should compute a new frame. The
// first tick after construction or Reset always does.
func (t *Throttle) Tick() bool {
	due := t.n == 0
	t.n = (t.n + 1) % t.every
	return due
}

// Reset makes the next tick due.
func (t *Throttle) Reset() { t.n = 0 }
