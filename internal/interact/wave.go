package interact

import (
	"math"

	"iris/internal/core"
	"iris/internal/mathx"
)

// Push is a displacement produced by the ripple wave.
type Push struct {
	DX, DY    float64
	Intensity float64
}

// RippleWave is the single expanding wavefront of the last click. A new
// click replaces the running wave.
type RippleWave struct {
	cfg    WaveConfig
	center core.Point
	start  float64
	active bool
}

// NewRippleWave returns an idle wave.
func NewRippleWave(cfg WaveConfig) *RippleWave {
	return &RippleWave{cfg: cfg}
}

// Config returns the wave tuning.
func (w *RippleWave) Config() WaveConfig { return w.cfg }

// SetConfig replaces the wave tuning. A running wave continues with the new
// values.
func (w *RippleWave) SetConfig(cfg WaveConfig) { w.cfg = cfg }

// Trigger starts a wave at center.
func (w *RippleWave) Trigger(center core.Point, now float64) {
	w.center = center
	w.start = now
	w.active = true
}

// Step retires the wave once it has outlived its duration or outgrown its
// maximum radius.
func (w *RippleWave) Step(now float64) {
	if !w.active {
		return
	}
	elapsed := now - w.start
	if elapsed > w.cfg.Duration || w.cfg.Speed*elapsed > w.cfg.MaxRadius {
		w.active = false
	}
}

// Reset stops the running wave.
func (w *RippleWave) Reset() { w.active = false }

// Active reports whether a wave is running.
func (w *RippleWave) Active() bool { return w.active }

// Center returns where the current wave started.
func (w *RippleWave) Center() core.Point { return w.center }

// Radius returns the wavefront radius at now.
func (w *RippleWave) Radius(now float64) float64 {
	if !w.active {
		return 0
	}
	return w.cfg.Speed * math.Max(0, now-w.start)
}

// Offset returns the push on a particle at pos. Only particles within half
// the wave width of the wavefront move; the push points away from the click
// and fades with distance from the front and with the wave's age.
func (w *RippleWave) Offset(pos core.Point, now float64) Push {
	if !w.active || w.cfg.Width <= 0 || w.cfg.Duration <= 0 {
		return Push{}
	}
	elapsed := now - w.start
	if elapsed <= 0 || elapsed >= w.cfg.Duration {
		return Push{}
	}
	front := w.cfg.Speed * elapsed
	if front > w.cfg.MaxRadius {
		return Push{}
	}
	d := mathx.Distance(w.center.X, w.center.Y, pos.X, pos.Y)
	if d < 1 {
		return Push{}
	}
	delta := d - front
	half := w.cfg.Width / 2
	if math.Abs(delta) >= half {
		return Push{}
	}
	phase := math.Pi/2 - math.Pi*delta/w.cfg.Width
	sigma := w.cfg.Width / 4
	proximity := math.Exp(-delta * delta / (2 * sigma * sigma))
	intensity := proximity * (1 - elapsed/w.cfg.Duration)
	force := math.Sin(phase) * intensity * w.cfg.Strength
	return Push{
		DX:        (pos.X - w.center.X) / d * force,
		DY:        (pos.Y - w.center.Y) / d * force,
		Intensity: intensity,
	}
}
