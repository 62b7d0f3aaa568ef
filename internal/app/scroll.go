package app

import (
	"math"

	"iris/internal/mathx"
)

// ScrollConfig tunes the wheel-driven progress.
type ScrollConfig struct {
	Sensitivity  float64 // progress per wheel notch
	Smoothing    float64 // approach rate toward the target, per second
	SnapDelay    float64 // idle seconds before settling on a stage
	SnapDuration float64 // seconds the settle takes
}

// DefaultScrollConfig returns the viewer defaults.
func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{Sensitivity: 0.15, Smoothing: 8, SnapDelay: 0.6, SnapDuration: 0.5}
}

// Scroll turns wheel input into continuous stage progress. The shown value
// follows the wheel target smoothly; once the wheel is idle for SnapDelay it
// eases onto the nearest whole stage.
type Scroll struct {
	cfg     ScrollConfig
	max     float64
	target  float64
	current float64
	last    float64

	snapping  bool
	snapFrom  float64
	snapTo    float64
	snapStart float64
}

// NewScroll returns a driver over [0, max] starting at initial.
func NewScroll(cfg ScrollConfig, max, initial float64) *Scroll {
	s := &Scroll{cfg: cfg, max: math.Max(max, 0)}
	s.Jump(initial, 0)
	return s
}

// Progress returns the current smoothed progress.
func (s *Scroll) Progress() float64 { return s.current }

// Target returns the progress the wheel asked for.
func (s *Scroll) Target() float64 { return s.target }

// Snapping reports whether a settle is running.
func (s *Scroll) Snapping() bool { return s.snapping }

// Wheel applies a wheel delta. Scrolling down (negative dy) advances.
func (s *Scroll) Wheel(dy, now float64) {
	if dy == 0 {
		return
	}
	s.snapping = false
	s.target = mathx.Clamp(s.target-dy*s.cfg.Sensitivity, 0, s.max)
	s.last = now
}

// Step settles on the stage dir stages away from the nearest one.
func (s *Scroll) Step(dir int, now float64) {
	to := mathx.Clamp(math.Round(s.target)+float64(dir), 0, s.max)
	s.target = to
	s.startSnap(to, now)
}

// Jump moves to p immediately, without smoothing.
func (s *Scroll) Jump(p, now float64) {
	p = mathx.Clamp(p, 0, s.max)
	s.target, s.current = p, p
	s.snapping = false
	s.last = now
}

func (s *Scroll) startSnap(to, now float64) {
	s.snapping = true
	s.snapFrom = s.current
	s.snapTo = to
	s.snapStart = now
}

// Update advances the driver to now, dt seconds after the previous call,
// and returns the progress to show.
func (s *Scroll) Update(now, dt float64) float64 {
	if !s.snapping && now-s.last >= s.cfg.SnapDelay {
		if stage := math.Round(s.target); stage != s.target || s.current != stage {
			s.target = stage
			s.startSnap(stage, now)
		}
	}
	if s.snapping {
		t := 1.0
		if s.cfg.SnapDuration > 0 {
			t = mathx.Clamp01((now - s.snapStart) / s.cfg.SnapDuration)
		}
		s.current = mathx.Lerp(s.snapFrom, s.snapTo, mathx.EaseOutPower3(t))
		if t >= 1 {
			s.current = s.snapTo
			s.snapping = false
			s.last = now
		}
		return s.current
	}
	if dt > 0 && s.cfg.Smoothing > 0 {
		s.current += (s.target - s.current) * (1 - math.Exp(-s.cfg.Smoothing*dt))
	} else {
		s.current = s.target
	}
	if math.Abs(s.target-s.current) < 1e-4 {
		s.current = s.target
	}
	return s.current
}
