// Package interact computes the pointer and click effects layered on top of
// the stage layouts. Everything here is a pure function of its inputs except
// RippleWave, which remembers the last click.
package interact

import (
	"math"

	"iris/internal/core"
	"iris/internal/mathx"
)

// HoverConfig shapes the standing-wave oscillation near the pointer.
type HoverConfig struct {
	Radius    float64
	Amplitude float64
	Frequency float64 // Hz
	Waves     int     // waves around the ring, integer so the seam is continuous
}

// ClickConfig shapes the per-particle click bounce.
type ClickConfig struct {
	Radius   float64
	Strength float64
	Rise     float64 // seconds
	Settle   float64 // seconds
}

// MagneticConfig shapes the pointer repulsion.
type MagneticConfig struct {
	Radius   float64
	Strength float64
	Falloff  float64
}

// WaveConfig shapes the expanding ripple started by a click.
type WaveConfig struct {
	Speed     float64 // px per second
	Width     float64 // px
	Duration  float64 // seconds
	MaxRadius float64
	Strength  float64
}

// CoreConfig shapes how the pointer intensifies the central glow.
type CoreConfig struct {
	Radius     float64
	PulseBoost float64 // pulse speed multiplier at full intensity
	RayBoost   float64
	GlowBoost  float64
}

// Config groups every interaction tunable.
type Config struct {
	Hover    HoverConfig
	Click    ClickConfig
	Magnetic MagneticConfig
	Wave     WaveConfig
	Core     CoreConfig
}

// DefaultConfig returns the stock interaction tuning.
func DefaultConfig() Config {
	return Config{
		Hover:    HoverConfig{Radius: 200, Amplitude: 8, Frequency: 3, Waves: 3},
		Click:    ClickConfig{Radius: 150, Strength: 30, Rise: 0.1, Settle: 0.8},
		Magnetic: MagneticConfig{Radius: 150, Strength: 40, Falloff: 2},
		Wave:     WaveConfig{Speed: 420, Width: 90, Duration: 1.6, MaxRadius: 700, Strength: 22},
		Core:     CoreConfig{Radius: 220, PulseBoost: 2, RayBoost: 1.5, GlowBoost: 1.8},
	}
}

// HoverOffset returns the radial oscillation of p while it sits at radius
// around center. It is 0 at or beyond the hover radius and grows linearly
// toward the pointer.
func HoverOffset(cfg HoverConfig, p core.Particle, time float64, mouse, center core.Point, radius float64) float64 {
	if cfg.Radius <= 0 {
		return 0
	}
	x, y := mathx.PolarToCartesian(center.X, center.Y, radius, p.Theta)
	d := mathx.Distance(x, y, mouse.X, mouse.Y)
	if d >= cfg.Radius {
		return 0
	}
	amplitude := (1 - d/cfg.Radius) * cfg.Amplitude
	return amplitude * math.Sin(mathx.TwoPi*cfg.Frequency*time+p.Theta*float64(cfg.Waves))
}

// ClickStrength returns the initial outward bounce of p for a click at
// click, 0 outside the click radius.
func ClickStrength(cfg ClickConfig, p core.Particle, click, center core.Point, radius float64) float64 {
	if cfg.Radius <= 0 {
		return 0
	}
	x, y := mathx.PolarToCartesian(center.X, center.Y, radius, p.Theta)
	d := mathx.Distance(x, y, click.X, click.Y)
	if d >= cfg.Radius {
		return 0
	}
	return (1 - d/cfg.Radius) * cfg.Strength
}

// Magnetic returns the push away from the pointer for a particle at pos. It
// is zero beyond the radius and inside one pixel of the pointer.
func Magnetic(cfg MagneticConfig, pos, mouse core.Point) (dx, dy float64) {
	d := mathx.Distance(pos.X, pos.Y, mouse.X, mouse.Y)
	if d >= cfg.Radius || d < 1 {
		return 0, 0
	}
	force := cfg.Strength * math.Pow(1-d/cfg.Radius, cfg.Falloff)
	return (pos.X - mouse.X) / d * force, (pos.Y - mouse.Y) / d * force
}

// CoreIntensity returns how strongly the pointer excites the central glow,
// in [0, 1].
func CoreIntensity(cfg CoreConfig, mouse, center core.Point) float64 {
	if cfg.Radius <= 0 {
		return 0
	}
	d := mathx.Distance(mouse.X, mouse.Y, center.X, center.Y)
	if d >= cfg.Radius {
		return 0
	}
	return math.Pow(1-d/cfg.Radius, 1.5)
}

// BoostCore scales the core's pulse speed, ray length and glow by intensity.
func BoostCore(cfg CoreConfig, c core.CoreGlowState, intensity float64) core.CoreGlowState {
	i := mathx.Clamp01(intensity)
	if i == 0 {
		return c
	}
	c.PulseSpeed *= mathx.Lerp(1, cfg.PulseBoost, i)
	c.RayLength *= mathx.Lerp(1, cfg.RayBoost, i)
	c.CoreGlow *= mathx.Lerp(1, cfg.GlowBoost, i)
	return c
}
