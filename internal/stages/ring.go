package stages

import (
	"math"

	"iris/internal/cache"
	"iris/internal/core"
	"iris/internal/mathx"
)

const (
	ringBreathAmplitude = 0.12
	ringBreathFrequency = 0.125 // one breath every 8 seconds
	ringGlowBase        = 4
	ringGlowAmplitude   = 4
	ringParticleSize    = 3
)

// Ring places every particle on one breathing circle.
type Ring struct {
	base float64
	trig []cache.Trig
}

// NewRing builds the ring stage.
func NewRing(d core.Deps) *Ring {
	return &Ring{base: baseRadius(d), trig: cacheOf(d).Trig(d.Count)}
}

// Name identifies the stage.
func (r *Ring) Name() string { return NameRing }

// Radius returns the breathing ring radius at time t.
func (r *Ring) Radius(t float64) float64 {
	return r.base * breath(ringBreathAmplitude, ringBreathFrequency, t)
}

// BreathRadius returns the breathing radius of a ring with the default base.
func BreathRadius(t float64) float64 {
	return RingBaseRadius * breath(ringBreathAmplitude, ringBreathFrequency, t)
}

// Particle places p on the ring. Glow breathes in phase with the radius.
func (r *Ring) Particle(p core.Particle, ctx core.FrameContext) core.ParticleState {
	radius := r.Radius(ctx.Time)
	cos, sin := unit(r.trig, p)
	wave := math.Sin(ctx.Time * ringBreathFrequency * mathx.TwoPi)
	return core.ParticleState{
		X:       ctx.Center.X + cos*radius,
		Y:       ctx.Center.Y + sin*radius,
		R:       ringParticleSize,
		Opacity: 1,
		Glow:    ringGlowBase + ringGlowAmplitude*wave,
	}
}

// Scene hides the core glow.
func (r *Ring) Scene(core.FrameContext) core.SceneState { return hiddenScene() }
