package stages

import (
	"math"

	"iris/internal/cache"
	"iris/internal/core"
	"iris/internal/mathx"
)

const (
	pulseBreath      = 0.06
	pulseBreathFreq  = 0.125
	pulseRings       = 3
	pulseSpeed       = 0.4
	pulseAmplitudeX  = 35
	pulseAmplitudeY  = 8
	pulseDecay       = 0.5
	pulseThickness   = 0.12
	pulseReach       = 1.3 // wave range relative to the ring radius
	pulseBaseSize    = 3
	pulsePeakSize    = 5.5
	pulseBaseOpacity = 0.85
	pulseGlowBase    = 5
	pulseGlowAmp     = 4
	pulseGlowGain    = 0.3
)

// Pulse keeps the ring but sends gaussian pulses outward from the center.
// The pulse amplitude alternates between the horizontal and vertical axis so
// the ring deforms into a slowly turning ellipse.
type Pulse struct {
	base float64
	trig []cache.Trig
}

// NewPulse builds the pulse ring stage.
func NewPulse(d core.Deps) *Pulse {
	return &Pulse{base: baseRadius(d), trig: cacheOf(d).Trig(d.Count)}
}

// Name identifies the stage.
func (s *Pulse) Name() string { return NamePulse }

// Radius returns the breathing radius before pulses are applied.
func (s *Pulse) Radius(t float64) float64 {
	return s.base * breath(pulseBreath, pulseBreathFreq, t)
}

// PulseEffect returns the combined strength of all pulse rings at the ring
// radius, in [0, 1].
func PulseEffect(t float64) float64 {
	at := 1 / pulseReach
	total := 0.0
	for i := 0; i < pulseRings; i++ {
		wave := math.Mod(t*pulseSpeed+float64(i)/pulseRings, 1)
		if wave < 0 {
			wave++
		}
		d := wave - at
		gauss := math.Exp(-d * d / (pulseThickness * pulseThickness))
		total += gauss * math.Pow(1-wave, pulseDecay)
	}
	return math.Min(1, total)
}

// Particle places p on the pulsing ring.
func (s *Pulse) Particle(p core.Particle, ctx core.FrameContext) core.ParticleState {
	t := ctx.Time
	effect := PulseEffect(t)

	cos, sin := unit(s.trig, p)
	orient := (math.Sin(t*pulseSpeed*math.Pi) + 1) / 2
	axis := mathx.Lerp(cos*cos, sin*sin, orient)
	offset := effect * mathx.Lerp(pulseAmplitudeY, pulseAmplitudeX, axis)

	radius := s.Radius(t) + offset
	glow := pulseGlowBase + pulseGlowAmp*math.Sin(t*pulseBreathFreq*mathx.TwoPi)
	return core.ParticleState{
		X:       ctx.Center.X + cos*radius,
		Y:       ctx.Center.Y + sin*radius,
		R:       pulseBaseSize * mathx.Lerp(1, pulsePeakSize/pulseBaseSize, effect),
		Opacity: mathx.Lerp(pulseBaseOpacity, 1, effect),
		Glow:    glow + offset*pulseGlowGain,
	}
}

// Scene shows a small flickering cyan star.
func (s *Pulse) Scene(ctx core.FrameContext) core.SceneState {
	t := ctx.Time
	flicker := 0.5 +
		0.15*math.Sin(t*0.8*mathx.TwoPi) +
		0.1*math.Sin(t*3.5*mathx.TwoPi) +
		0.05*math.Sin(t*7*mathx.TwoPi)

	c := core.DefaultCore
	c.Visible = true
	c.Opacity = mathx.Clamp(flicker, 0.2, 0.85)
	c.Size = 70
	c.RotationSpeed = 0.08
	c.Rotation = t * c.RotationSpeed * mathx.TwoPi
	c.CoreRadius = 10
	c.CoreColor = "hsl(180, 85%, 65%)"
	c.CoreGlow = 12
	c.RayCount = 12
	c.RayLength = 35 + 8*math.Sin(t*2.5*mathx.TwoPi)
	c.RayWidth = 1.5
	c.RayColor = "hsl(185, 90%, 75%)"
	c.PulseSpeed = 0.6
	c.PulseAmplitude = 0.25
	return core.SceneState{Core: c}
}
