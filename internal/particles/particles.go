// Package particles owns the fixed particle population and the little state
// that survives between frames: click bounce offsets and position history.
package particles

import (
	"iris/internal/core"
	"iris/internal/mathx"

	"github.com/charmbracelet/harmonica"
)

// Generate returns count particles evenly spread around the circle.
func Generate(count int, baseRadius float64) []core.Particle {
	if count < 0 {
		count = 0
	}
	ps := make([]core.Particle, count)
	for i := range ps {
		ps[i] = core.Particle{
			ID:         i,
			Theta:      float64(i) / float64(count) * mathx.TwoPi,
			BaseRadius: baseRadius,
		}
	}
	return ps
}

// BounceConfig tunes the click bounce: a fast ease to the peak followed by a
// damped spring back to rest.
type BounceConfig struct {
	Rise      float64 // seconds to reach the peak
	Settle    float64 // seconds until the offset is forced to rest
	Frequency float64 // spring angular frequency
	Damping   float64 // spring damping ratio, <1 rings
	StepRate  int     // spring sub-steps per second
}

// DefaultBounceConfig matches the 0.1s rise and ~0.8s elastic settle.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{Rise: 0.1, Settle: 0.8, Frequency: 16, Damping: 0.3, StepRate: 240}
}

type bouncePhase uint8

const (
	bounceIdle bouncePhase = iota
	bounceRising
	bounceSettling
)

type bounce struct {
	phase bouncePhase
	start float64
	from  float64
	peak  float64
	value float64
	vel   float64
	last  float64
	steps core.FixedStep
}

// Store holds the per-particle mutable state. It is driven from a single
// frame loop and is not safe for concurrent use.
type Store struct {
	particles []core.Particle
	cfg       BounceConfig
	spring    harmonica.Spring
	bounces   []bounce
	history   []history
}

// NewStore wraps an immutable particle set.
func NewStore(ps []core.Particle, cfg BounceConfig) *Store {
	if cfg.StepRate <= 0 {
		cfg.StepRate = 240
	}
	step := core.NewFixedStep(cfg.StepRate)
	s := &Store{
		particles: ps,
		cfg:       cfg,
		spring:    harmonica.NewSpring(step.Step(), cfg.Frequency, cfg.Damping),
		bounces:   make([]bounce, len(ps)),
		history:   make([]history, len(ps)),
	}
	for i := range s.bounces {
		s.bounces[i].steps = *step
	}
	return s
}

// Len returns the population size.
func (s *Store) Len() int { return len(s.particles) }

// Particles exposes the immutable particle set.
func (s *Store) Particles() []core.Particle { return s.particles }

// Particle returns particle i.
func (s *Store) Particle(i int) core.Particle { return s.particles[i] }

// Trigger starts a bounce on particle i toward strength, superseding any
// bounce already running on it. The rise starts from the current offset.
func (s *Store) Trigger(i int, strength, now float64) {
	if i < 0 || i >= len(s.bounces) || strength <= 0 {
		return
	}
	b := &s.bounces[i]
	b.from = b.value
	b.peak = strength
	b.start = now
	b.last = now
	b.vel = 0
	b.phase = bounceRising
	b.steps.Clear()
}

// Peak returns the strength of the last bounce triggered on particle i.
func (s *Store) Peak(i int) float64 {
	if i < 0 || i >= len(s.bounces) {
		return 0
	}
	return s.bounces[i].peak
}

// Offset returns the current radial click offset of particle i.
func (s *Store) Offset(i int) float64 {
	if i < 0 || i >= len(s.bounces) {
		return 0
	}
	return s.bounces[i].value
}

// Settled reports whether no bounce is running.
func (s *Store) Settled() bool {
	for i := range s.bounces {
		if s.bounces[i].phase != bounceIdle {
			return false
		}
	}
	return true
}

// Reset idles every bounce at a zero offset.
func (s *Store) Reset() {
	for i := range s.bounces {
		b := &s.bounces[i]
		steps := b.steps
		steps.Clear()
		*b = bounce{steps: steps}
	}
}

// Advance moves every running bounce forward to now.
func (s *Store) Advance(now float64) {
	for i := range s.bounces {
		s.advance(&s.bounces[i], now)
	}
}

func (s *Store) advance(b *bounce, now float64) {
	if b.phase == bounceRising {
		e := 1.0
		if s.cfg.Rise > 0 {
			e = (now - b.start) / s.cfg.Rise
		}
		if e < 1 {
			b.value = mathx.Lerp(b.from, b.peak, mathx.EaseOutQuad(mathx.Clamp01(e)))
			return
		}
		b.value = b.peak
		b.vel = 0
		b.start += s.cfg.Rise
		b.last = b.start
		b.phase = bounceSettling
	}
	if b.phase != bounceSettling {
		return
	}
	if now-b.start >= s.cfg.Settle {
		b.value = 0
		b.vel = 0
		b.phase = bounceIdle
		return
	}
	n := b.steps.Advance(now - b.last)
	b.last = now
	for ; n > 0; n-- {
		b.value, b.vel = s.spring.Update(b.value, b.vel, 0)
	}
}
