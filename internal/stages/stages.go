// Package stages holds the per-stage layouts. Each stage maps a particle and
// the frame context to a visual state in its own layout, knowing nothing about
// the stages around it.
package stages

import (
	"math"

	"iris/internal/cache"
	"iris/internal/core"
	"iris/internal/mathx"
)

// Stage names as registered with core.RegisterStage.
const (
	NameRing      = "ring"
	NamePulse     = "pulse"
	NameBloom     = "bloom"
	NamePlanetary = "planetary"
	NameGrid      = "grid"
)

// DefaultSequence is the stage order used when none is configured. The pulse
// stage is registered but left out.
var DefaultSequence = []string{NameRing, NameBloom, NamePlanetary, NameGrid}

// RingBaseRadius is the ring radius used when Deps leaves it unset.
const RingBaseRadius = 180

func init() {
	core.RegisterStage(NameRing, func(d core.Deps) core.Stage { return NewRing(d) })
	core.RegisterStage(NamePulse, func(d core.Deps) core.Stage { return NewPulse(d) })
	core.RegisterStage(NameBloom, func(d core.Deps) core.Stage { return NewBloom(d) })
	core.RegisterStage(NamePlanetary, func(d core.Deps) core.Stage { return NewPlanetary(d) })
	core.RegisterStage(NameGrid, func(d core.Deps) core.Stage { return NewGrid(d) })
}

func baseRadius(d core.Deps) float64 {
	if d.BaseRadius > 0 {
		return d.BaseRadius
	}
	return RingBaseRadius
}

func cacheOf(d core.Deps) *cache.Cache {
	if d.Cache != nil {
		return d.Cache
	}
	return cache.New()
}

// unit returns cos/sin of the particle's fixed angle, from the trig table
// when the id is covered by it.
func unit(trig []cache.Trig, p core.Particle) (float64, float64) {
	if p.ID >= 0 && p.ID < len(trig) {
		t := trig[p.ID]
		return t.Cos, t.Sin
	}
	return math.Cos(p.Theta), math.Sin(p.Theta)
}

// breath is the shared slow radius oscillation.
func breath(amplitude, frequency, time float64) float64 {
	return 1 + amplitude*math.Sin(time*frequency*mathx.TwoPi)
}

func hiddenScene() core.SceneState {
	c := core.DefaultCore
	c.Visible = false
	c.Opacity = 0
	return core.SceneState{Core: c}
}
