package core

import (
	"sort"

	"iris/internal/cache"
)

// Size describes the dimensions of the drawing canvas.
type Size struct {
	W int
	H int
}

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

// FarAway is the pointer sentinel used when no pointer is over the canvas. It
// sits far enough outside every interaction radius to zero all proximity
// effects.
var FarAway = Point{X: -1000, Y: -1000}

// Particle is the immutable identity of one point in the population.
type Particle struct {
	ID         int
	Theta      float64 // fixed angular position in [0, 2π)
	BaseRadius float64
}

// Primitive names the drawable a ParticleState is dominated by.
type Primitive uint8

const (
	// PrimitiveCircle is a glowing dot.
	PrimitiveCircle Primitive = iota
	// PrimitiveRect is a filled square (grid stage).
	PrimitiveRect
)

// ParticleState is the visual state of one particle for one frame. Circle and
// rectangle fields coexist so two stages of different primitive kinds can be
// blended field by field; a stage leaves the unused pair at zero.
type ParticleState struct {
	X, Y        float64
	R           float64
	Opacity     float64
	Glow        float64
	Color       string // "" when the stage does not pick a color
	TrailLength float64
	RectSize    float64
	RectOpacity float64
}

// Primitive reports which drawable carries more visible weight.
func (s ParticleState) Primitive() Primitive {
	if s.RectSize*s.RectOpacity > s.R*s.Opacity {
		return PrimitiveRect
	}
	return PrimitiveCircle
}

// CoreGlowState describes the pulsing central glow and its rays.
type CoreGlowState struct {
	Visible       bool
	Opacity       float64
	Size          float64
	Rotation      float64 // radians
	RotationSpeed float64 // revolutions per second

	CoreRadius float64
	CoreColor  string
	CoreGlow   float64

	RayCount  int
	RayLength float64
	RayWidth  float64
	RayColor  string

	PulseSpeed     float64
	PulseAmplitude float64
}

// DefaultCore is the hidden golden core every stage starts from.
var DefaultCore = CoreGlowState{
	Size:           100,
	RotationSpeed:  0.2,
	CoreRadius:     20,
	CoreColor:      "hsl(45, 100%, 70%)",
	CoreGlow:       15,
	RayCount:       12,
	RayLength:      60,
	RayWidth:       3,
	RayColor:       "hsl(45, 100%, 80%)",
	PulseSpeed:     0.5,
	PulseAmplitude: 0.2,
}

// SceneState holds the scene-level objects of one frame.
type SceneState struct {
	Core CoreGlowState
}

// FrameContext is the per-frame input shared by every stage.
type FrameContext struct {
	Time           float64 // seconds
	Mouse          Point
	Center         Point
	ScrollProgress float64 // continuous stage progress
	StageProgress  float64 // fractional part of ScrollProgress
}

// Stage maps a particle and frame context to that stage's layout alone.
type Stage interface {
	Name() string
	Particle(p Particle, ctx FrameContext) ParticleState
	Scene(ctx FrameContext) SceneState
}

// RadiusProvider is implemented by stages whose particles sit on a ring, so
// radial interactions can be computed against the live radius.
type RadiusProvider interface {
	Radius(time float64) float64
}

// Deps carries what a stage factory may need from the engine instance.
type Deps struct {
	Cache      *cache.Cache
	Count      int
	Mobile     bool
	BaseRadius float64
}

// Factory constructs a Stage for one engine instance.
type Factory func(d Deps) Stage

var stages = map[string]Factory{}

// RegisterStage adds a stage factory under the provided name.
func RegisterStage(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	stages[name] = f
}

// Stages exposes the registry of available stage factories.
func Stages() map[string]Factory {
	return stages
}

// StageNames lists the registered stage names in sorted order.
func StageNames() []string {
	names := make([]string, 0, len(stages))
	for name := range stages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
