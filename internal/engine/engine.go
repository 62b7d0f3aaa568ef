// Package engine turns the continuous stage progress, the pointer and clicks
// into the visual state of every particle and of the central glow, once per
// frame.
package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"iris/internal/blend"
	"iris/internal/cache"
	"iris/internal/core"
	"iris/internal/interact"
	"iris/internal/mathx"
	"iris/internal/particles"
	"iris/internal/stages"
)

// Population sizes with a matching orbit table and grid layout.
const (
	DesktopCount = 80
	MobileCount  = 40
)

var (
	// ErrUnsupportedCount is returned for particle counts without a layout.
	ErrUnsupportedCount = errors.New("unsupported particle count")
	// ErrUnknownStage is returned for stage names missing from the registry.
	ErrUnknownStage = errors.New("unknown stage")
	// ErrNoStages is returned when the stage sequence is empty.
	ErrNoStages = errors.New("no stages configured")
)

// Interaction gating by continuous progress.
const (
	ringFadeEnd    = 0.5 // hover and click bounce are gone by here
	bloomFadeStart = 0.3 // magnetic and ripple wave start here
	bloomFadeFull  = 1.0 // and reach full strength here
	rippleGlowGain = 0.5
	rippleGlowBase = 5 // used when the stage emits no glow
)

// Config configures an Engine.
type Config struct {
	Mobile     bool
	Count      int // 0 selects the population for the layout
	BaseRadius float64
	Stages     []string
	Trails     bool

	ColorPeriod float64 // seconds per palette cycle
	IdentityMix float64 // weight of a stage's own color over the cycle color; 0 lets the policy alone decide

	Interact interact.Config
	Bounce   particles.BounceConfig
	Trail    particles.TrailConfig
}

// DefaultConfig returns the desktop configuration with the default sequence.
func DefaultConfig() Config {
	return Config{
		BaseRadius:  stages.RingBaseRadius,
		Stages:      append([]string(nil), stages.DefaultSequence...),
		Trails:      true,
		ColorPeriod: 8,
		IdentityMix: 0,
		Interact:    interact.DefaultConfig(),
		Bounce:      particles.DefaultBounceConfig(),
		Trail:       particles.DefaultTrailConfig(),
	}
}

// ExpectedCount returns the population size of a layout.
func ExpectedCount(mobile bool) int {
	if mobile {
		return MobileCount
	}
	return DesktopCount
}

// ParseStages splits a comma separated stage list.
func ParseStages(list string) []string {
	var names []string
	for _, part := range strings.Split(list, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// input is the last-write-wins holder fed by pointer and scroll listeners.
type input struct {
	pointer  core.Point
	center   core.Point
	progress float64
}

// Frame is the output of one Engine.Frame call. Particles is reused by the
// next call.
type Frame struct {
	Context       core.FrameContext
	Particles     []core.ParticleState
	Scene         core.SceneState
	CoreIntensity float64
}

// Engine owns the caches, particle store and ripple wave of one animated
// scene. It is driven from a single frame loop and is not safe for concurrent
// use.
type Engine struct {
	cfg    Config
	cache  *cache.Cache
	stages []core.Stage
	store  *particles.Store
	wave   *interact.RippleWave
	in     input
	states []core.ParticleState
}

// New validates cfg and builds the stage sequence from the registry.
func New(cfg Config) (*Engine, error) {
	want := ExpectedCount(cfg.Mobile)
	if cfg.Count == 0 {
		cfg.Count = want
	}
	if cfg.Count != want {
		return nil, fmt.Errorf("engine: %w: %d (layout expects %d)", ErrUnsupportedCount, cfg.Count, want)
	}
	if cfg.BaseRadius <= 0 {
		cfg.BaseRadius = stages.RingBaseRadius
	}
	if len(cfg.Stages) == 0 {
		return nil, fmt.Errorf("engine: %w", ErrNoStages)
	}
	if cfg.ColorPeriod <= 0 {
		cfg.ColorPeriod = 8
	}
	if cfg.Interact.Click.Rise > 0 {
		cfg.Bounce.Rise = cfg.Interact.Click.Rise
	}
	if cfg.Interact.Click.Settle > 0 {
		cfg.Bounce.Settle = cfg.Interact.Click.Settle
	}

	c := cache.New()
	deps := core.Deps{Cache: c, Count: cfg.Count, Mobile: cfg.Mobile, BaseRadius: cfg.BaseRadius}
	registry := core.Stages()
	seq := make([]core.Stage, 0, len(cfg.Stages))
	for _, name := range cfg.Stages {
		factory, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("engine: %w: %q (available: %s)", ErrUnknownStage, name, strings.Join(core.StageNames(), ", "))
		}
		seq = append(seq, factory(deps))
	}

	e := &Engine{
		cfg:    cfg,
		cache:  c,
		stages: seq,
		store:  particles.NewStore(particles.Generate(cfg.Count, cfg.BaseRadius), cfg.Bounce),
		wave:   interact.NewRippleWave(cfg.Interact.Wave),
		states: make([]core.ParticleState, cfg.Count),
	}
	e.in.pointer = core.FarAway
	return e, nil
}

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// Count returns the particle population size.
func (e *Engine) Count() int { return e.store.Len() }

// Stages returns the stage sequence.
func (e *Engine) Stages() []core.Stage { return e.stages }

// Cache exposes the engine's color and geometry cache.
func (e *Engine) Cache() *cache.Cache { return e.cache }

// Wave exposes the ripple wave for inspection.
func (e *Engine) Wave() *interact.RippleWave { return e.wave }

// MaxProgress is the progress of the last stage.
func (e *Engine) MaxProgress() float64 { return float64(len(e.stages) - 1) }

// SetPointer records the pointer position in canvas space.
func (e *Engine) SetPointer(p core.Point) { e.in.pointer = p }

// ClearPointer marks the pointer as absent.
func (e *Engine) ClearPointer() { e.in.pointer = core.FarAway }

// Pointer returns the last pointer position.
func (e *Engine) Pointer() core.Point { return e.in.pointer }

// SetCenter records the canvas center.
func (e *Engine) SetCenter(p core.Point) { e.in.center = p }

// Center returns the canvas center.
func (e *Engine) Center() core.Point { return e.in.center }

// SetProgress records the continuous stage progress, clamped to the
// sequence.
func (e *Engine) SetProgress(v float64) {
	if math.IsNaN(v) {
		return
	}
	e.in.progress = mathx.Clamp(v, 0, e.MaxProgress())
}

// Progress returns the continuous stage progress.
func (e *Engine) Progress() float64 { return e.in.progress }

// Context snapshots the input holder into a frame context at now.
func (e *Engine) Context(now float64) core.FrameContext {
	p := e.in.progress
	return core.FrameContext{
		Time:           now,
		Mouse:          e.in.pointer,
		Center:         e.in.center,
		ScrollProgress: p,
		StageProgress:  p - math.Floor(p),
	}
}

// StageAt returns the stage pair and blend factor for progress.
func (e *Engine) StageAt(progress float64) (from, to core.Stage, t float64) {
	n := len(e.stages)
	idx := int(math.Floor(progress))
	if idx < 0 {
		idx = 0
	}
	from = e.stages[min(idx, n-1)]
	to = e.stages[min(idx+1, n-1)]
	if idx >= n-1 {
		return from, to, 0
	}
	return from, to, progress - float64(idx)
}

// RingRadius is the live radius radial interactions are measured against.
func (e *Engine) RingRadius(t float64) float64 {
	if rp, ok := e.stages[0].(core.RadiusProvider); ok {
		return rp.Radius(t)
	}
	return stages.BreathRadius(t)
}

// Click starts the ripple wave at point and bounces every ring particle
// within reach of it.
func (e *Engine) Click(point core.Point, now float64) {
	e.store.Advance(now)
	e.wave.Trigger(point, now)
	radius := e.RingRadius(now)
	for i, p := range e.store.Particles() {
		strength := interact.ClickStrength(e.cfg.Interact.Click, p, point, e.in.center, radius+e.store.Offset(i))
		if strength > 0 {
			e.store.Trigger(i, strength, now)
		}
	}
}

// ClickOffset returns the current bounce offset of particle i.
func (e *Engine) ClickOffset(i int) float64 { return e.store.Offset(i) }

// Frame advances the bounce and wave state to now and computes every
// particle and the scene.
func (e *Engine) Frame(now float64) Frame {
	e.cache.ResetPools()
	e.store.Advance(now)
	e.wave.Step(now)
	ctx := e.Context(now)
	for i := range e.states {
		s := e.ParticleState(i, ctx)
		e.states[i] = s
		e.store.Record(i, s.X, s.Y)
	}
	intensity := interact.CoreIntensity(e.cfg.Interact.Core, ctx.Mouse, ctx.Center)
	return Frame{
		Context:       ctx,
		Particles:     e.states,
		Scene:         e.SceneState(ctx),
		CoreIntensity: intensity,
	}
}

// Blended returns particle i in the stage pair at ctx before interactions
// and color. At integer progress it is exactly the stage's own output.
func (e *Engine) Blended(i int, ctx core.FrameContext) core.ParticleState {
	p := e.store.Particle(i)
	from, to, t := e.StageAt(ctx.ScrollProgress)
	a := from.Particle(p, ctx)
	if t == 0 {
		return a
	}
	return blend.State(a, to.Particle(p, ctx), t, e.cache)
}

// ParticleState computes the final state of particle i: the blended stage
// layout, the gated interactions, and the color policy.
func (e *Engine) ParticleState(i int, ctx core.FrameContext) core.ParticleState {
	if i < 0 || i >= e.store.Len() {
		return core.ParticleState{X: core.FarAway.X, Y: core.FarAway.Y}
	}
	p := e.store.Particle(i)
	s := e.Blended(i, ctx)
	progress := ctx.ScrollProgress
	icfg := e.cfg.Interact

	if ring := RingStrength(progress); ring > 0 {
		radius := e.RingRadius(ctx.Time)
		click := e.store.Offset(i) * ring
		hover := interact.HoverOffset(icfg.Hover, p, ctx.Time, ctx.Mouse, ctx.Center, radius+click) * ring
		total := click + hover
		s.X += math.Cos(p.Theta) * total
		s.Y += math.Sin(p.Theta) * total
	}

	if bloom := BloomStrength(progress); bloom > 0 {
		dx, dy := interact.Magnetic(icfg.Magnetic, core.Point{X: s.X, Y: s.Y}, ctx.Mouse)
		s.X += dx * bloom
		s.Y += dy * bloom

		push := e.wave.Offset(core.Point{X: s.X, Y: s.Y}, ctx.Time)
		s.X += push.DX * bloom
		s.Y += push.DY * bloom
		if push.Intensity > 0 {
			glow := s.Glow
			if glow == 0 {
				glow = rippleGlowBase
			}
			s.Glow = glow * (1 + push.Intensity*rippleGlowGain)
		}
	}

	s.Color = e.color(p, s.Color, ctx)
	return s
}

// SceneState blends the scene of the stage pair at ctx and lets the pointer
// excite the core.
func (e *Engine) SceneState(ctx core.FrameContext) core.SceneState {
	from, to, t := e.StageAt(ctx.ScrollProgress)
	scene := from.Scene(ctx)
	if t > 0 {
		scene = blend.Scene(scene, to.Scene(ctx), t, e.cache)
	}
	intensity := interact.CoreIntensity(e.cfg.Interact.Core, ctx.Mouse, ctx.Center)
	scene.Core = interact.BoostCore(e.cfg.Interact.Core, scene.Core, intensity)
	return scene
}

// State returns the last computed state of particle i.
func (e *Engine) State(i int) core.ParticleState {
	if i < 0 || i >= len(e.states) {
		return core.ParticleState{}
	}
	return e.states[i]
}

// Trail appends the trail copies of particle i from its position history.
func (e *Engine) Trail(i int, dst []particles.TrailPoint) []particles.TrailPoint {
	if !e.cfg.Trails || i < 0 || i >= len(e.states) {
		return dst
	}
	return e.store.Trail(i, e.states[i], e.cfg.Trail, dst)
}

// ResetHistory forgets trail history, for jumps that should not smear.
func (e *Engine) ResetHistory() { e.store.ClearHistory() }

// Reset returns every particle to rest, stops the ripple wave and forgets
// trail history. Call it when the frame clock is rewound.
func (e *Engine) Reset() {
	e.store.Reset()
	e.wave.Reset()
	e.ResetHistory()
}

// RingStrength is the weight of hover and click bounce at progress.
func RingStrength(progress float64) float64 {
	return mathx.Clamp01(1 - progress/ringFadeEnd)
}

// BloomStrength is the weight of magnetic repulsion and the ripple wave at
// progress.
func BloomStrength(progress float64) float64 {
	return mathx.Clamp01((progress - bloomFadeStart) / (bloomFadeFull - bloomFadeStart))
}
