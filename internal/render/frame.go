package render

import (
	"iris/internal/engine"
	"iris/internal/particles"
)

// TrailSource yields the trail copies of a particle.
type TrailSource interface {
	Trail(i int, dst []particles.TrailPoint) []particles.TrailPoint
}

// Builder collects the sprites of a frame, reusing its buffers between
// frames.
type Builder struct {
	colors  Colors
	halos   bool
	sprites []Sprite
	trail   []particles.TrailPoint
}

// NewBuilder returns a Builder resolving colors through colors. Halos are on.
func NewBuilder(colors Colors) *Builder {
	return &Builder{colors: colors, halos: true}
}

// SetHalos toggles the glow discs around each particle.
func (b *Builder) SetHalos(on bool) { b.halos = on }

// Build returns the sprites of f: every particle with its trail and halo,
// then the core glow on top. trails may be nil. The result is valid until
// the next call.
func (b *Builder) Build(f engine.Frame, trails TrailSource) []Sprite {
	b.sprites = b.sprites[:0]
	for i, s := range f.Particles {
		b.trail = b.trail[:0]
		if trails != nil {
			b.trail = trails.Trail(i, b.trail)
		}
		if !b.halos {
			s.Glow = 0
		}
		b.sprites = ParticleSprites(b.sprites, s, b.trail, b.colors)
	}
	b.sprites = CoreSprites(b.sprites, f.Scene.Core, f.Context.Center, f.Context.Time, b.colors)
	return b.sprites
}
