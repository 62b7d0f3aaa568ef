// Package cache holds the per-engine memoization and pooling used to keep
// per-frame particle math allocation free.
package cache

import (
	"math"

	"iris/internal/mathx"
)

// PoolSize is the slot count of every transient object pool.
const PoolSize = 200

// Trig holds the cosine and sine of a fixed angle.
type Trig struct {
	Cos, Sin float64
}

// Point2 is a pooled 2D point.
type Point2 struct {
	X, Y float64
}

// Point3 is a pooled 3D point.
type Point3 struct {
	X, Y, Z float64
}

// Projection is a pooled perspective projection result.
type Projection struct {
	X, Y, Scale float64
}

// Depth is a pooled set of depth-derived visual properties.
type Depth struct {
	Size, Opacity, Glow float64
}

// Cache owns every memo table and pool of one engine instance. It is not safe
// for concurrent use; the engine drives it from a single frame loop.
type Cache struct {
	trig   map[int][]Trig
	tilt   map[float64]Trig
	hsl    map[string]hslEntry
	orbits map[int][]OrbitInfo

	Points2     *Pool[Point2]
	Points3     *Pool[Point3]
	Projections *Pool[Projection]
	Depths      *Pool[Depth]
}

type hslEntry struct {
	c  mathx.HSL
	ok bool
}

// KnownColors is the palette pre-parsed by New.
var KnownColors = []string{
	mathx.White,
	"hsl(180, 100%, 70%)",
	"hsl(300, 100%, 70%)",
	"hsl(240, 100%, 80%)",
	"hsl(280, 100%, 80%)",
	"hsl(200, 100%, 85%)",
	"hsl(45, 100%, 70%)",
	"hsl(40, 100%, 80%)",
}

// New returns an empty cache with allocated pools and the known palette
// already parsed.
func New() *Cache {
	c := &Cache{
		trig:        map[int][]Trig{},
		tilt:        map[float64]Trig{},
		hsl:         map[string]hslEntry{},
		orbits:      map[int][]OrbitInfo{},
		Points2:     NewPool[Point2](PoolSize),
		Points3:     NewPool[Point3](PoolSize),
		Projections: NewPool[Projection](PoolSize),
		Depths:      NewPool[Depth](PoolSize),
	}
	c.Prewarm(KnownColors...)
	return c
}

// Trig returns cos/sin of 2π·i/count for every particle index. The slice is
// computed once per count and shared; callers must not modify it.
func (c *Cache) Trig(count int) []Trig {
	if t, ok := c.trig[count]; ok {
		return t
	}
	if count < 0 {
		count = 0
	}
	t := make([]Trig, count)
	for i := range t {
		theta := float64(i) / float64(count) * mathx.TwoPi
		t[i] = Trig{Cos: math.Cos(theta), Sin: math.Sin(theta)}
	}
	c.trig[count] = t
	return t
}

// TiltTrig returns cos/sin of a tilt given in degrees.
func (c *Cache) TiltTrig(degrees float64) Trig {
	if t, ok := c.tilt[degrees]; ok {
		return t
	}
	rad := degrees * math.Pi / 180
	t := Trig{Cos: math.Cos(rad), Sin: math.Sin(rad)}
	c.tilt[degrees] = t
	return t
}

// HSL parses a color token, remembering failures as well as successes.
func (c *Cache) HSL(token string) (mathx.HSL, bool) {
	if e, ok := c.hsl[token]; ok {
		return e.c, e.ok
	}
	parsed, ok := mathx.ParseHSL(token)
	c.hsl[token] = hslEntry{c: parsed, ok: ok}
	return parsed, ok
}

// Palette is a read-only view of the parse memo. Tokens missing from the memo
// are parsed on every call and never stored, so per-frame tokens produced by
// blending and the color policy cannot grow it.
type Palette struct {
	c *Cache
}

// Palette returns the read-only view of c.
func (c *Cache) Palette() Palette { return Palette{c: c} }

// HSL returns the memoized parse of token, or parses it without storing.
func (p Palette) HSL(token string) (mathx.HSL, bool) {
	if p.c != nil {
		if e, ok := p.c.hsl[token]; ok {
			return e.c, e.ok
		}
	}
	return mathx.ParseHSL(token)
}

// Colors returns the number of memoized tokens.
func (c *Cache) Colors() int { return len(c.hsl) }

// Prewarm parses the given tokens ahead of the first frame.
func (c *Cache) Prewarm(tokens ...string) {
	for _, t := range tokens {
		c.HSL(t)
	}
}

// Cached reports whether token has already been parsed.
func (c *Cache) Cached(token string) bool {
	_, ok := c.hsl[token]
	return ok
}

// ResetPools rewinds every pool cursor. Call it at the start of a frame.
func (c *Cache) ResetPools() {
	c.Points2.Reset()
	c.Points3.Reset()
	c.Projections.Reset()
	c.Depths.Reset()
}
