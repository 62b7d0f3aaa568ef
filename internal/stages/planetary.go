package stages

import (
	"math"

	"iris/internal/cache"
	"iris/internal/core"
	"iris/internal/mathx"
)

// DesktopOrbits distributes 80 particles over ten tilted orbits. Inner orbits
// are faster and directions alternate.
var DesktopOrbits = []cache.Orbit{
	{Radius: 55, Count: 5, Speed: 0.15, Direction: 1, Tilt: 25},
	{Radius: 75, Count: 6, Speed: 0.12, Direction: -1, Tilt: 8},
	{Radius: 95, Count: 8, Speed: 0.10, Direction: 1, Tilt: 18},
	{Radius: 120, Count: 10, Speed: 0.08, Direction: -1, Tilt: 12},
	{Radius: 145, Count: 10, Speed: 0.07, Direction: 1, Tilt: 22},
	{Radius: 170, Count: 12, Speed: 0.06, Direction: -1, Tilt: 5},
	{Radius: 200, Count: 10, Speed: 0.045, Direction: 1, Tilt: 30},
	{Radius: 230, Count: 9, Speed: 0.035, Direction: -1, Tilt: 10},
	{Radius: 260, Count: 6, Speed: 0.025, Direction: 1, Tilt: 20},
	{Radius: 290, Count: 4, Speed: 0.018, Direction: -1, Tilt: 35},
}

// MobileOrbits is the 40 particle variant of DesktopOrbits.
var MobileOrbits = []cache.Orbit{
	{Radius: 55, Count: 2, Speed: 0.15, Direction: 1, Tilt: 25},
	{Radius: 75, Count: 3, Speed: 0.12, Direction: -1, Tilt: 8},
	{Radius: 95, Count: 4, Speed: 0.10, Direction: 1, Tilt: 18},
	{Radius: 120, Count: 5, Speed: 0.08, Direction: -1, Tilt: 12},
	{Radius: 145, Count: 5, Speed: 0.07, Direction: 1, Tilt: 22},
	{Radius: 170, Count: 6, Speed: 0.06, Direction: -1, Tilt: 5},
	{Radius: 200, Count: 5, Speed: 0.045, Direction: 1, Tilt: 30},
	{Radius: 230, Count: 4, Speed: 0.035, Direction: -1, Tilt: 10},
	{Radius: 260, Count: 3, Speed: 0.025, Direction: 1, Tilt: 20},
	{Radius: 290, Count: 3, Speed: 0.018, Direction: -1, Tilt: 35},
}

// OrbitTable returns the orbit table matching the layout flag.
func OrbitTable(mobile bool) []cache.Orbit {
	if mobile {
		return MobileOrbits
	}
	return DesktopOrbits
}

// PlanetColors is the color rotation assigned by orbit index.
var PlanetColors = [6]string{
	"hsl(200, 100%, 70%)",
	"hsl(220, 100%, 75%)",
	"hsl(190, 90%, 80%)",
	"hsl(260, 90%, 75%)",
	"hsl(170, 90%, 70%)",
	"hsl(45, 100%, 75%)",
}

const (
	focalLength = 500

	planetMinSize    = 0.8
	planetMaxSize    = 12
	planetMinOpacity = 0.08
	planetMaxOpacity = 1
	planetMinGlow    = 1
	planetMaxGlow    = 25
	planetTrail      = 0.9

	sunCoreColor = "hsl(45, 100%, 70%)"
	sunRayColor  = "hsl(40, 100%, 80%)"
	sunRotation  = 0.015
)

// Planetary moves particles along tilted 3D orbits and projects them with a
// fixed-camera perspective.
type Planetary struct {
	cache  *cache.Cache
	orbits []cache.OrbitInfo
	table  []cache.Orbit
}

// NewPlanetary builds the planetary stage. Orbit placement comes from the
// engine's cache and is shared across frames.
func NewPlanetary(d core.Deps) *Planetary {
	c := cacheOf(d)
	table := OrbitTable(d.Mobile)
	c.Prewarm(PlanetColors[:]...)
	return &Planetary{cache: c, table: table, orbits: c.Orbits(d.Count, table)}
}

// Name identifies the stage.
func (s *Planetary) Name() string { return NamePlanetary }

// Orbit returns the placement of particle id. Ids outside the cached range
// fall back to the start of the last orbit.
func (s *Planetary) Orbit(id int) cache.OrbitInfo {
	if id >= 0 && id < len(s.orbits) {
		return s.orbits[id]
	}
	if len(s.table) == 0 {
		return cache.OrbitInfo{Direction: 1, TiltCos: 1}
	}
	last := len(s.table) - 1
	o := s.table[last]
	tilt := s.cache.TiltTrig(o.Tilt)
	return cache.OrbitInfo{
		OrbitIndex:   last,
		Radius:       o.Radius,
		Speed:        o.Speed,
		Direction:    o.Direction,
		Tilt:         o.Tilt,
		TiltCos:      tilt.Cos,
		TiltSin:      tilt.Sin,
		TotalInOrbit: o.Count,
	}
}

// DepthProperties maps a depth along the view axis to size, opacity and glow.
// z runs from -maxZ (nearest) to +maxZ (farthest); nearer is never smaller or
// dimmer.
func DepthProperties(z, maxZ float64) cache.Depth {
	if maxZ <= 0 {
		maxZ = 1
	}
	near := mathx.Clamp01((-z + maxZ) / (2 * maxZ))
	d := math.Sqrt(mathx.Smoothstep(near))
	return cache.Depth{
		Size:    mathx.Lerp(planetMinSize, planetMaxSize, d),
		Opacity: mathx.Lerp(planetMinOpacity, planetMaxOpacity, d),
		Glow:    mathx.Lerp(planetMinGlow, planetMaxGlow, d),
	}
}

// Particle computes the orbit position in the XZ plane, tilts it about the
// X axis and projects it. Pooled intermediates are copied out before return.
func (s *Planetary) Particle(p core.Particle, ctx core.FrameContext) core.ParticleState {
	o := s.Orbit(p.ID)
	angle := o.BaseAngle + ctx.Time*o.Speed*o.Direction*mathx.TwoPi

	flat, _ := s.cache.Points3.Acquire()
	flat.X = math.Cos(angle) * o.Radius
	flat.Y = 0
	flat.Z = math.Sin(angle) * o.Radius

	tilted, _ := s.cache.Points3.Acquire()
	tilted.X = flat.X
	tilted.Y = flat.Y*o.TiltCos - flat.Z*o.TiltSin
	tilted.Z = flat.Y*o.TiltSin + flat.Z*o.TiltCos

	proj, _ := s.cache.Projections.Acquire()
	proj.Scale = focalLength / math.Max(tilted.Z+focalLength, 1)
	proj.X = tilted.X * proj.Scale
	proj.Y = tilted.Y * proj.Scale

	depth, _ := s.cache.Depths.Acquire()
	*depth = DepthProperties(tilted.Z, o.Radius)

	return core.ParticleState{
		X:           ctx.Center.X + proj.X,
		Y:           ctx.Center.Y + proj.Y,
		R:           depth.Size,
		Opacity:     depth.Opacity,
		Glow:        depth.Glow,
		Color:       PlanetColors[o.OrbitIndex%len(PlanetColors)],
		TrailLength: planetTrail,
	}
}

// Scene shows a large warm sun.
func (s *Planetary) Scene(ctx core.FrameContext) core.SceneState {
	c := core.DefaultCore
	c.Visible = true
	c.Opacity = 1
	c.Size = 100
	c.RotationSpeed = sunRotation
	c.Rotation = ctx.Time * sunRotation * mathx.TwoPi
	c.CoreRadius = 18
	c.CoreColor = sunCoreColor
	c.CoreGlow = 15
	c.RayCount = 32
	c.RayLength = 45
	c.RayWidth = 1.2
	c.RayColor = sunRayColor
	c.PulseSpeed = 0.1
	c.PulseAmplitude = 0.06
	return core.SceneState{Core: c}
}
