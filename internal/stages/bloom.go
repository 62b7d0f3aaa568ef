package stages

import (
	"math"

	"iris/internal/cache"
	"iris/internal/core"
	"iris/internal/mathx"
)

// Band colors of the bloom stage.
const (
	ColorCyan       = "hsl(180, 100%, 70%)"
	ColorMagenta    = "hsl(300, 100%, 70%)"
	ColorBlueViolet = "hsl(240, 100%, 80%)"
)

type bloomBand struct {
	radius    float64
	speed     float64 // revolutions per second
	direction float64
	color     string
}

var bloomBands = [3]bloomBand{
	{radius: 100, speed: 0.15, direction: 1, color: ColorCyan},
	{radius: 160, speed: 0.10, direction: -1, color: ColorMagenta},
	{radius: 220, speed: 0.08, direction: 1, color: ColorBlueViolet},
}

const (
	bloomInnerShare     = 0.25
	bloomMiddleShare    = 0.35
	bloomBreath         = 0.05
	bloomBreathFreq     = 0.125
	bloomParticleSize   = 3
	bloomSizePulse      = 0.3
	bloomSizePulseFreq  = 0.5
	bloomSizeWaves      = 3 // integer so the pulse is seamless at theta = 0
	bloomGlowBase       = 5
	bloomGlowAmplitude  = 3
	bloomTrail          = 0.8
	bloomCoreColor      = "hsl(280, 100%, 80%)"
	bloomRayColor       = "hsl(200, 100%, 85%)"
	bloomCoreRotation   = 0.03
	bloomFallbackRadius = 180
)

// Bloom splits the population into three concentric counter-rotating bands.
type Bloom struct {
	inner  int
	middle int
	points *cache.Pool[cache.Point2]
}

// NewBloom builds the bloom stage. Band sizes are fixed fractions of the
// particle count.
func NewBloom(d core.Deps) *Bloom {
	return &Bloom{
		inner:  int(math.Floor(float64(d.Count) * bloomInnerShare)),
		middle: int(math.Floor(float64(d.Count) * bloomMiddleShare)),
		points: cacheOf(d).Points2,
	}
}

// Name identifies the stage.
func (b *Bloom) Name() string { return NameBloom }

// Band returns the band index of particle id: 0 inner, 1 middle, 2 outer.
func (b *Bloom) Band(id int) int {
	switch {
	case id < b.inner:
		return 0
	case id < b.inner+b.middle:
		return 1
	default:
		return 2
	}
}

// BandRadius returns the breathing radius of a band at time t. Unknown bands
// report the default ring radius.
func BandRadius(band int, t float64) float64 {
	if band < 0 || band >= len(bloomBands) {
		return bloomFallbackRadius
	}
	return bloomBands[band].radius * breath(bloomBreath, bloomBreathFreq, t)
}

// BandColor returns the identity color of a band, white when unknown.
func BandColor(band int) string {
	if band < 0 || band >= len(bloomBands) {
		return mathx.White
	}
	return bloomBands[band].color
}

// Particle places p on its band's rotating ring.
func (b *Bloom) Particle(p core.Particle, ctx core.FrameContext) core.ParticleState {
	band := b.Band(p.ID)
	layer := bloomBands[band]
	t := ctx.Time

	theta := p.Theta + t*layer.speed*layer.direction*mathx.TwoPi
	pos, _ := b.points.Acquire()
	pos.X, pos.Y = mathx.PolarToCartesian(ctx.Center.X, ctx.Center.Y, BandRadius(band, t), theta)

	phase := bloomSizeWaves*p.Theta + float64(band)*mathx.TwoPi/3
	size := bloomParticleSize * (1 + bloomSizePulse*math.Sin(t*bloomSizePulseFreq*mathx.TwoPi+phase))

	return core.ParticleState{
		X:           pos.X,
		Y:           pos.Y,
		R:           size,
		Opacity:     1,
		Glow:        bloomGlowBase + bloomGlowAmplitude*math.Sin(t*0.5+float64(band)),
		Color:       layer.color,
		TrailLength: bloomTrail,
	}
}

// Scene shows a slow violet core with cyan rays.
func (b *Bloom) Scene(ctx core.FrameContext) core.SceneState {
	c := core.DefaultCore
	c.Visible = true
	c.Opacity = 0.8
	c.Size = 80
	c.RotationSpeed = bloomCoreRotation
	c.Rotation = ctx.Time * bloomCoreRotation * mathx.TwoPi
	c.CoreRadius = 12
	c.CoreColor = bloomCoreColor
	c.CoreGlow = 12
	c.RayCount = 16
	c.RayLength = 40
	c.RayWidth = 1.5
	c.RayColor = bloomRayColor
	c.PulseSpeed = 0.3
	c.PulseAmplitude = 0.12
	return core.SceneState{Core: c}
}
