package render

import (
	"math"

	"iris/internal/core"
	"iris/internal/mathx"
)

// Tier orders the three ray layers from faintest to brightest.
type Tier uint8

const (
	Tertiary Tier = iota
	Secondary
	Primary
)

// Ray is one core glow ray in canvas coordinates.
type Ray struct {
	Tier           Tier
	X1, Y1, X2, Y2 float64
	Width          float64
	Opacity        float64
}

// CorePulse returns the pulse factor applied to the core radius and ray
// length at time.
func CorePulse(c core.CoreGlowState, time float64) float64 {
	return 1 + math.Sin(time*c.PulseSpeed*mathx.TwoPi)*c.PulseAmplitude
}

type tierLayout struct {
	tier       Tier
	perRay     int     // rays per RayCount
	shift      float64 // angular shift in ray slots
	gap        float64 // distance of the ray start from the core edge
	reach      float64 // share of the ray length
	width      float64
	opacity    float64
	flicker    func(time float64, i int) float64
	flickWidth bool
}

var tiers = [...]tierLayout{
	{
		tier: Tertiary, perRay: 2, shift: 0.25, gap: 2, reach: 0.35, width: 0.25, opacity: 0.4,
		flicker: func(t float64, i int) float64 { return 0.5 + math.Sin(t*0.2+float64(i)*0.2)*0.5 },
	},
	{
		tier: Secondary, perRay: 1, shift: 0.5, gap: 5, reach: 0.6, width: 0.5, opacity: 0.6, flickWidth: true,
		flicker: func(t float64, i int) float64 { return 0.7 + math.Sin(t*0.25+float64(i)*0.4)*0.3 },
	},
	{
		tier: Primary, perRay: 1, gap: 3, reach: 1, width: 1, opacity: 1, flickWidth: true,
		flicker: func(t float64, i int) float64 { return 0.85 + math.Sin(t*0.3+float64(i)*0.3)*0.15 },
	},
}

// Rays appends the ray layout of c around center at time, tertiary rays
// first so brighter tiers draw on top. The whole layout turns with
// c.Rotation. A hidden core has no rays.
func Rays(dst []Ray, c core.CoreGlowState, center core.Point, time float64) []Ray {
	if !c.Visible || c.Opacity <= 0 || c.RayCount <= 0 {
		return dst
	}
	pulse := CorePulse(c, time)
	coreR := c.CoreRadius * pulse
	length := c.RayLength * pulse
	for _, l := range tiers {
		n := c.RayCount * l.perRay
		for i := 0; i < n; i++ {
			angle := (float64(i)+l.shift)/float64(n)*mathx.TwoPi + c.Rotation
			cos, sin := math.Cos(angle), math.Sin(angle)
			start := coreR + l.gap
			end := coreR + length*l.reach
			f := l.flicker(time, i)
			width := c.RayWidth * l.width
			if l.flickWidth {
				width *= f
			}
			dst = append(dst, Ray{
				Tier:    l.tier,
				X1:      center.X + cos*start,
				Y1:      center.Y + sin*start,
				X2:      center.X + cos*end,
				Y2:      center.Y + sin*end,
				Width:   width,
				Opacity: f * l.opacity,
			})
		}
	}
	return dst
}

// CoreSprites appends the full core glow: outer halo, rays, middle halo,
// white core disc and highlight. All layers scale with c.Opacity.
func CoreSprites(dst []Sprite, c core.CoreGlowState, center core.Point, time float64, colors Colors) []Sprite {
	if !c.Visible || c.Opacity <= 0 {
		return dst
	}
	r := c.CoreRadius * CorePulse(c, time)
	glow := 1 + c.CoreGlow/100
	dst = append(dst, Sprite{Kind: Circle, X: center.X, Y: center.Y, Size: r * 4, Color: RGBA(c.CoreColor, c.Opacity*0.5*0.3, colors)})

	var rays [128]Ray
	for _, ray := range Rays(rays[:0], c, center, time) {
		dst = append(dst, Sprite{
			Kind:  Line,
			X:     ray.X1,
			Y:     ray.Y1,
			X2:    ray.X2,
			Y2:    ray.Y2,
			Size:  ray.Width,
			Color: RGBA(c.RayColor, c.Opacity*ray.Opacity, colors),
		})
	}

	return append(dst,
		Sprite{Kind: Circle, X: center.X, Y: center.Y, Size: r * 2 * glow, Color: RGBA(c.CoreColor, c.Opacity*0.6*0.8, colors)},
		Sprite{Kind: Circle, X: center.X, Y: center.Y, Size: r, Color: RGBA(mathx.White, c.Opacity*0.85, colors)},
		Sprite{Kind: Circle, X: center.X, Y: center.Y, Size: r * 0.5, Color: RGBA(mathx.White, c.Opacity*0.95, colors)},
	)
}
