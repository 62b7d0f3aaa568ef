// Package blend interpolates particle and scene states between two stages.
package blend

import (
	"math"

	"iris/internal/core"
	"iris/internal/mathx"
)

// Colors resolves color tokens to HSL. *cache.Cache implements it; a nil
// Colors parses every token directly.
type Colors interface {
	HSL(token string) (mathx.HSL, bool)
}

func parse(colors Colors, token string) (mathx.HSL, bool) {
	if colors == nil {
		return mathx.ParseHSL(token)
	}
	return colors.HSL(token)
}

// State blends two particle states. progress is eased with a cubic in-out
// curve and every numeric field is interpolated on its own. At progress <= 0
// or >= 1 the matching endpoint is returned unchanged.
func State(from, to core.ParticleState, progress float64, colors Colors) core.ParticleState {
	if progress <= 0 {
		return from
	}
	if progress >= 1 {
		return to
	}
	t := mathx.EaseInOutCubic(progress)
	return core.ParticleState{
		X:           mathx.Lerp(from.X, to.X, t),
		Y:           mathx.Lerp(from.Y, to.Y, t),
		R:           mathx.Lerp(from.R, to.R, t),
		Opacity:     mathx.Lerp(from.Opacity, to.Opacity, t),
		Glow:        mathx.Lerp(from.Glow, to.Glow, t),
		Color:       Color(from.Color, to.Color, t, colors),
		TrailLength: mathx.Lerp(from.TrailLength, to.TrailLength, t),
		RectSize:    mathx.Lerp(from.RectSize, to.RectSize, t),
		RectOpacity: mathx.Lerp(from.RectOpacity, to.RectOpacity, t),
	}
}

// Color blends two color tokens at t without further easing.
//
// An empty side yields the other side unchanged. White borrows the hue of the
// other side so fading toward it never sweeps through unrelated hues. Hue
// follows the shorter arc. Tokens that do not parse switch over at t = 0.5.
func Color(a, b string, t float64, colors Colors) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	case a == b, t <= 0:
		return a
	case t >= 1:
		return b
	}
	ca, okA := parse(colors, a)
	cb, okB := parse(colors, b)
	if !okA || !okB {
		if t < 0.5 {
			return a
		}
		return b
	}
	whiteA, whiteB := mathx.IsWhite(a), mathx.IsWhite(b)
	if whiteA && !whiteB {
		ca.H = cb.H
	}
	if whiteB && !whiteA {
		cb.H = ca.H
	}
	return mathx.LerpHSL(ca, cb, t).String()
}

// Scene blends two scene states with the same easing as State. The core is
// visible when either side is; the ray count is rounded.
func Scene(from, to core.SceneState, progress float64, colors Colors) core.SceneState {
	if progress <= 0 {
		return from
	}
	if progress >= 1 {
		return to
	}
	t := mathx.EaseInOutCubic(progress)
	a, b := from.Core, to.Core
	return core.SceneState{Core: core.CoreGlowState{
		Visible:        a.Visible || b.Visible,
		Opacity:        mathx.Lerp(a.Opacity, b.Opacity, t),
		Size:           mathx.Lerp(a.Size, b.Size, t),
		Rotation:       mathx.Lerp(a.Rotation, b.Rotation, t),
		RotationSpeed:  mathx.Lerp(a.RotationSpeed, b.RotationSpeed, t),
		CoreRadius:     mathx.Lerp(a.CoreRadius, b.CoreRadius, t),
		CoreColor:      Color(a.CoreColor, b.CoreColor, t, colors),
		CoreGlow:       mathx.Lerp(a.CoreGlow, b.CoreGlow, t),
		RayCount:       int(math.Round(mathx.Lerp(float64(a.RayCount), float64(b.RayCount), t))),
		RayLength:      mathx.Lerp(a.RayLength, b.RayLength, t),
		RayWidth:       mathx.Lerp(a.RayWidth, b.RayWidth, t),
		RayColor:       Color(a.RayColor, b.RayColor, t, colors),
		PulseSpeed:     mathx.Lerp(a.PulseSpeed, b.PulseSpeed, t),
		PulseAmplitude: mathx.Lerp(a.PulseAmplitude, b.PulseAmplitude, t),
	}}
}
