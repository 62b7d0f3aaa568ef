package engine

import (
	"iris/internal/core"
	"iris/internal/mathx"
)

// Progress marks of the color policy. Before blueFrom the three-color
// palette cycles, between blueFrom and whiteFrom it cross-fades to the blue
// palette, and from whiteFrom the color drains back to white, which is
// reached one stage later.
const (
	blueFrom  = 1.0
	whiteFrom = 2.0
)

// color applies the progress-dependent palette policy. Each particle's
// phase in the palette follows its angle so neighbours share similar hues.
// With a positive IdentityMix a stage's own color is mixed in proportionally
// to how saturated the cycle color is, so it vanishes whenever the policy
// asks for white.
func (e *Engine) color(p core.Particle, identity string, ctx core.FrameContext) string {
	progress := ctx.ScrollProgress
	toWhite := mathx.Clamp01(progress - whiteFrom)
	if toWhite >= 1 {
		return mathx.White
	}

	offset := p.Theta / mathx.TwoPi
	period := e.cfg.ColorPeriod
	fade := mathx.EaseInOutCubic(mathx.Clamp01(progress))

	var c mathx.HSL
	switch {
	case toWhite > 0:
		fade *= 1 - mathx.EaseInOutCubic(toWhite)
		c = mathx.Cycle(ctx.Time, offset, fade, period, mathx.CycleBlue)
	case progress < blueFrom:
		c = mathx.Cycle(ctx.Time, offset, fade, period, mathx.CycleThree)
	case progress < whiteFrom:
		three := mathx.Cycle(ctx.Time, offset, fade, period, mathx.CycleThree)
		blue := mathx.Cycle(ctx.Time, offset, fade, period, mathx.CycleBlue)
		c = mathx.LerpHSL(three, blue, mathx.EaseInOutCubic(progress-blueFrom))
	default:
		c = mathx.Cycle(ctx.Time, offset, fade, period, mathx.CycleBlue)
	}

	if identity != "" && !mathx.IsWhite(identity) && e.cfg.IdentityMix > 0 {
		if own, ok := e.cache.Palette().HSL(identity); ok {
			c = mathx.LerpHSL(c, mathx.FromWhite(own, fade), e.cfg.IdentityMix)
		}
	}
	return c.String()
}
