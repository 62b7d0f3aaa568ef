// Package render turns engine frames into flat lists of sprites. The sprite
// builders are headless; the ebiten painter only rasterises them.
package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"iris/internal/mathx"
)

// Colors resolves color tokens to HSL. *cache.Cache and cache.Palette
// implement it; a nil Colors parses every token directly.
type Colors interface {
	HSL(token string) (mathx.HSL, bool)
}

var white = colorful.Color{R: 1, G: 1, B: 1}

// toColorful resolves token, falling back to white when it is missing or
// cannot be parsed.
func toColorful(token string, colors Colors) colorful.Color {
	if token == "" {
		return white
	}
	var (
		c  mathx.HSL
		ok bool
	)
	if colors == nil {
		c, ok = mathx.ParseHSL(token)
	} else {
		c, ok = colors.HSL(token)
	}
	if !ok {
		return white
	}
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped()
}

// premultiply converts c at alpha into the alpha-premultiplied form expected
// by image/color.
func premultiply(c colorful.Color, alpha float64) color.RGBA {
	a := mathx.Clamp01(alpha)
	r, g, b := c.RGB255()
	return color.RGBA{
		R: uint8(float64(r)*a + 0.5),
		G: uint8(float64(g)*a + 0.5),
		B: uint8(float64(b)*a + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// RGBA converts a color token at the given opacity.
func RGBA(token string, alpha float64, colors Colors) color.RGBA {
	return premultiply(toColorful(token, colors), alpha)
}

// Lighten returns token mixed toward white by t at the given opacity. Glow
// halos use it so they read as light rather than paint.
func Lighten(token string, t, alpha float64, colors Colors) color.RGBA {
	c := toColorful(token, colors).BlendRgb(white, mathx.Clamp01(t)).Clamped()
	return premultiply(c, alpha)
}
