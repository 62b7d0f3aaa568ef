package render

import (
	"image/color"

	"iris/internal/core"
	"iris/internal/particles"
)

// Kind selects the shape a sprite is drawn with.
type Kind uint8

const (
	// Circle is a filled disc of radius Size centred on X, Y.
	Circle Kind = iota
	// Rect is a filled square of side Size centred on X, Y.
	Rect
	// Line runs from X, Y to X2, Y2 with stroke width Size.
	Line
)

// Sprite is one drawing instruction.
type Sprite struct {
	Kind   Kind
	X, Y   float64
	X2, Y2 float64
	Size   float64
	Color  color.RGBA
}

// Halo tuning: the glow value of a particle becomes two soft discs.
const (
	haloOuterScale = 0.9
	haloInnerScale = 0.45
	haloOuterAlpha = 0.12
	haloInnerAlpha = 0.25
	haloLighten    = 0.35
)

// TrailSprites appends one fading disc per trail copy.
func TrailSprites(dst []Sprite, s core.ParticleState, trail []particles.TrailPoint, colors Colors) []Sprite {
	for _, p := range trail {
		if p.Opacity <= 0 || p.R <= 0 {
			continue
		}
		dst = append(dst, Sprite{Kind: Circle, X: p.X, Y: p.Y, Size: p.R, Color: RGBA(s.Color, p.Opacity, colors)})
	}
	return dst
}

// ParticleSprites appends the trail, glow halo and body of one particle.
// While two stages of different primitives blend, both bodies are drawn with
// their own opacities.
func ParticleSprites(dst []Sprite, s core.ParticleState, trail []particles.TrailPoint, colors Colors) []Sprite {
	dst = TrailSprites(dst, s, trail, colors)

	if s.Glow > 0 && s.R > 0 && s.Opacity > 0 {
		dst = append(dst,
			Sprite{Kind: Circle, X: s.X, Y: s.Y, Size: s.R + s.Glow*haloOuterScale, Color: Lighten(s.Color, haloLighten, s.Opacity*haloOuterAlpha, colors)},
			Sprite{Kind: Circle, X: s.X, Y: s.Y, Size: s.R + s.Glow*haloInnerScale, Color: Lighten(s.Color, haloLighten, s.Opacity*haloInnerAlpha, colors)},
		)
	}
	if s.R > 0 && s.Opacity > 0 {
		dst = append(dst, Sprite{Kind: Circle, X: s.X, Y: s.Y, Size: s.R, Color: RGBA(s.Color, s.Opacity, colors)})
	}
	if s.RectSize > 0 && s.RectOpacity > 0 {
		dst = append(dst, Sprite{Kind: Rect, X: s.X, Y: s.Y, Size: s.RectSize, Color: RGBA(s.Color, s.RectOpacity, colors)})
	}
	return dst
}
