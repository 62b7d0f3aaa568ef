//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"iris/internal/engine"
)

// Background is the canvas clear color.
var Background = color.RGBA{R: 5, G: 6, B: 14, A: 255}

// Painter rasterises engine frames onto an ebiten image.
type Painter struct {
	builder *Builder
	trails  TrailSource
}

// NewPainter allocates a painter resolving colors through colors and
// reading trails from trails.
func NewPainter(colors Colors, trails TrailSource) *Painter {
	return &Painter{builder: NewBuilder(colors), trails: trails}
}

// SetHalos toggles particle halos.
func (p *Painter) SetHalos(on bool) { p.builder.SetHalos(on) }

// Draw clears dst and paints f.
func (p *Painter) Draw(dst *ebiten.Image, f engine.Frame) {
	dst.Fill(Background)
	for _, s := range p.builder.Build(f, p.trails) {
		drawSprite(dst, s)
	}
}

func drawSprite(dst *ebiten.Image, s Sprite) {
	if s.Color.A == 0 {
		return
	}
	switch s.Kind {
	case Circle:
		vector.DrawFilledCircle(dst, float32(s.X), float32(s.Y), float32(s.Size), s.Color, true)
	case Rect:
		half := s.Size / 2
		vector.DrawFilledRect(dst, float32(s.X-half), float32(s.Y-half), float32(s.Size), float32(s.Size), s.Color, false)
	case Line:
		vector.StrokeLine(dst, float32(s.X), float32(s.Y), float32(s.X2), float32(s.Y2), float32(s.Size), s.Color, true)
	}
}
