//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"iris/internal/core"
	"iris/internal/engine"
)

// Overlay draws optional debugging visuals on top of the particles.
type Overlay struct {
	engine      *engine.Engine
	showHover   bool
	showWave    bool
	showReadout bool
	showRing    bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for e.
func NewOverlay(e *engine.Engine) *Overlay {
	o := &Overlay{engine: e}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the layers: 1 hover radius, 2 ripple wavefront, 3 stage
// readout, 4 live ring radius.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHover = !o.showHover
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showWave = !o.showWave
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showReadout = !o.showReadout
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.showRing = !o.showRing
	}
}

// Draw renders the enabled layers for the frame at now.
func (o *Overlay) Draw(screen *ebiten.Image, now float64) {
	e := o.engine
	cfg := e.Config().Interact
	if o.showHover {
		if p := e.Pointer(); p != core.FarAway {
			o.drawCircle(screen, p, cfg.Hover.Radius, 1, color.RGBA{R: 90, G: 200, B: 255, A: 160})
			o.drawCircle(screen, p, cfg.Magnetic.Radius, 1, color.RGBA{R: 255, G: 120, B: 200, A: 120})
		}
	}
	if o.showWave {
		if w := e.Wave(); w.Active() {
			r := w.Radius(now)
			half := w.Config().Width / 2
			o.drawCircle(screen, w.Center(), r, 1.5, color.RGBA{R: 255, G: 230, B: 120, A: 200})
			o.drawCircle(screen, w.Center(), math.Max(r-half, 0), 1, color.RGBA{R: 255, G: 230, B: 120, A: 80})
			o.drawCircle(screen, w.Center(), r+half, 1, color.RGBA{R: 255, G: 230, B: 120, A: 80})
		}
	}
	if o.showRing {
		o.drawCircle(screen, e.Center(), e.RingRadius(now), 1, color.RGBA{R: 160, G: 160, B: 170, A: 120})
	}
	if o.showReadout {
		face := basicfont.Face7x13
		for i, line := range Readout(e, now) {
			text.Draw(screen, line, face, 10, 20+i*16, color.RGBA{R: 200, G: 210, B: 230, A: 255})
		}
	}
}

func (o *Overlay) drawCircle(screen *ebiten.Image, c core.Point, r, thickness float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	const segments = 72
	px, py := c.X+r, c.Y
	for i := 1; i <= segments; i++ {
		a := float64(i) / segments * 2 * math.Pi
		x, y := c.X+math.Cos(a)*r, c.Y+math.Sin(a)*r
		o.drawLine(screen, px, py, x, y, thickness, col)
		px, py = x, y
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
