//go:build ebiten

package app

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"iris/internal/core"
	"iris/internal/engine"
	"iris/internal/render"
	"iris/internal/ui"
)

// Game adapts the particle engine to the ebiten.Game interface.
type Game struct {
	engine   *engine.Engine
	painter  *render.Painter
	hud      *ui.HUD
	overlay  *ui.Overlay
	scroll   *Scroll
	clock    *core.Clock
	throttle *Throttle

	cfg      *Config
	width    int
	height   int
	shown    float64
	lastTick float64
	frame    engine.Frame
}

// New constructs a Game driving e.
func New(e *engine.Engine, cfg *Config) *Game {
	g := &Game{
		engine:   e,
		painter:  render.NewPainter(e.Cache().Palette(), e),
		overlay:  ui.NewOverlay(e),
		scroll:   NewScroll(DefaultScrollConfig(), e.MaxProgress(), cfg.Progress),
		clock:    core.NewClock(nil),
		throttle: NewThrottle(cfg.FrameEvery()),
		cfg:      cfg,
		width:    cfg.CanvasWidth(),
		height:   cfg.CanvasHeight(),
	}
	g.painter.SetHalos(cfg.Halos())
	if w := cfg.PanelWidth(); w > 0 {
		g.hud = ui.NewHUD(e, "iris", w)
	}
	e.SetCenter(core.Point{X: float64(g.width) / 2, Y: float64(g.height) / 2})
	g.shown = g.scroll.Progress()
	e.SetProgress(g.shown)
	return g
}

// Reset restarts the clock, settles bounces and ripples, and returns to the
// configured progress.
func (g *Game) Reset() {
	g.clock.Reset()
	g.throttle.Reset()
	g.lastTick = 0
	g.scroll.Jump(g.cfg.Progress, 0)
	g.shown = g.scroll.Progress()
	g.engine.SetProgress(g.shown)
	g.engine.Reset()
}

// Update maps input into the engine and computes the next frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.clock.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	now := g.clock.Seconds()
	dt := now - g.lastTick
	g.lastTick = now

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.scroll.Step(1, now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.scroll.Step(-1, now)
	}

	g.overlay.Update()
	g.hud.Update(g.width)
	// The HUD may have moved progress directly.
	if p := g.engine.Progress(); p != g.shown {
		g.scroll.Jump(p, now)
	}

	mx, my := ebiten.CursorPosition()
	inside := mx >= 0 && mx < g.width && my >= 0 && my < g.height
	if inside {
		g.engine.SetPointer(core.Point{X: float64(mx), Y: float64(my)})
	} else {
		g.engine.ClearPointer()
	}
	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.engine.Click(core.Point{X: float64(mx), Y: float64(my)}, now)
	}
	if _, dy := ebiten.Wheel(); dy != 0 && !g.hud.Contains(mx) {
		g.scroll.Wheel(dy, now)
	}

	g.shown = g.scroll.Update(now, dt)
	g.engine.SetProgress(g.shown)
	g.shown = g.engine.Progress()
	if g.throttle.Tick() {
		g.frame = g.engine.Frame(now)
	}
	return nil
}

// Draw renders the particles, the debug overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	canvas := screen.SubImage(image.Rect(0, 0, g.width, g.height)).(*ebiten.Image)
	g.painter.Draw(canvas, g.frame)
	g.overlay.Draw(canvas, g.frame.Context.Time)
	g.hud.Draw(screen, g.width, g.height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + g.cfg.PanelWidth(), g.height
}
