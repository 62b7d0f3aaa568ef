package stages

import (
	"math"

	"iris/internal/core"
	"iris/internal/mathx"
)

// Grid geometry for the two layouts.
var (
	DesktopGrid = core.GridLayout{Cols: 5, Rows: 16, CellSize: 28, Gap: 10}
	MobileGrid  = core.GridLayout{Cols: 5, Rows: 8, CellSize: 22, Gap: 8}
)

// GridLayoutFor returns the grid geometry matching the layout flag.
func GridLayoutFor(mobile bool) core.GridLayout {
	if mobile {
		return MobileGrid
	}
	return DesktopGrid
}

// Wave timing of the grid stage.
const (
	WaveWidth = 3   // rows
	WaveSweep = 3.0 // seconds the wave travels
	WavePause = 2.5 // seconds of rest after each sweep

	waveShrink = 0.6
	waveLift   = 4
	cellFill   = 0.55
)

// WavePosition returns the row the wave is centered on at time t, and false
// during the pause. The wave starts WaveWidth rows above the grid and leaves
// WaveWidth rows below it.
func WavePosition(t float64, rows int) (float64, bool) {
	period := WaveSweep + WavePause
	cycle := math.Mod(t, period)
	if cycle < 0 {
		cycle += period
	}
	if cycle >= WaveSweep {
		return 0, false
	}
	p := cycle / WaveSweep
	return p*float64(rows+2*WaveWidth) - WaveWidth, true
}

// WaveIntensity returns the shrink intensity of row at time t in [0, 1]. It
// is 1 when the wave is centered on the row and 0 WaveWidth rows away or
// during the pause.
func WaveIntensity(row int, t float64, rows int) float64 {
	pos, active := WavePosition(t, rows)
	if !active {
		return 0
	}
	d := math.Abs(float64(row) - pos)
	if d >= WaveWidth {
		return 0
	}
	return math.Cos(d / WaveWidth * math.Pi / 2)
}

// Grid lays particles out row-major as white squares swept by a wave.
type Grid struct {
	layout core.GridLayout
}

// NewGrid builds the grid stage.
func NewGrid(d core.Deps) *Grid {
	return &Grid{layout: GridLayoutFor(d.Mobile)}
}

// Name identifies the stage.
func (g *Grid) Name() string { return NameGrid }

// Layout exposes the grid geometry.
func (g *Grid) Layout() core.GridLayout { return g.layout }

// Particle places p in its cell. Cells under the wave shrink and lift.
func (g *Grid) Particle(p core.Particle, ctx core.FrameContext) core.ParticleState {
	row, col := g.layout.Cell(p.ID)
	pos := g.layout.CellCenter(row, col, ctx.Center)
	intensity := WaveIntensity(row, ctx.Time, g.layout.Rows)
	return core.ParticleState{
		X:           pos.X,
		Y:           pos.Y - waveLift*intensity,
		RectSize:    cellFill * g.layout.CellSize * (1 - waveShrink*intensity),
		RectOpacity: 1,
		Color:       mathx.White,
	}
}

// Scene hides the core glow.
func (g *Grid) Scene(core.FrameContext) core.SceneState { return hiddenScene() }
