package core

import (
	"testing"
	"time"
)

func TestGridLayoutCells(t *testing.T) {
	g := GridLayout{Cols: 5, Rows: 16, CellSize: 28, Gap: 10}
	row, col := g.Cell(12)
	if row != 2 || col != 2 {
		t.Fatalf("Cell(12) = (%d,%d)", row, col)
	}
	if g.Index(col, row) != 12 {
		t.Fatalf("Index round trip = %d", g.Index(col, row))
	}
	if row, _ := g.Cell(500); row != 15 {
		t.Fatalf("overflow id placed on row %d, want last row", row)
	}
	w, h := g.Extent()
	if w != 5*28+4*10 || h != 16*28+15*10 {
		t.Fatalf("Extent = %v x %v", w, h)
	}
	c := Point{X: 400, Y: 300}
	first := g.CellCenter(0, 0, c)
	last := g.CellCenter(15, 4, c)
	if first.X+last.X != 2*c.X || first.Y+last.Y != 2*c.Y {
		t.Fatalf("grid not centered: first %+v last %+v", first, last)
	}
}

func TestPrimitiveDominance(t *testing.T) {
	if (ParticleState{R: 3, Opacity: 1}).Primitive() != PrimitiveCircle {
		t.Fatal("circle state reported as rect")
	}
	if (ParticleState{RectSize: 15, RectOpacity: 1}).Primitive() != PrimitiveRect {
		t.Fatal("rect state reported as circle")
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(10)
	if n := fs.Advance(0.05); n != 0 {
		t.Fatalf("half step produced %d steps", n)
	}
	if n := fs.Advance(0.26); n != 3 {
		t.Fatalf("expected 3 due steps, got %d", n)
	}
	if n := fs.Advance(-1); n != 0 {
		t.Fatalf("negative delta produced %d steps", n)
	}
}

func TestClockPauseExcludesTime(t *testing.T) {
	now := time.Unix(100, 0)
	clock := NewClock(func() time.Time { return now })
	now = now.Add(2 * time.Second)
	if got := clock.Seconds(); got != 2 {
		t.Fatalf("Seconds = %v", got)
	}
	clock.Toggle()
	now = now.Add(5 * time.Second)
	if got := clock.Seconds(); got != 2 {
		t.Fatalf("paused clock advanced to %v", got)
	}
	clock.Toggle()
	now = now.Add(time.Second)
	if got := clock.Seconds(); got != 3 {
		t.Fatalf("resumed clock = %v, want 3", got)
	}
}

func TestRegisterStageIgnoresInvalid(t *testing.T) {
	before := len(Stages())
	RegisterStage("", func(Deps) Stage { return nil })
	RegisterStage("nil-factory", nil)
	if len(Stages()) != before {
		t.Fatal("invalid registrations were accepted")
	}
}

func TestSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{{Name: "A", Params: []Parameter{FloatParam("k", "K", 1.5)}}}}
	p, ok := s.Lookup("k")
	if !ok || p.Value != "1.5" || p.Type != ParamTypeFloat {
		t.Fatalf("Lookup = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("missing key found")
	}
}
