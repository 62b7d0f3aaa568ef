package ui

import (
	"strings"
	"testing"

	"iris/internal/core"
	"iris/internal/engine"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New(engine.DefaultConfig())
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	e.SetCenter(core.Point{X: 400, Y: 300})
	return e
}

func rowOf(t *testing.T, p *Panel, key string) int {
	t.Helper()
	for i, c := range p.controls {
		if c.control.Key == key {
			return i
		}
	}
	t.Fatalf("no row for %q", key)
	return -1
}

func TestPanelReadsEngineParameters(t *testing.T) {
	e := newEngine(t)
	p := NewPanel(e, 260)
	p.Refresh()
	if p.Len() == 0 {
		t.Fatal("panel has no rows")
	}
	if got := p.Value(rowOf(t, p, "progress")); got != "0.0" {
		t.Fatalf("progress row = %q", got)
	}
	if got := p.Value(rowOf(t, p, "trails")); got != "on" {
		t.Fatalf("trails row = %q", got)
	}
	if p.Summary() != "ring" {
		t.Fatalf("summary = %q", p.Summary())
	}
}

func TestPanelAdjustClampsAndApplies(t *testing.T) {
	e := newEngine(t)
	p := NewPanel(e, 260)
	p.Refresh()
	progress := rowOf(t, p, "progress")
	if p.Adjust(progress, -1) {
		t.Fatal("progress stepped below zero")
	}
	if !p.Adjust(progress, 1) || e.Progress() != 0.1 {
		t.Fatalf("progress = %v after one step", e.Progress())
	}

	trails := rowOf(t, p, "trails")
	if !p.Adjust(trails, 1) || e.Config().Trails {
		t.Fatal("trails toggle did not reach the engine")
	}
	if p.Value(trails) != "off" {
		t.Fatalf("trails row = %q", p.Value(trails))
	}
}

func TestPanelClickHitsButtons(t *testing.T) {
	e := newEngine(t)
	p := NewPanel(e, 260)
	p.Refresh()
	row := rowOf(t, p, "hover_radius")
	plus := p.controls[row].plusRect
	if !p.Click(plus.Min.X+1, plus.Min.Y+1) {
		t.Fatal("click on + missed")
	}
	if got := e.Config().Interact.Hover.Radius; got != 210 {
		t.Fatalf("hover radius = %v, want 210", got)
	}
	if p.Click(0, 0) {
		t.Fatal("click outside any button was handled")
	}
}

func TestReadout(t *testing.T) {
	e := newEngine(t)
	e.SetProgress(1.5)
	lines := Readout(e, 0)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "bloom -> planetary (50%)") {
		t.Fatalf("readout %q", joined)
	}
	if !strings.Contains(joined, "ring 0.00  bloom 1.00") {
		t.Fatalf("readout %q", joined)
	}
	e.Click(core.Point{X: 400, Y: 300}, 0)
	if lines := Readout(e, 0.5); !strings.HasPrefix(lines[len(lines)-1], "wave r=") {
		t.Fatalf("active wave missing from %q", lines)
	}
}
