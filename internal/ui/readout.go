package ui

import (
	"fmt"

	"iris/internal/engine"
)

// Readout returns the lines of the stage readout: the stage pair at the
// current progress and the interaction gates it implies.
func Readout(e *engine.Engine, now float64) []string {
	p := e.Progress()
	from, to, t := e.StageAt(p)
	stage := from.Name()
	if t > 0 {
		stage = fmt.Sprintf("%s -> %s (%.0f%%)", from.Name(), to.Name(), t*100)
	}
	lines := []string{
		fmt.Sprintf("progress %.2f / %.0f", p, e.MaxProgress()),
		"stage " + stage,
		fmt.Sprintf("ring %.2f  bloom %.2f", engine.RingStrength(p), engine.BloomStrength(p)),
	}
	if w := e.Wave(); w.Active() {
		lines = append(lines, fmt.Sprintf("wave r=%.0f", w.Radius(now)))
	}
	return lines
}
