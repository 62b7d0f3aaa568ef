package particles

import (
	"math"

	"iris/internal/core"
)

// HistoryLen is the number of past positions remembered per particle.
const HistoryLen = 12

type history struct {
	pts  [HistoryLen]core.Point
	head int // slot of the newest entry
	n    int
}

func (h *history) push(p core.Point) {
	h.head = (h.head + 1) % HistoryLen
	h.pts[h.head] = p
	if h.n < HistoryLen {
		h.n++
	}
}

// Record stores the position of particle i for this frame, dropping the
// oldest entry once the history is full.
func (s *Store) Record(i int, x, y float64) {
	if i < 0 || i >= len(s.history) {
		return
	}
	s.history[i].push(core.Point{X: x, Y: y})
}

// History appends the remembered positions of particle i to dst, newest
// first.
func (s *Store) History(i int, dst []core.Point) []core.Point {
	if i < 0 || i >= len(s.history) {
		return dst
	}
	h := &s.history[i]
	for k := 0; k < h.n; k++ {
		idx := (h.head - k + HistoryLen) % HistoryLen
		dst = append(dst, h.pts[idx])
	}
	return dst
}

// ClearHistory forgets every recorded position.
func (s *Store) ClearHistory() {
	for i := range s.history {
		s.history[i] = history{}
	}
}

// TrailConfig shapes how history entries fade behind a particle.
type TrailConfig struct {
	MaxLength    int
	OpacityDecay float64 // exponent on the fade curve, 1 is linear
	SizeDecay    float64
	MinOpacity   float64
	MinSize      float64 // fraction of the particle radius
}

// DefaultTrailConfig returns the standard trail shape.
func DefaultTrailConfig() TrailConfig {
	return TrailConfig{MaxLength: HistoryLen, OpacityDecay: 0.7, SizeDecay: 0.8, MinOpacity: 0.1, MinSize: 0.3}
}

// TrailPoint is one fading copy drawn behind a particle.
type TrailPoint struct {
	X, Y    float64
	R       float64
	Opacity float64
}

// Trail appends the trail copies of particle i to dst, nearest first. The
// newest history entry is the particle itself and is skipped. The number of
// copies follows state.TrailLength scaled to the configured maximum.
func (s *Store) Trail(i int, state core.ParticleState, cfg TrailConfig, dst []TrailPoint) []TrailPoint {
	if i < 0 || i >= len(s.history) || state.TrailLength <= 0 || state.R <= 0 {
		return dst
	}
	h := &s.history[i]
	maxLen := min(cfg.MaxLength, HistoryLen)
	visible := int(math.Round(state.TrailLength * float64(maxLen)))
	visible = min(visible, h.n-1)
	for k := 1; k <= visible; k++ {
		idx := (h.head - k + HistoryLen) % HistoryLen
		fade := 1 - float64(k)/float64(visible+1)
		opacity := math.Max(cfg.MinOpacity, math.Pow(fade, 1/nonZero(cfg.OpacityDecay)))
		size := math.Max(cfg.MinSize, math.Pow(fade, 1/nonZero(cfg.SizeDecay)))
		p := h.pts[idx]
		dst = append(dst, TrailPoint{
			X:       p.X,
			Y:       p.Y,
			R:       state.R * size,
			Opacity: state.Opacity * opacity * state.TrailLength,
		})
	}
	return dst
}

func nonZero(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}
