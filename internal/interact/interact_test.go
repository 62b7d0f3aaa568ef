package interact

import (
	"math"
	"testing"

	"iris/internal/core"
	"iris/internal/mathx"
)

var origin = core.Point{}

func TestHoverOffsetZeroAtAndBeyondRadius(t *testing.T) {
	cfg := DefaultConfig().Hover
	p := core.Particle{ID: 0, Theta: 0}
	for _, mx := range []float64{380, 381, 1000} {
		if got := HoverOffset(cfg, p, 1.0/12, core.Point{X: mx}, origin, 180); got != 0 {
			t.Fatalf("pointer at %v gave offset %v", mx, got)
		}
	}
	if got := HoverOffset(cfg, p, 1.0/12, core.FarAway, origin, 180); got != 0 {
		t.Fatalf("far away pointer gave offset %v", got)
	}
	edge := HoverOffset(cfg, p, 1.0/12, core.Point{X: 379.999}, origin, 180)
	if math.Abs(edge) > 1e-4 {
		t.Fatalf("offset jumps at the radius edge: %v", edge)
	}
}

func TestHoverOffsetPeaksUnderPointer(t *testing.T) {
	cfg := DefaultConfig().Hover
	p := core.Particle{ID: 0, Theta: 0}
	got := HoverOffset(cfg, p, 1.0/12, core.Point{X: 180}, origin, 180)
	if math.Abs(got-cfg.Amplitude) > 1e-9 {
		t.Fatalf("offset under the pointer = %v, want %v", got, cfg.Amplitude)
	}
}

func TestHoverOffsetContinuousAcrossSeam(t *testing.T) {
	cfg := DefaultConfig().Hover
	mouse := core.Point{X: 170, Y: 5}
	a := HoverOffset(cfg, core.Particle{Theta: 0}, 0.37, mouse, origin, 180)
	b := HoverOffset(cfg, core.Particle{Theta: mathx.TwoPi}, 0.37, mouse, origin, 180)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("seam discontinuity: %v vs %v", a, b)
	}
}

func TestClickStrengthProportionalToProximity(t *testing.T) {
	cfg := DefaultConfig().Click
	p := core.Particle{Theta: 0}
	if got := ClickStrength(cfg, p, origin, origin, 180); got != 0 {
		t.Fatalf("click at the center reached the ring: %v", got)
	}
	if got := ClickStrength(cfg, p, core.Point{X: 180}, origin, 180); got != cfg.Strength {
		t.Fatalf("click on the particle = %v", got)
	}
	half := ClickStrength(cfg, p, core.Point{X: 180, Y: 75}, origin, 180)
	if math.Abs(half-cfg.Strength/2) > 1e-9 {
		t.Fatalf("click at half radius = %v", half)
	}
}

func TestMagneticRepulsion(t *testing.T) {
	cfg := DefaultConfig().Magnetic
	dx, dy := Magnetic(cfg, core.Point{X: 100}, origin)
	want := 40 * math.Pow(1.0/3, 2)
	if math.Abs(dx-want) > 1e-9 || dy != 0 {
		t.Fatalf("push = (%v,%v), want (%v,0)", dx, dy, want)
	}
	if dx, dy := Magnetic(cfg, core.Point{X: 0.5}, origin); dx != 0 || dy != 0 {
		t.Fatal("pointer on the particle should not push")
	}
	if dx, dy := Magnetic(cfg, core.Point{X: 150}, origin); dx != 0 || dy != 0 {
		t.Fatal("particle at the radius should not move")
	}
}

func TestRippleWaveLifecycle(t *testing.T) {
	w := NewRippleWave(DefaultConfig().Wave)
	pos := core.Point{X: 210}
	if got := w.Offset(pos, 0.5); got != (Push{}) {
		t.Fatalf("untriggered wave pushed %+v", got)
	}
	w.Trigger(origin, 0)
	w.Step(0.5)
	got := w.Offset(pos, 0.5)
	if got.DX <= 0 || math.Abs(got.DY) > 1e-12 || got.Intensity <= 0 {
		t.Fatalf("particle on the wavefront got %+v", got)
	}
	if far := w.Offset(core.Point{X: 50}, 0.5); far != (Push{}) {
		t.Fatalf("particle behind the front got %+v", far)
	}
	if r := w.Radius(0.5); r != 210 {
		t.Fatalf("front radius = %v", r)
	}
	if late := w.Offset(core.Point{X: 700}, 1.7); late != (Push{}) {
		t.Fatalf("expired wave pushed %+v", late)
	}
	w.Step(1.7)
	if w.Active() {
		t.Fatal("wave still active after its duration")
	}
}

func TestRippleWaveRetrigger(t *testing.T) {
	w := NewRippleWave(DefaultConfig().Wave)
	w.Trigger(origin, 0)
	w.Trigger(core.Point{X: 300, Y: 300}, 1)
	if w.Center() != (core.Point{X: 300, Y: 300}) {
		t.Fatalf("center = %+v", w.Center())
	}
	if w.Radius(1.5) != 210 {
		t.Fatalf("retriggered front = %v", w.Radius(1.5))
	}
}

func TestRippleWaveReset(t *testing.T) {
	w := NewRippleWave(DefaultConfig().Wave)
	w.Trigger(origin, 0)
	w.Reset()
	if w.Active() || w.Radius(0.5) != 0 {
		t.Fatal("wave still running after Reset")
	}
	if got := w.Offset(core.Point{X: 210}, 0.5); got != (Push{}) {
		t.Fatalf("reset wave pushed %+v", got)
	}
}

func TestCoreIntensity(t *testing.T) {
	cfg := DefaultConfig().Core
	if got := CoreIntensity(cfg, origin, origin); got != 1 {
		t.Fatalf("pointer on the center = %v", got)
	}
	if got := CoreIntensity(cfg, core.Point{X: 220}, origin); got != 0 {
		t.Fatalf("pointer at the radius = %v", got)
	}
	if got := CoreIntensity(cfg, core.FarAway, origin); got != 0 {
		t.Fatalf("far pointer = %v", got)
	}
	boosted := BoostCore(cfg, core.DefaultCore, 1)
	if boosted.PulseSpeed != core.DefaultCore.PulseSpeed*2 || boosted.RayLength != core.DefaultCore.RayLength*1.5 {
		t.Fatalf("boosted core %+v", boosted)
	}
	if BoostCore(cfg, core.DefaultCore, 0) != core.DefaultCore {
		t.Fatal("zero intensity changed the core")
	}
}
