package app

import (
	"flag"
	"testing"

	"iris/internal/engine"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("iris", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-mobile", "-stages", "ring,pulse", "-progress", "0.5", "-hud=false"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cfg.Mobile || cfg.Progress != 0.5 || cfg.PanelWidth() != 0 {
		t.Fatalf("config %+v", cfg)
	}
	ecfg := cfg.EngineConfig()
	if ecfg.Trails {
		t.Fatal("mobile profile should drop trails")
	}
	if len(ecfg.Stages) != 2 || ecfg.Stages[1] != "pulse" {
		t.Fatalf("stages %q", ecfg.Stages)
	}
	e, err := engine.New(ecfg)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	if e.Count() != engine.MobileCount {
		t.Fatalf("count %d", e.Count())
	}
}

func TestDefaultConfigBuildsEngine(t *testing.T) {
	cfg := NewConfig()
	e, err := engine.New(cfg.EngineConfig())
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	if e.MaxProgress() != 3 || !e.Config().Trails {
		t.Fatalf("max progress %v trails %v", e.MaxProgress(), e.Config().Trails)
	}
	if cfg.PanelWidth() != HUDWidth {
		t.Fatalf("panel width %d", cfg.PanelWidth())
	}
}

func run(s *Scroll, from, to float64) float64 {
	const dt = 1.0 / 60
	var p float64
	for now := from; now <= to; now += dt {
		p = s.Update(now, dt)
	}
	return p
}

func TestScrollFollowsWheel(t *testing.T) {
	s := NewScroll(DefaultScrollConfig(), 3, 0)
	s.Wheel(-2, 0)
	if s.Target() != 0.3 {
		t.Fatalf("target %v", s.Target())
	}
	p := run(s, 0, 0.4)
	if p <= 0.2 || p > 0.3 {
		t.Fatalf("progress %v after 0.4s", p)
	}
	if s.Snapping() {
		t.Fatal("snapped while the wheel was recent")
	}
}

func TestScrollSnapsToNearestStage(t *testing.T) {
	s := NewScroll(DefaultScrollConfig(), 3, 1)
	s.Wheel(-4, 0)
	if p := run(s, 0, 2); p != 2 {
		t.Fatalf("settled at %v, want 2", p)
	}
	if s.Snapping() {
		t.Fatal("still snapping after the settle")
	}
}

func TestScrollClampsAndSteps(t *testing.T) {
	s := NewScroll(DefaultScrollConfig(), 3, 0)
	s.Wheel(100, 0)
	if s.Target() != 0 {
		t.Fatalf("target %v below range", s.Target())
	}
	s.Step(1, 0)
	if p := run(s, 0, 0.6); p != 1 {
		t.Fatalf("step landed on %v", p)
	}
	s.Step(5, 1)
	if s.Target() != 3 {
		t.Fatalf("step past the end: %v", s.Target())
	}
	s.Jump(-1, 2)
	if s.Progress() != 0 || s.Target() != 0 {
		t.Fatalf("jump to %v", s.Progress())
	}
}

func TestWheelCancelsSnap(t *testing.T) {
	s := NewScroll(DefaultScrollConfig(), 3, 0)
	s.Step(1, 0)
	s.Update(0.1, 0.1)
	s.Wheel(-1, 0.1)
	if s.Snapping() {
		t.Fatal("wheel input did not cancel the settle")
	}
}

func TestThrottleSkipsFrames(t *testing.T) {
	cases := []struct {
		every int
		want  []bool
	}{
		{1, []bool{true, true, true, true}},
		{2, []bool{true, false, true, false}},
		{0, []bool{true, true}},
	}
	for _, c := range cases {
		th := NewThrottle(c.every)
		for k, want := range c.want {
			if got := th.Tick(); got != want {
				t.Fatalf("every %d tick %d = %v, want %v", c.every, k, got, want)
			}
		}
	}
	th := NewThrottle(2)
	th.Tick()
	th.Reset()
	if !th.Tick() {
		t.Fatal("first tick after Reset should compute a frame")
	}
}

func TestMobileProfileDropsFramesAndHalos(t *testing.T) {
	cfg := NewConfig()
	if cfg.FrameEvery() != 1 || !cfg.Halos() {
		t.Fatalf("desktop every %d halos %v", cfg.FrameEvery(), cfg.Halos())
	}
	cfg.Mobile = true
	if cfg.FrameEvery() != 2 || cfg.Halos() {
		t.Fatalf("mobile every %d halos %v", cfg.FrameEvery(), cfg.Halos())
	}
}
