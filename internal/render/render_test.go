package render

import (
	"image/color"
	"math"
	"testing"

	"iris/internal/core"
	"iris/internal/engine"
	"iris/internal/particles"
)

func TestRGBAConvertsTokens(t *testing.T) {
	cases := []struct {
		token string
		alpha float64
		want  color.RGBA
	}{
		{"white", 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"hsl(0, 100%, 50%)", 1, color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{"hsl(240, 100%, 50%)", 1, color.RGBA{R: 0, G: 0, B: 255, A: 255}},
		{"hsl(120, 100%, 50%)", 0, color.RGBA{}},
		{"", 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"teal", 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, c := range cases {
		if got := RGBA(c.token, c.alpha, nil); got != c.want {
			t.Fatalf("RGBA(%q, %v) = %v, want %v", c.token, c.alpha, got, c.want)
		}
	}
}

func TestRGBAIsPremultiplied(t *testing.T) {
	got := RGBA("white", 0.5, nil)
	if got.A != 128 || got.R != 128 {
		t.Fatalf("half white = %v", got)
	}
	if got.R > got.A || got.G > got.A || got.B > got.A {
		t.Fatalf("channel exceeds alpha: %v", got)
	}
}

func TestLightenMovesTowardWhite(t *testing.T) {
	red := RGBA("hsl(0, 100%, 50%)", 1, nil)
	light := Lighten("hsl(0, 100%, 50%)", 0.5, 1, nil)
	if light.G <= red.G || light.R != 255 {
		t.Fatalf("Lighten = %v from %v", light, red)
	}
}

func TestParticleSpritesOrder(t *testing.T) {
	s := core.ParticleState{X: 10, Y: 20, R: 3, Opacity: 1, Glow: 4, Color: "white"}
	trail := []particles.TrailPoint{{X: 8, Y: 20, R: 2, Opacity: 0.5}, {X: 6, Y: 20, R: 1, Opacity: 0}}
	got := ParticleSprites(nil, s, trail, nil)
	if len(got) != 4 {
		t.Fatalf("got %d sprites, want trail + 2 halos + body", len(got))
	}
	if got[0].X != 8 || got[0].Size != 2 {
		t.Fatalf("first sprite should be the trail copy: %+v", got[0])
	}
	body := got[3]
	if body.Kind != Circle || body.Size != 3 || body.Color.A != 255 {
		t.Fatalf("body %+v", body)
	}
	if got[1].Size <= got[2].Size || got[2].Size <= body.Size {
		t.Fatalf("halos should shrink toward the body: %v %v %v", got[1].Size, got[2].Size, body.Size)
	}
}

func TestParticleSpritesBlendBothPrimitives(t *testing.T) {
	s := core.ParticleState{X: 1, Y: 1, R: 2, Opacity: 0.5, RectSize: 10, RectOpacity: 0.5, Color: "white"}
	got := ParticleSprites(nil, s, nil, nil)
	if len(got) != 2 || got[0].Kind != Circle || got[1].Kind != Rect {
		t.Fatalf("sprites %+v", got)
	}
}

func testCore() core.CoreGlowState {
	c := core.DefaultCore
	c.Visible = true
	c.Opacity = 1
	c.PulseAmplitude = 0
	return c
}

func TestRaysLayout(t *testing.T) {
	c := testCore()
	center := core.Point{X: 100, Y: 100}
	rays := Rays(nil, c, center, 0)
	if len(rays) != c.RayCount*4 {
		t.Fatalf("got %d rays, want %d", len(rays), c.RayCount*4)
	}
	if rays[0].Tier != Tertiary || rays[len(rays)-1].Tier != Primary {
		t.Fatal("rays should be ordered tertiary to primary")
	}
	first := rays[c.RayCount*3]
	if first.Tier != Primary {
		t.Fatalf("ray %d tier %v", c.RayCount*3, first.Tier)
	}
	if math.Abs(first.X1-(center.X+c.CoreRadius+3)) > 1e-9 || math.Abs(first.Y1-center.Y) > 1e-9 {
		t.Fatalf("primary ray 0 starts at (%v,%v)", first.X1, first.Y1)
	}
	if math.Abs(first.X2-(center.X+c.CoreRadius+c.RayLength)) > 1e-9 {
		t.Fatalf("primary ray 0 ends at x=%v", first.X2)
	}

	c.Rotation = math.Pi / 2
	turned := Rays(nil, c, center, 0)[c.RayCount*3]
	if math.Abs(turned.X1-center.X) > 1e-9 || turned.Y1 <= center.Y {
		t.Fatalf("rotated ray starts at (%v,%v)", turned.X1, turned.Y1)
	}
}

func TestHiddenCoreDrawsNothing(t *testing.T) {
	c := core.DefaultCore
	if n := len(Rays(nil, c, core.Point{}, 1)); n != 0 {
		t.Fatalf("hidden core has %d rays", n)
	}
	if n := len(CoreSprites(nil, c, core.Point{}, 1, nil)); n != 0 {
		t.Fatalf("hidden core has %d sprites", n)
	}
}

func TestCoreSpritesEndWithHighlight(t *testing.T) {
	c := testCore()
	got := CoreSprites(nil, c, core.Point{}, 0, nil)
	if want := 1 + c.RayCount*4 + 3; len(got) != want {
		t.Fatalf("got %d sprites, want %d", len(got), want)
	}
	last := got[len(got)-1]
	if last.Kind != Circle || last.Size != c.CoreRadius*0.5 {
		t.Fatalf("highlight %+v", last)
	}
}

func TestBuilderCoversFrame(t *testing.T) {
	e, err := engine.New(engine.DefaultConfig())
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	e.SetCenter(core.Point{X: 400, Y: 300})
	e.SetProgress(2)
	for k := 0; k < 10; k++ {
		e.Frame(float64(k) / 60)
	}
	f := e.Frame(10.0 / 60)
	b := NewBuilder(e.Cache().Palette())
	sprites := b.Build(f, e)
	if len(sprites) <= len(f.Particles) {
		t.Fatalf("got %d sprites for %d particles", len(sprites), len(f.Particles))
	}
	last := sprites[len(sprites)-1]
	if last.X != 400 || last.Y != 300 {
		t.Fatalf("core highlight should be drawn last at the center: %+v", last)
	}
}

func TestBuilderHalosOff(t *testing.T) {
	f := engine.Frame{Particles: []core.ParticleState{
		{X: 10, Y: 20, R: 3, Opacity: 1, Glow: 4, Color: "white"},
		{X: 30, Y: 20, R: 3, Opacity: 1, Glow: 4, Color: "white"},
	}}
	b := NewBuilder(nil)
	if got := len(b.Build(f, nil)); got != 6 {
		t.Fatalf("halos on: got %d sprites, want 6", got)
	}
	b.SetHalos(false)
	got := b.Build(f, nil)
	if len(got) != 2 {
		t.Fatalf("halos off: got %d sprites, want 2", len(got))
	}
	for _, s := range got {
		if s.Size != 3 {
			t.Fatalf("only bodies expected, got %+v", s)
		}
	}
}

func TestBuildingFramesKeepsColorMemoFlat(t *testing.T) {
	e, err := engine.New(engine.DefaultConfig())
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	e.SetCenter(core.Point{X: 400, Y: 300})
	b := NewBuilder(e.Cache().Palette())
	const n = 600
	sweep := func(start float64) {
		for k := 0; k < n; k++ {
			e.SetProgress(2.9 * float64(k) / n)
			b.Build(e.Frame(start+float64(k)/60), e)
		}
	}
	sweep(0)
	settled := e.Cache().Colors()
	sweep(100.37)
	if got := e.Cache().Colors(); got != settled {
		t.Fatalf("color memo grew from %d to %d over %d frames", settled, got, n)
	}
}
