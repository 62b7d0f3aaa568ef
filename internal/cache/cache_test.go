package cache

import (
	"math"
	"slices"
	"testing"

	"iris/internal/mathx"
)

func TestTrigMemoizedPerCount(t *testing.T) {
	c := New()
	a := c.Trig(80)
	b := c.Trig(80)
	if len(a) != 80 {
		t.Fatalf("len = %d", len(a))
	}
	if &a[0] != &b[0] {
		t.Fatal("second call did not return the memoized slice")
	}
	quarter := a[20]
	if math.Abs(quarter.Cos) > 1e-12 || math.Abs(quarter.Sin-1) > 1e-12 {
		t.Fatalf("trig[20] = %+v, want cos 0 sin 1", quarter)
	}
	if other := c.Trig(40); len(other) != 40 {
		t.Fatalf("Trig(40) len = %d", len(other))
	}
}

func TestHSLCachePrewarmedAndRemembersFailures(t *testing.T) {
	c := New()
	for _, tok := range KnownColors {
		if !c.Cached(tok) {
			t.Fatalf("%q not pre-warmed", tok)
		}
	}
	if got, ok := c.HSL("white"); !ok || got != mathx.WhiteHSL {
		t.Fatalf("white parsed as %+v, %v", got, ok)
	}
	if _, ok := c.HSL("not-a-color"); ok {
		t.Fatal("garbage parsed successfully")
	}
	if !c.Cached("not-a-color") {
		t.Fatal("failed parse was not memoized")
	}
}

func TestPaletteParsesWithoutStoring(t *testing.T) {
	c := New()
	before := c.Colors()
	p := c.Palette()
	if got, ok := p.HSL("white"); !ok || got != mathx.WhiteHSL {
		t.Fatalf("white through palette = %+v, %v", got, ok)
	}
	for h := 0; h < 360; h++ {
		tok := mathx.HSL{H: float64(h), S: 80, L: 60}.String()
		if _, ok := p.HSL(tok); !ok {
			t.Fatalf("%q did not parse", tok)
		}
	}
	if c.Colors() != before || c.Cached("hsl(123, 80%, 60%)") {
		t.Fatalf("palette stored tokens: %d -> %d", before, c.Colors())
	}
}

func TestPoolWrapsAndInvalidatesLeases(t *testing.T) {
	p := NewPool[Point3](3)
	first, lease := p.Acquire()
	first.X = 7
	if !p.Live(lease) {
		t.Fatal("fresh lease reported stale")
	}
	p.Acquire()
	p.Acquire()
	if !p.Live(lease) {
		t.Fatal("lease went stale before the slot was reused")
	}
	again, _ := p.Acquire()
	if again != first {
		t.Fatal("pool did not wrap to the first slot")
	}
	if again.X != 0 {
		t.Fatalf("recycled slot not zeroed: %+v", *again)
	}
	if p.Live(lease) {
		t.Fatal("lease still live after its slot was reused")
	}
}

func TestPoolReset(t *testing.T) {
	p := NewPool[Depth](PoolSize)
	a, _ := p.Acquire()
	p.Acquire()
	p.Reset()
	b, _ := p.Acquire()
	if a != b {
		t.Fatal("Reset did not rewind the cursor")
	}
	if p.Cap() != PoolSize {
		t.Fatalf("Cap = %d", p.Cap())
	}
}

var testOrbits = []Orbit{
	{Radius: 50, Count: 2, Speed: 0.1, Direction: 1, Tilt: 10},
	{Radius: 90, Count: 3, Speed: 0.05, Direction: -1, Tilt: 30},
}

func TestOrbitsRoundTrip(t *testing.T) {
	c := New()
	first := slices.Clone(c.Orbits(5, testOrbits))
	second := c.Orbits(5, testOrbits)
	if !slices.Equal(first, second) {
		t.Fatalf("memoized orbit records differ:\n%v\n%v", first, second)
	}
	if second[2].OrbitIndex != 1 || second[2].LocalIndex != 0 {
		t.Fatalf("particle 2 placed at %+v", second[2])
	}
	want := 2 * math.Pi / 3
	if math.Abs(second[3].BaseAngle-want) > 1e-12 {
		t.Fatalf("base angle = %v, want %v", second[3].BaseAngle, want)
	}
	if math.Abs(second[3].TiltSin-0.5) > 1e-12 {
		t.Fatalf("tilt sin = %v", second[3].TiltSin)
	}
}

func TestOrbitsFallBackToLastOrbit(t *testing.T) {
	c := New()
	infos := c.Orbits(7, testOrbits)
	for _, id := range []int{5, 6} {
		got := infos[id]
		if got.OrbitIndex != 1 || got.LocalIndex != 0 || got.BaseAngle != 0 {
			t.Fatalf("overflow particle %d placed at %+v", id, got)
		}
	}
}
