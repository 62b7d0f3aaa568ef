package mathx

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestLerpEndpointsExact(t *testing.T) {
	cases := [][2]float64{{0, 1}, {3.3, -7.1}, {180.0000001, 179.9}, {1e6, 1e-6}}
	for _, c := range cases {
		if got := Lerp(c[0], c[1], 0); got != c[0] {
			t.Fatalf("Lerp(%v, %v, 0) = %v", c[0], c[1], got)
		}
		if got := Lerp(c[0], c[1], 1); got != c[1] {
			t.Fatalf("Lerp(%v, %v, 1) = %v", c[0], c[1], got)
		}
	}
	if got := Lerp(2, 4, 0.5); !near(got, 3, eps) {
		t.Fatalf("Lerp midpoint = %v", got)
	}
}

func TestEasingBoundaries(t *testing.T) {
	easings := map[string]func(float64) float64{
		"inOutCubic": EaseInOutCubic,
		"outCubic":   EaseOutCubic,
		"outQuad":    EaseOutQuad,
		"outPower3":  EaseOutPower3,
		"inOutSine":  EaseInOutSine,
		"outElastic": EaseOutElastic,
		"smoothstep": Smoothstep,
	}
	for name, fn := range easings {
		if got := fn(0); !near(got, 0, eps) {
			t.Errorf("%s(0) = %v", name, got)
		}
		if got := fn(1); !near(got, 1, eps) {
			t.Errorf("%s(1) = %v", name, got)
		}
	}
	if got := EaseInOutCubic(0.5); !near(got, 0.5, eps) {
		t.Fatalf("EaseInOutCubic(0.5) = %v", got)
	}
}

func TestPolarRoundTrip(t *testing.T) {
	x, y := PolarToCartesian(100, 50, 30, math.Pi/3)
	r, theta := CartesianToPolar(x, y, 100, 50)
	if !near(r, 30, 1e-9) || !near(theta, math.Pi/3, 1e-9) {
		t.Fatalf("round trip gave r=%v theta=%v", r, theta)
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{TwoPi, 0},
	}
	for _, c := range cases {
		if got := NormalizeAngle(c.in); !near(got, c.want, 1e-9) {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLerpAngleTakesShortArc(t *testing.T) {
	a := 350 * math.Pi / 180
	b := 10 * math.Pi / 180
	got := NormalizeAngle(LerpAngle(a, b, 0.5))
	if !near(got, 0, 1e-9) && !near(got, TwoPi, 1e-9) {
		t.Fatalf("LerpAngle midpoint = %v rad, want 0", got)
	}
}

func TestLerpHueShortArc(t *testing.T) {
	cases := []struct{ a, b, t, want float64 }{
		{350, 10, 0.5, 0},
		{10, 350, 0.5, 0},
		{0, 90, 0.5, 45},
		{300, 60, 0.25, 330},
		{180, 180, 0.7, 180},
	}
	for _, c := range cases {
		got := LerpHue(c.a, c.b, c.t)
		if !near(got, c.want, 1e-9) {
			t.Errorf("LerpHue(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
		}
	}
}
