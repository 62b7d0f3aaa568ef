package mathx

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Lerp interpolates between a and b. The weighted form keeps both endpoints
// exact: Lerp(a, b, 0) == a and Lerp(a, b, 1) == b.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// EaseInOutCubic accelerates until the midpoint and decelerates afterwards.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutCubic starts fast and settles slowly.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad is the softer quadratic ease-out.
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutPower3 is the quartic ease-out used for stage snapping.
func EaseOutPower3(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

// EaseInOutSine follows half a cosine period.
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// EaseOutElastic overshoots and rings down to 1.
func EaseOutElastic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	const c4 = TwoPi / 3
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}

// Smoothstep is the cubic Hermite step 3t²-2t³ on a clamped input.
func Smoothstep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// PolarToCartesian converts a radius/angle pair around a center into screen space.
func PolarToCartesian(cx, cy, radius, theta float64) (x, y float64) {
	return cx + math.Cos(theta)*radius, cy + math.Sin(theta)*radius
}

// CartesianToPolar returns the radius and angle of (x, y) around a center.
func CartesianToPolar(x, y, cx, cy float64) (radius, theta float64) {
	dx := x - cx
	dy := y - cy
	return math.Hypot(dx, dy), math.Atan2(dy, dx)
}

// NormalizeAngle wraps an angle in radians into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}

// LerpAngle interpolates two radian angles along the shorter arc.
func LerpAngle(a, b, t float64) float64 {
	diff := math.Mod(b-a+math.Pi, TwoPi)
	if diff < 0 {
		diff += TwoPi
	}
	diff -= math.Pi
	return a + diff*t
}

// LerpHue interpolates two hues in degrees along the shorter arc and returns
// a hue in [0, 360).
func LerpHue(a, b, t float64) float64 {
	diff := math.Mod(b-a, 360)
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}
	h := math.Mod(a+diff*t, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
