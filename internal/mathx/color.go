package mathx

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// White is the neutral color token. It parses as hsl(0, 0%, 100%) but carries
// no hue of its own.
const White = "white"

// HSL is a hue (degrees), saturation and lightness (percent) triple.
type HSL struct {
	H, S, L float64
}

// WhiteHSL is the parsed form of the White token.
var WhiteHSL = HSL{H: 0, S: 0, L: 100}

var hslPattern = regexp.MustCompile(`^hsl\(\s*(-?\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)%\s*,\s*(\d+(?:\.\d+)?)%\s*\)$`)

// ParseHSL parses an "hsl(h, s%, l%)" token or the literal "white".
func ParseHSL(token string) (HSL, bool) {
	s := strings.ToLower(strings.TrimSpace(token))
	if s == White {
		return WhiteHSL, true
	}
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return HSL{}, false
	}
	h, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return HSL{}, false
	}
	sat, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return HSL{}, false
	}
	l, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return HSL{}, false
	}
	return HSL{H: h, S: sat, L: l}, true
}

// IsWhite reports whether token is the neutral color.
func IsWhite(token string) bool {
	return strings.EqualFold(strings.TrimSpace(token), White)
}

// String formats the color as a token with integer components.
func (c HSL) String() string {
	h := int(math.Round(c.H)) % 360
	if h < 0 {
		h += 360
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, int(math.Round(c.S)), int(math.Round(c.L)))
}

// LerpHSL blends hue along the shorter arc and saturation/lightness linearly.
func LerpHSL(a, b HSL, t float64) HSL {
	return HSL{
		H: LerpHue(a.H, b.H, t),
		S: Lerp(a.S, b.S, t),
		L: Lerp(a.L, b.L, t),
	}
}

// FromWhite fades c in from white: t=0 is fully desaturated at full
// lightness, t=1 is c itself. The hue is kept so the fade never drifts.
func FromWhite(c HSL, t float64) HSL {
	return HSL{H: c.H, S: Lerp(0, c.S, t), L: Lerp(100, c.L, t)}
}

// Palettes walked by Cycle.
var (
	CycleThree = []HSL{
		{H: 180, S: 100, L: 70},
		{H: 300, S: 100, L: 70},
		{H: 240, S: 100, L: 80},
	}
	CycleBlue = []HSL{
		{H: 200, S: 100, L: 70},
		{H: 220, S: 100, L: 75},
		{H: 190, S: 90, L: 80},
	}
)

// Cycle walks the palette once per period seconds. offset in [0, 1) shifts
// the phase per particle and progress fades the result in from white.
func Cycle(time, offset, progress, period float64, palette []HSL) HSL {
	n := len(palette)
	if n == 0 {
		return WhiteHSL
	}
	if period <= 0 {
		period = 1
	}
	phase := time/period + offset
	phase -= math.Floor(phase)
	pos := phase * float64(n)
	i := int(pos) % n
	f := pos - math.Floor(pos)
	c := LerpHSL(palette[i], palette[(i+1)%n], EaseInOutSine(f))
	return FromWhite(c, Clamp01(progress))
}
