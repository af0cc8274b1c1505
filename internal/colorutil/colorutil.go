// Package colorutil provides the color model shared by all texture
// generators: hex parsing, HSL conversion, packed-integer colors,
// interpolation, blending, and palette matching. All functions are pure
// and operate on stdlib color.RGBA values.
package colorutil

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidFormat reports a malformed hex color string.
var ErrInvalidFormat = errors.New("invalid hex color format")

// HSL is a color in hue/saturation/lightness space. Hue is in degrees
// [0, 360), saturation and lightness in [0, 1].
type HSL struct {
	H float64
	S float64
	L float64
}

// ParseHex parses a 3- or 6-digit hex color string, with or without a
// leading '#'. The 3-digit short form duplicates each nibble. The given
// alpha is attached to the result.
func ParseHex(hex string, alpha uint8) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")

	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: alpha,
	}, nil
}

// ToHex formats a color as an uppercase hex string with a leading '#'.
func ToHex(c color.RGBA, includeAlpha bool) string {
	if includeAlpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ToHSL converts a color to HSL space. Alpha is ignored.
func ToHSL(c color.RGBA) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxv := math.Max(r, math.Max(g, b))
	minv := math.Min(r, math.Min(g, b))
	l := (maxv + minv) / 2

	if maxv == minv {
		// Achromatic
		return HSL{H: 0, S: 0, L: l}
	}

	d := maxv - minv
	var s float64
	if l > 0.5 {
		s = d / (2 - maxv - minv)
	} else {
		s = d / (maxv + minv)
	}

	var h float64
	switch maxv {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{H: math.Mod(h, 360), S: s, L: l}
}

// FromHSL converts an HSL color back to RGBA with the given alpha.
func FromHSL(hsl HSL, alpha uint8) color.RGBA {
	if hsl.S == 0 {
		v := clampU8(math.Round(hsl.L * 255))
		return color.RGBA{R: v, G: v, B: v, A: alpha}
	}

	h := math.Mod(math.Mod(hsl.H, 360)+360, 360) / 360

	var q float64
	if hsl.L < 0.5 {
		q = hsl.L * (1 + hsl.S)
	} else {
		q = hsl.L + hsl.S - hsl.L*hsl.S
	}
	p := 2*hsl.L - q

	r := hueToChannel(p, q, h+1.0/3)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3)

	return color.RGBA{
		R: clampU8(math.Round(r * 255)),
		G: clampU8(math.Round(g * 255)),
		B: clampU8(math.Round(b * 255)),
		A: alpha,
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// ToInt packs a color into a 24-bit integer (R<<16 | G<<8 | B). Alpha is
// dropped.
func ToInt(c color.RGBA) int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

// FromInt unpacks a 24-bit integer into an opaque color.
func FromInt(v int) color.RGBA {
	return color.RGBA{
		R: uint8(v >> 16 & 0xFF),
		G: uint8(v >> 8 & 0xFF),
		B: uint8(v & 0xFF),
		A: 255,
	}
}

// IntToHex formats a packed color as an uppercase hex string.
func IntToHex(v int) string {
	return ToHex(FromInt(v), false)
}

// Lerp interpolates between two colors per channel. t is clamped to [0,1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

// LerpInt is the packed-integer variant of Lerp.
func LerpInt(a, b int, t float64) int {
	return ToInt(Lerp(FromInt(a), FromInt(b), t))
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return clampU8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// BlendAlpha composites fg over bg using fg's alpha as the mix weight.
// The result is always opaque; fg.A == 255 returns fg's channels exactly.
func BlendAlpha(fg, bg color.RGBA) color.RGBA {
	a := float64(fg.A) / 255
	return color.RGBA{
		R: clampU8(math.Round(float64(fg.R)*a + float64(bg.R)*(1-a))),
		G: clampU8(math.Round(float64(fg.G)*a + float64(bg.G)*(1-a))),
		B: clampU8(math.Round(float64(fg.B)*a + float64(bg.B)*(1-a))),
		A: 255,
	}
}

// Multiply applies the multiply blend mode channel-wise.
func Multiply(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(int(a.R) * int(b.R) / 255),
		G: uint8(int(a.G) * int(b.G) / 255),
		B: uint8(int(a.B) * int(b.B) / 255),
		A: uint8(int(a.A) * int(b.A) / 255),
	}
}

// Screen applies the screen blend mode channel-wise.
func Screen(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(255 - (255-int(a.R))*(255-int(b.R))/255),
		G: uint8(255 - (255-int(a.G))*(255-int(b.G))/255),
		B: uint8(255 - (255-int(a.B))*(255-int(b.B))/255),
		A: uint8(255 - (255-int(a.A))*(255-int(b.A))/255),
	}
}

// Average returns the unweighted arithmetic mean of all channels,
// including alpha. This is the historical behavior of the call sites it
// serves; it is not an "over" composite (use BlendAlpha for that).
func Average(colors []color.RGBA) color.RGBA {
	if len(colors) == 0 {
		return color.RGBA{}
	}
	var r, g, b, a int
	for _, c := range colors {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
		a += int(c.A)
	}
	n := len(colors)
	return color.RGBA{
		R: uint8(r / n),
		G: uint8(g / n),
		B: uint8(b / n),
		A: uint8(a / n),
	}
}

// Metric selects the distance function used for palette matching.
type Metric int

const (
	// MetricRGB is plain Euclidean distance in RGB space.
	MetricRGB Metric = iota
	// MetricPerceptual is the red-mean weighted Euclidean distance.
	// Prefer it when matching against a fixed palette; plain Euclidean
	// distance misjudges perceived similarity for saturated hues.
	MetricPerceptual
	// MetricLab is CIE Lab distance.
	MetricLab
)

// DistanceRGB returns the Euclidean distance between two colors in RGB.
func DistanceRGB(a, b color.RGBA) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// DistancePerceptual returns the red-mean weighted Euclidean distance,
// a cheap approximation of perceived color difference.
func DistancePerceptual(a, b color.RGBA) float64 {
	rmean := (float64(a.R) + float64(b.R)) / 2
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt((2+rmean/256)*dr*dr + 4*dg*dg + (2+(255-rmean)/256)*db*db)
}

// DistanceLab returns the CIE Lab distance between two colors.
func DistanceLab(a, b color.RGBA) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.DistanceLab(cb)
}

// Distance dispatches to the distance function for the given metric.
func Distance(a, b color.RGBA, metric Metric) float64 {
	switch metric {
	case MetricPerceptual:
		return DistancePerceptual(a, b)
	case MetricLab:
		return DistanceLab(a, b)
	default:
		return DistanceRGB(a, b)
	}
}

// FindClosest scans the palette for the entry nearest to target under the
// given metric. Ties resolve to the first entry reaching the minimum
// distance. An empty palette returns the zero color with +Inf distance.
func FindClosest(target color.RGBA, palette []color.RGBA, metric Metric) (color.RGBA, float64) {
	best := color.RGBA{}
	bestDist := math.Inf(1)
	for _, c := range palette {
		d := Distance(target, c, metric)
		if d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, bestDist
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clampU8(x float64) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
