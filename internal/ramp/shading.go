package ramp

import (
	"image/color"
	"math"

	"github.com/MeKo-Tech/pixeltex/internal/colorutil"
)

// Highlight lightens a color by intensity, pushing lightness toward 1 by
// the given fraction of the remaining headroom. Highlights are slightly
// desaturated so bright areas wash out the way pigment does. Alpha is
// preserved.
func Highlight(c color.RGBA, intensity float64) color.RGBA {
	intensity = clamp01(intensity)
	hsl := colorutil.ToHSL(c)
	hsl.L += intensity * (1 - hsl.L)
	hsl.S *= 1 - intensity*0.2
	return colorutil.FromHSL(hsl, c.A)
}

// Shadow darkens a color by intensity, pulling lightness toward 0 and
// shifting hue toward blue to mimic the cool tint of occluded areas.
// Alpha is preserved.
func Shadow(c color.RGBA, intensity float64) color.RGBA {
	intensity = clamp01(intensity)
	hsl := colorutil.ToHSL(c)
	hsl.L -= intensity * hsl.L
	hsl.H = math.Mod(hsl.H+intensity*15, 360)
	return colorutil.FromHSL(hsl, c.A)
}

// ShadingRamp derives a full ramp from a single base color: stops below
// the midpoint are progressively deeper shadows, stops above it
// progressively stronger highlights. steps <= 0 defaults to 5. The result
// is ordered darkest to brightest.
func ShadingRamp(base color.RGBA, steps int) []color.RGBA {
	if steps <= 0 {
		steps = 5
	}

	mid := steps / 2
	out := make([]color.RGBA, steps)
	for i := 0; i < steps; i++ {
		switch {
		case i < mid:
			intensity := float64(mid-i) / float64(mid+1)
			out[i] = Shadow(base, intensity)
		case i == mid:
			out[i] = base
		default:
			intensity := float64(i-mid) / float64(steps-mid)
			out[i] = Highlight(base, intensity)
		}
	}
	return out
}

// AmbientOcclusion darkens center based on how many of its 8 neighbors
// are solid (alpha > 128). The solid fraction scaled by strength becomes
// a Shadow intensity, approximating occlusion from local opacity alone.
func AmbientOcclusion(center color.RGBA, neighbors [8]color.RGBA, strength float64) color.RGBA {
	solid := 0
	for _, n := range neighbors {
		if n.A > 128 {
			solid++
		}
	}
	occlusion := float64(solid) / 8 * clamp01(strength)
	if occlusion == 0 {
		return center
	}
	return Shadow(center, occlusion)
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
