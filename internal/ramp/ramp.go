// Package ramp provides color ramps and derived shading for pixel-art
// style texture generation. A ramp is an ordered run of colors from
// deepest shadow to brightest highlight; generators sample it by position
// to turn a scalar noise value into a shaded pixel.
package ramp

import (
	"image/color"

	"github.com/MeKo-Tech/pixeltex/internal/colorutil"
)

// Ramp is the legacy 4-stop ramp of packed colors, ordered brightest to
// darkest. The sampler does not enforce monotonic luminance; callers are
// expected to supply perceptually ordered stops.
type Ramp struct {
	Highlight int
	Base      int
	Shadow    int
	Deep      int
}

// Entry is a single named stop of an extended ramp.
type Entry struct {
	Name  string
	Hex   string
	Color color.RGBA
	Usage string
}

// Extended is the 5-stop ramp used where smoother gradation is needed
// (skin, stone, terracotta, wood, water, foliage).
type Extended struct {
	Highlight Entry
	Light     Entry
	Mid       Entry
	Dark      Entry
	Shadow    Entry
}

// Stops returns the extended ramp's colors ordered darkest to brightest.
func (e Extended) Stops() [5]color.RGBA {
	return [5]color.RGBA{
		e.Shadow.Color,
		e.Dark.Color,
		e.Mid.Color,
		e.Light.Color,
		e.Highlight.Color,
	}
}

// At samples the ramp at a position in [0, 1]. The domain splits into
// three equal thirds: [0, .33] interpolates deep to shadow, (.33, .66]
// shadow to base, (.66, 1] base to highlight, each sub-interval
// re-normalized before interpolation. Positions outside [0, 1] clamp.
func (r Ramp) At(position float64) color.RGBA {
	if position <= 0 {
		return colorutil.FromInt(r.Deep)
	}
	if position >= 1 {
		return colorutil.FromInt(r.Highlight)
	}

	switch {
	case position <= 0.33:
		t := position / 0.33
		return colorutil.Lerp(colorutil.FromInt(r.Deep), colorutil.FromInt(r.Shadow), t)
	case position <= 0.66:
		t := (position - 0.33) / 0.33
		return colorutil.Lerp(colorutil.FromInt(r.Shadow), colorutil.FromInt(r.Base), t)
	default:
		t := (position - 0.66) / 0.34
		return colorutil.Lerp(colorutil.FromInt(r.Base), colorutil.FromInt(r.Highlight), t)
	}
}
