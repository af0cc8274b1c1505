// Package dither implements ordered (Bayer) dithering: approximating a
// continuous two-color gradient within a fixed small palette by comparing
// a blend ratio against a tileable spatial threshold pattern.
package dither

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"

	"github.com/MeKo-Tech/pixeltex/internal/colorutil"
)

// ErrUnknownPattern reports an unrecognized dither pattern value.
var ErrUnknownPattern = errors.New("unknown dither pattern")

// Matrix is a square Bayer threshold matrix. Entries divided by size²
// give per-cell thresholds in [0, 1).
type Matrix [][]int

// The standard Bayer matrices.
var (
	Bayer2x2 = Matrix{
		{0, 2},
		{3, 1},
	}

	Bayer4x4 = Matrix{
		{0, 8, 2, 10},
		{12, 4, 14, 6},
		{3, 11, 1, 9},
		{15, 7, 13, 5},
	}

	Bayer8x8 = Matrix{
		{0, 32, 8, 40, 2, 34, 10, 42},
		{48, 16, 56, 24, 50, 18, 58, 26},
		{12, 44, 4, 36, 14, 46, 6, 38},
		{60, 28, 52, 20, 62, 30, 54, 22},
		{3, 35, 11, 43, 1, 33, 9, 41},
		{51, 19, 59, 27, 49, 17, 57, 25},
		{15, 47, 7, 39, 13, 45, 5, 37},
		{63, 31, 55, 23, 61, 29, 53, 21},
	}
)

// Pattern selects the threshold source for dithering.
type Pattern int

const (
	// PatternBayer2x2 uses the 2x2 Bayer matrix.
	PatternBayer2x2 Pattern = iota
	// PatternBayer4x4 uses the 4x4 Bayer matrix.
	PatternBayer4x4
	// PatternOrdered uses the 8x8 Bayer matrix.
	PatternOrdered
	// PatternNoise draws a uniform random threshold per pixel. It is the
	// only non-deterministic pattern; callers that need reproducible
	// output must use one of the Bayer patterns.
	PatternNoise
)

// String implements fmt.Stringer for diagnostics.
func (p Pattern) String() string {
	switch p {
	case PatternBayer2x2:
		return "bayer2x2"
	case PatternBayer4x4:
		return "bayer4x4"
	case PatternOrdered:
		return "ordered"
	case PatternNoise:
		return "noise"
	default:
		return fmt.Sprintf("pattern(%d)", int(p))
	}
}

// ParsePattern maps a pattern name to its Pattern value.
func ParsePattern(name string) (Pattern, error) {
	switch name {
	case "bayer2x2":
		return PatternBayer2x2, nil
	case "bayer4x4":
		return PatternBayer4x4, nil
	case "ordered":
		return PatternOrdered, nil
	case "noise":
		return PatternNoise, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
}

// Threshold returns the dither threshold for a pixel position. The
// matrix is indexed modulo its size, so the threshold field tiles and is
// independent of grid origin.
func Threshold(x, y int, m Matrix) float64 {
	n := len(m)
	xi := x % n
	if xi < 0 {
		xi += n
	}
	yi := y % n
	if yi < 0 {
		yi += n
	}
	return float64(m[yi][xi]) / float64(n*n)
}

// Pixel returns b if ratio exceeds the threshold at (x, y), else a. For
// the Bayer patterns this is a pure function of its inputs; ratio 0
// always yields a and ratio 1 always yields b, since no threshold
// reaches 1.
func Pixel(x, y int, ratio float64, a, b color.RGBA, pattern Pattern) color.RGBA {
	var threshold float64
	switch pattern {
	case PatternBayer2x2:
		threshold = Threshold(x, y, Bayer2x2)
	case PatternBayer4x4:
		threshold = Threshold(x, y, Bayer4x4)
	case PatternOrdered:
		threshold = Threshold(x, y, Bayer8x8)
	case PatternNoise:
		threshold = rand.Float64()
	default:
		// Unknown values fall back to the finest deterministic matrix;
		// ParsePattern is the validating boundary for external input.
		threshold = Threshold(x, y, Bayer8x8)
	}

	if ratio > threshold {
		return b
	}
	return a
}

// Gradient renders a w×h two-color gradient, sweeping the blend ratio
// linearly from 0 to 1 across the chosen axis and dithering every pixel.
func Gradient(w, h int, a, b color.RGBA, horizontal bool, pattern Pattern) [][]color.RGBA {
	grid := make([][]color.RGBA, h)
	for y := 0; y < h; y++ {
		row := make([]color.RGBA, w)
		for x := 0; x < w; x++ {
			var ratio float64
			if horizontal {
				ratio = float64(x) / float64(max(w-1, 1))
			} else {
				ratio = float64(y) / float64(max(h-1, 1))
			}
			row[x] = Pixel(x, y, ratio, a, b, pattern)
		}
		grid[y] = row
	}
	return grid
}

// Quantize maps every pixel onto the palette. With dithering enabled each
// pixel dithers between its two nearest palette colors (by perceptual
// distance) with a mix ratio from their relative distances, giving
// dithered posterization instead of a hard nearest-color snap.
func Quantize(pixels [][]color.RGBA, palette []color.RGBA, useDithering bool) [][]color.RGBA {
	if len(palette) == 0 {
		return pixels
	}

	out := make([][]color.RGBA, len(pixels))
	for y, row := range pixels {
		outRow := make([]color.RGBA, len(row))
		for x, px := range row {
			if !useDithering || len(palette) < 2 {
				outRow[x], _ = colorutil.FindClosest(px, palette, colorutil.MetricPerceptual)
				continue
			}
			first, second, d1, d2 := twoClosest(px, palette)
			if d1+d2 == 0 {
				outRow[x] = first
				continue
			}
			ratio := d1 / (d1 + d2)
			outRow[x] = Pixel(x, y, ratio, first, second, PatternOrdered)
		}
		out[y] = outRow
	}
	return out
}

// twoClosest returns the two nearest palette entries by perceptual
// distance, preserving palette order on ties.
func twoClosest(target color.RGBA, palette []color.RGBA) (first, second color.RGBA, d1, d2 float64) {
	d1 = -1
	d2 = -1
	for _, c := range palette {
		d := colorutil.DistancePerceptual(target, c)
		switch {
		case d1 < 0 || d < d1:
			second, d2 = first, d1
			first, d1 = c, d
		case d2 < 0 || d < d2:
			second, d2 = c, d
		}
	}
	return first, second, d1, d2
}
