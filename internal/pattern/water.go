package pattern

import (
	"image/color"
	"math"

	"github.com/MeKo-Tech/pixeltex/internal/colorutil"
	"github.com/MeKo-Tech/pixeltex/internal/palette"
	"github.com/MeKo-Tech/pixeltex/internal/rng"
)

// WaterFrames is the animation period of the water ripple pattern.
const WaterFrames = 8

// WaterRipple renders animated water: three sine waves at different
// spatial frequencies sum into a ripple field whose phase advances with
// the frame index. Phase is frame/8 of a full turn, so frame 8 loops
// back to frame 0 exactly. The brightest band blends toward white as a
// specular highlight.
func WaterRipple(opts Options, frame int) (Grid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Reduce the frame first so frame 8 reproduces frame 0 bit for bit;
	// sin(x+2π) is not exact in floating point.
	frame = ((frame % WaterFrames) + WaterFrames) % WaterFrames
	phase := float64(frame) / WaterFrames * 2 * math.Pi
	r := rng.New(opts.Seed)
	stops := palette.WaterBlue.Stops()
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	scale := float64(opts.Scale)

	grid := NewGrid(opts.Width, opts.Height)
	for y := 0; y < opts.Height; y++ {
		fy := float64(y)
		for x := 0; x < opts.Width; x++ {
			fx := float64(x)

			wave := math.Sin(fx/scale+phase) +
				0.6*math.Sin((fx*0.7+fy*1.3)/scale+phase*2) +
				0.4*math.Sin((fx*1.9-fy*0.5)/scale+phase*3)

			// Sum of amplitudes is 2, so wave is in [-2, 2].
			v := (wave + 2) / 4
			v += (r.Float64() - 0.5) * opts.Variation * 0.2

			if v >= 0.8 {
				// Specular band
				grid[y][x] = colorutil.Lerp(stops[4], white, 0.5)
				continue
			}
			grid[y][x] = bucket(stops, v)
		}
	}

	return grid, nil
}
