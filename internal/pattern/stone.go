package pattern

import (
	"image/color"

	"github.com/MeKo-Tech/pixeltex/internal/palette"
	"github.com/MeKo-Tech/pixeltex/internal/rng"
)

// Stone renders cobblestone: the canvas partitions into scale-sized
// cells, each cell drawing a ramp band plus a small jitter, with cell
// edges forced to the mortar color so grout lines stay visible at any
// variation setting.
func Stone(opts Options) (Grid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := rng.New(opts.Seed)
	stops := palette.Stone.Stops()
	mortar := stops[0]

	cols := (opts.Width + opts.Scale - 1) / opts.Scale
	rows := (opts.Height + opts.Scale - 1) / opts.Scale

	// Per-cell colors are drawn up front in row-major order so the pixel
	// loop below cannot perturb the stream.
	cells := make([]color.RGBA, cols*rows)
	for i := range cells {
		v := 0.3 + r.Float64()*0.6
		v += (r.Float64() - 0.5) * opts.Variation * 0.3
		cells[i] = bucket(stops, v)
	}

	grid := NewGrid(opts.Width, opts.Height)
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			if x%opts.Scale == 0 || y%opts.Scale == 0 {
				grid[y][x] = mortar
				continue
			}
			cell := (y/opts.Scale)*cols + x/opts.Scale
			grid[y][x] = cells[cell]
		}
	}

	return grid, nil
}
