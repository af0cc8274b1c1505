package pattern

import (
	"math"

	"github.com/MeKo-Tech/pixeltex/internal/palette"
	"github.com/MeKo-Tech/pixeltex/internal/rng"
)

// WoodGrain renders horizontal plank grain: each row gets a random phase
// offsetting a sine wave along x, so adjacent rows drift against each
// other the way sawn grain does. Rare PRNG draws above 0.995 force a
// knot pixel at the darkest stop.
func WoodGrain(opts Options) (Grid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := rng.New(opts.Seed)
	stops := palette.Wood.Stops()
	grid := NewGrid(opts.Width, opts.Height)

	for y := 0; y < opts.Height; y++ {
		phase := r.Float64() * 2 * math.Pi
		for x := 0; x < opts.Width; x++ {
			wave := math.Sin(float64(x)/float64(opts.Scale) + phase)
			v := (wave + 1) / 2
			v += (r.Float64() - 0.5) * opts.Variation * 0.4

			if r.Float64() > 0.995 {
				// Knot
				grid[y][x] = stops[0]
				continue
			}

			grid[y][x] = bucket(stops, v)
		}
	}

	return grid, nil
}
