package pattern

import (
	"github.com/MeKo-Tech/pixeltex/internal/palette"
	"github.com/MeKo-Tech/pixeltex/internal/rng"
)

// LateriteSoil renders packed reddish earth: a coarse clump value per
// scale-sized cell, drawn from a PRNG reseeded from (cellX, cellY, seed)
// so clumps do not depend on pixel iteration order, blended with fine
// per-pixel jitter and bucketed into light, base, and dark soil tones.
func LateriteSoil(opts Options) (Grid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := rng.New(opts.Seed)
	light := palette.Laterite.Light.Color
	base := palette.Laterite.Mid.Color
	dark := palette.Laterite.Dark.Color

	clump := func(cellX, cellY int) float64 {
		cell := rng.New(opts.Seed + int64(cellX)*7919 + int64(cellY)*104729)
		return cell.Float64()
	}

	grid := NewGrid(opts.Width, opts.Height)
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			coarse := clump(x/opts.Scale, y/opts.Scale)
			fine := (r.Float64() - 0.5) * (0.2 + opts.Variation*0.4)
			v := coarse*0.7 + 0.15 + fine

			switch {
			case v < 0.35:
				grid[y][x] = dark
			case v > 0.65:
				grid[y][x] = light
			default:
				grid[y][x] = base
			}
		}
	}

	return grid, nil
}
