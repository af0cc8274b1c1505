package pattern

import (
	"math"

	"github.com/MeKo-Tech/pixeltex/internal/palette"
	"github.com/MeKo-Tech/pixeltex/internal/rng"
)

// RoofTile renders clay roof tiles in a running bond: every other tile
// row shifts by half a tile, each tile's cross-section curves with a
// sinusoid over its local height to fake convexity, tile boundaries drop
// to the darkest stop, and each tile perturbs its color through a
// tile-indexed PRNG so neighbors stay visibly distinct.
func RoofTile(opts Options) (Grid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	stops := palette.Terracotta.Stops()
	seam := stops[0]

	tileW := opts.Scale * 2
	tileH := opts.Scale

	tileJitter := func(tileCol, tileRow int) float64 {
		// Large prime strides keep the per-tile streams decorrelated.
		r := rng.New(opts.Seed + int64(tileRow)*15485863 + int64(tileCol)*32452843)
		return (r.Float64() - 0.5) * opts.Variation * 0.5
	}

	grid := NewGrid(opts.Width, opts.Height)
	for y := 0; y < opts.Height; y++ {
		tileRow := y / tileH
		localY := y % tileH

		// Running bond: odd rows shift by half a tile.
		offset := 0
		if tileRow%2 == 1 {
			offset = tileW / 2
		}

		for x := 0; x < opts.Width; x++ {
			shifted := x + offset
			tileCol := shifted / tileW
			localX := shifted % tileW

			if localX == 0 || localY == 0 {
				grid[y][x] = seam
				continue
			}

			// Convex clay cross-section: bright at the crown, dark in
			// the trough.
			curve := math.Sin(math.Pi * float64(localY) / float64(tileH))
			v := 0.2 + curve*0.6 + tileJitter(tileCol, tileRow)
			grid[y][x] = bucket(stops, v)
		}
	}

	return grid, nil
}
