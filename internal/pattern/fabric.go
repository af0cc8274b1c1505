package pattern

import (
	"image/color"

	"github.com/MeKo-Tech/pixeltex/internal/colorutil"
	"github.com/MeKo-Tech/pixeltex/internal/palette"
	"github.com/MeKo-Tech/pixeltex/internal/ramp"
	"github.com/MeKo-Tech/pixeltex/internal/rng"
)

// Default thread colors for the dispatcher; dedicated call sites supply
// their own warp/weft pair.
var (
	defaultWarp = palette.Hemp.Light.Color
	defaultWeft = palette.Hemp.Dark.Color
)

// FabricWeave renders a plain weave: warp and weft alternate in a
// scale-sized checkerboard, and every pixel shifts slightly toward its
// own shadow by a PRNG thread jitter so the cloth reads as fiber rather
// than flat squares.
func FabricWeave(opts Options, warp, weft color.RGBA) (Grid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := rng.New(opts.Seed)
	grid := NewGrid(opts.Width, opts.Height)

	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			c := warp
			if (x/opts.Scale+y/opts.Scale)%2 == 1 {
				c = weft
			}

			jitter := r.Float64() * opts.Variation * 0.35
			grid[y][x] = colorutil.Lerp(c, ramp.Shadow(c, 0.5), jitter)
		}
	}

	return grid, nil
}
