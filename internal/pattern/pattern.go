// Package pattern contains the parametric texture generators. Each
// generator consumes the rng/noise/colorutil/ramp primitives and produces
// a full 2D RGBA grid for the requested size, deterministically for a
// given seed.
package pattern

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidDimensions reports non-positive width, height, or scale.
var ErrInvalidDimensions = errors.New("invalid pattern dimensions")

// Options is the common parameter set for all generators. Scale sets the
// characteristic feature size in pixels; Variation runs from 0 (perfectly
// regular) to 1 (maximally noisy); Seed makes generation reproducible.
type Options struct {
	Width     int
	Height    int
	Scale     int
	Variation float64
	Seed      int64
}

// Validate fails fast on malformed options. Callers allocate spritesheet
// regions from these dimensions, so a silent empty grid is never
// acceptable.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, o.Width, o.Height)
	}
	if o.Scale < 1 {
		return fmt.Errorf("%w: scale %d", ErrInvalidDimensions, o.Scale)
	}
	if o.Variation < 0 || o.Variation > 1 {
		return fmt.Errorf("%w: variation %v outside [0,1]", ErrInvalidDimensions, o.Variation)
	}
	return nil
}

// Grid is a height×width pixel grid. The caller owns a returned grid
// outright; generators retain no reference after returning.
type Grid [][]color.RGBA

// NewGrid allocates a w×h grid of zero pixels.
func NewGrid(w, h int) Grid {
	g := make(Grid, h)
	for y := range g {
		g[y] = make([]color.RGBA, w)
	}
	return g
}

// Width returns the grid width in pixels.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the grid height in pixels.
func (g Grid) Height() int {
	return len(g)
}

// ToImage copies the grid into a stdlib RGBA image for the raster layers
// (PNG encoding, filtering, upscaling).
func (g Grid) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y, row := range g {
		for x, px := range row {
			img.SetRGBA(x, y, px)
		}
	}
	return img
}

// bucket maps a scalar in [0, 1] onto one of the five ramp stops by
// linear bucketing. Values outside the interval clamp to the end stops.
func bucket(stops [5]color.RGBA, v float64) color.RGBA {
	if v <= 0 {
		return stops[0]
	}
	band := int(v * 5)
	if band > 4 {
		band = 4
	}
	return stops[band]
}

// Kind selects a pattern generator.
type Kind int

const (
	KindWoodGrain Kind = iota
	KindStone
	KindFabricWeave
	KindWaterRipple
	KindLateriteSoil
	KindRoofTile
)

// Kinds lists every generator in a stable order.
var Kinds = []Kind{
	KindWoodGrain,
	KindStone,
	KindFabricWeave,
	KindWaterRipple,
	KindLateriteSoil,
	KindRoofTile,
}

// ErrUnknownKind reports an unrecognized pattern kind name.
var ErrUnknownKind = errors.New("unknown pattern kind")

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindWoodGrain:
		return "wood"
	case KindStone:
		return "stone"
	case KindFabricWeave:
		return "fabric"
	case KindWaterRipple:
		return "water"
	case KindLateriteSoil:
		return "laterite"
	case KindRoofTile:
		return "roof"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a generator name to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Generate dispatches to the generator for the given kind. frame is only
// meaningful for the water ripple pattern and ignored elsewhere; fabric
// uses the hemp ramp's light and dark stops as its two thread colors.
func Generate(kind Kind, opts Options, frame int) (Grid, error) {
	switch kind {
	case KindWoodGrain:
		return WoodGrain(opts)
	case KindStone:
		return Stone(opts)
	case KindFabricWeave:
		return FabricWeave(opts, defaultWarp, defaultWeft)
	case KindWaterRipple:
		return WaterRipple(opts, frame)
	case KindLateriteSoil:
		return LateriteSoil(opts)
	case KindRoofTile:
		return RoofTile(opts)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}
