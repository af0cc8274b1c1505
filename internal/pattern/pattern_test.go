package pattern

import (
	"errors"
	"image/color"
	"testing"

	"github.com/MeKo-Tech/pixeltex/internal/palette"
)

func gridsEqual(a, b Grid) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

var baseOpts = Options{Width: 32, Height: 32, Scale: 4, Variation: 0.5, Seed: 42}

func TestGeneratorsDeterministic(t *testing.T) {
	for _, kind := range Kinds {
		a, err := Generate(kind, baseOpts, 3)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		b, err := Generate(kind, baseOpts, 3)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if !gridsEqual(a, b) {
			t.Errorf("%s: repeated generation with identical arguments differs", kind)
		}
		if a.Width() != baseOpts.Width || a.Height() != baseOpts.Height {
			t.Errorf("%s: grid is %dx%d, want %dx%d", kind, a.Width(), a.Height(), baseOpts.Width, baseOpts.Height)
		}
	}
}

func TestGeneratorsSeedSensitive(t *testing.T) {
	for _, kind := range Kinds {
		a, _ := Generate(kind, baseOpts, 0)
		other := baseOpts
		other.Seed = 43
		b, _ := Generate(kind, other, 0)
		if gridsEqual(a, b) {
			t.Errorf("%s: different seeds produced identical grids", kind)
		}
	}
}

func TestOptionsValidation(t *testing.T) {
	bad := []Options{
		{Width: 0, Height: 32, Scale: 4},
		{Width: 32, Height: -1, Scale: 4},
		{Width: 32, Height: 32, Scale: 0},
		{Width: 32, Height: 32, Scale: 4, Variation: -0.1},
		{Width: 32, Height: 32, Scale: 4, Variation: 1.1},
	}
	for _, opts := range bad {
		for _, kind := range Kinds {
			if _, err := Generate(kind, opts, 0); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("%s with %+v: expected ErrInvalidDimensions, got %v", kind, opts, err)
			}
		}
	}
}

func TestWoodGrainKnots(t *testing.T) {
	opts := Options{Width: 64, Height: 64, Scale: 4, Variation: 0.3, Seed: 12345}
	a, err := WoodGrain(opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := WoodGrain(opts)
	if err != nil {
		t.Fatal(err)
	}
	if !gridsEqual(a, b) {
		t.Fatal("wood grain not reproducible")
	}

	darkest := palette.Wood.Stops()[0]
	found := 0
	for _, row := range a {
		for _, px := range row {
			if px == darkest {
				found++
			}
		}
	}
	if found == 0 {
		t.Error("expected at least one knot pixel at the darkest stop over 4096 pixels")
	}
}

func TestStoneMortarLines(t *testing.T) {
	opts := Options{Width: 48, Height: 48, Scale: 8, Variation: 0.6, Seed: 99}
	grid, err := Stone(opts)
	if err != nil {
		t.Fatal(err)
	}
	mortar := palette.Stone.Stops()[0]
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			onEdge := x%8 == 0 || y%8 == 0
			if onEdge && grid[y][x] != mortar {
				t.Fatalf("pixel (%d,%d) on cell edge = %v, want mortar %v", x, y, grid[y][x], mortar)
			}
		}
	}
}

func TestStoneCellsVary(t *testing.T) {
	opts := Options{Width: 64, Height: 64, Scale: 8, Variation: 0.4, Seed: 5}
	grid, _ := Stone(opts)
	// Sample one interior pixel per cell; cells must not all agree.
	seen := make(map[color.RGBA]bool)
	for cy := 0; cy < 8; cy++ {
		for cx := 0; cx < 8; cx++ {
			seen[grid[cy*8+4][cx*8+4]] = true
		}
	}
	if len(seen) < 2 {
		t.Error("all stone cells share one color")
	}
}

func TestFabricWeaveCheckerboard(t *testing.T) {
	warp := color.RGBA{R: 220, G: 210, B: 180, A: 255}
	weft := color.RGBA{R: 160, G: 140, B: 100, A: 255}
	opts := Options{Width: 16, Height: 16, Scale: 4, Variation: 0, Seed: 1}
	grid, err := FabricWeave(opts, warp, weft)
	if err != nil {
		t.Fatal(err)
	}
	// With zero variation the weave is an exact checkerboard.
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := warp
			if (x/4+y/4)%2 == 1 {
				want = weft
			}
			if grid[y][x] != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, grid[y][x], want)
			}
		}
	}
}

func TestWaterRippleLoops(t *testing.T) {
	opts := Options{Width: 32, Height: 32, Scale: 4, Variation: 0.3, Seed: 7}
	first, err := WaterRipple(opts, 0)
	if err != nil {
		t.Fatal(err)
	}
	looped, err := WaterRipple(opts, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !gridsEqual(first, looped) {
		t.Error("frame 8 should reproduce frame 0 exactly")
	}

	mid, err := WaterRipple(opts, 4)
	if err != nil {
		t.Fatal(err)
	}
	if gridsEqual(first, mid) {
		t.Error("frame 4 should differ from frame 0")
	}
}

func TestLateriteSoilTones(t *testing.T) {
	opts := Options{Width: 32, Height: 32, Scale: 4, Variation: 0.5, Seed: 99}
	grid, err := LateriteSoil(opts)
	if err != nil {
		t.Fatal(err)
	}
	light := palette.Laterite.Light.Color
	base := palette.Laterite.Mid.Color
	dark := palette.Laterite.Dark.Color
	counts := map[color.RGBA]int{}
	for _, row := range grid {
		for _, px := range row {
			if px != light && px != base && px != dark {
				t.Fatalf("unexpected soil color %v", px)
			}
			counts[px]++
		}
	}
	for _, c := range []color.RGBA{light, base, dark} {
		if counts[c] == 0 {
			t.Errorf("soil tone %v never appears", c)
		}
	}
}

func TestRoofTileSeams(t *testing.T) {
	opts := Options{Width: 64, Height: 64, Scale: 8, Variation: 0.5, Seed: 7}
	grid, err := RoofTile(opts)
	if err != nil {
		t.Fatal(err)
	}
	seam := palette.Terracotta.Stops()[0]
	// Every tile-row boundary is a seam across the full width.
	for y := 0; y < 64; y += 8 {
		for x := 0; x < 64; x++ {
			if grid[y][x] != seam {
				t.Fatalf("pixel (%d,%d) on tile row boundary = %v, want seam", x, y, grid[y][x])
			}
		}
	}
	// Tile interiors are not all seam-colored.
	interior := 0
	for _, row := range grid {
		for _, px := range row {
			if px != seam {
				interior++
			}
		}
	}
	if interior == 0 {
		t.Error("roof pattern is entirely seam-colored")
	}
}

func TestRoofTileRunningBond(t *testing.T) {
	opts := Options{Width: 64, Height: 32, Scale: 8, Variation: 0, Seed: 3}
	grid, _ := RoofTile(opts)
	seam := palette.Terracotta.Stops()[0]
	// In an even tile row the vertical seam sits at x=0; in the next row
	// it shifts by half a tile (8px for scale 8).
	if grid[4][0] != seam {
		t.Error("expected vertical seam at x=0 in even tile row")
	}
	if grid[12][8] != seam {
		t.Error("expected vertical seam at x=8 in odd tile row")
	}
	if grid[12][0] == seam {
		t.Error("odd tile row should not have a seam at x=0")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("marble"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}
