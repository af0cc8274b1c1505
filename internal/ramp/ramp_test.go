package ramp

import (
	"image/color"
	"testing"

	"github.com/MeKo-Tech/pixeltex/internal/colorutil"
)

var testRamp = Ramp{
	Highlight: 0xF0E0C0,
	Base:      0xA08060,
	Shadow:    0x604030,
	Deep:      0x302018,
}

func within(a, b color.RGBA, tolerance int) bool {
	diff := func(x, y uint8) int {
		d := int(x) - int(y)
		if d < 0 {
			d = -d
		}
		return d
	}
	return diff(a.R, b.R) <= tolerance && diff(a.G, b.G) <= tolerance && diff(a.B, b.B) <= tolerance
}

func TestRampBoundaries(t *testing.T) {
	if got := testRamp.At(0); got != colorutil.FromInt(testRamp.Deep) {
		t.Errorf("At(0) = %v, want deep stop", got)
	}
	if got := testRamp.At(1); got != colorutil.FromInt(testRamp.Highlight) {
		t.Errorf("At(1) = %v, want highlight stop", got)
	}
	if got := testRamp.At(0.33); !within(got, colorutil.FromInt(testRamp.Shadow), 1) {
		t.Errorf("At(0.33) = %v, want within 1 of shadow stop", got)
	}
	if got := testRamp.At(0.66); !within(got, colorutil.FromInt(testRamp.Base), 1) {
		t.Errorf("At(0.66) = %v, want within 1 of base stop", got)
	}
}

func TestRampClamping(t *testing.T) {
	if got := testRamp.At(-0.5); got != colorutil.FromInt(testRamp.Deep) {
		t.Errorf("At(-0.5) = %v, want deep stop", got)
	}
	if got := testRamp.At(2); got != colorutil.FromInt(testRamp.Highlight) {
		t.Errorf("At(2) = %v, want highlight stop", got)
	}
}

func TestRampInterpolates(t *testing.T) {
	// A mid-segment sample should land strictly between its two stops.
	got := testRamp.At(0.5)
	shadow := colorutil.FromInt(testRamp.Shadow)
	base := colorutil.FromInt(testRamp.Base)
	if got == shadow || got == base {
		t.Errorf("At(0.5) = %v should be between %v and %v", got, shadow, base)
	}
}

func TestExtendedStopsOrder(t *testing.T) {
	e := Extended{
		Highlight: Entry{Color: color.RGBA{R: 250, A: 255}},
		Light:     Entry{Color: color.RGBA{R: 200, A: 255}},
		Mid:       Entry{Color: color.RGBA{R: 150, A: 255}},
		Dark:      Entry{Color: color.RGBA{R: 100, A: 255}},
		Shadow:    Entry{Color: color.RGBA{R: 50, A: 255}},
	}
	stops := e.Stops()
	for i := 1; i < len(stops); i++ {
		if stops[i].R <= stops[i-1].R {
			t.Fatalf("stops not ordered darkest to brightest: %v", stops)
		}
	}
}

func TestHighlightLightens(t *testing.T) {
	base := color.RGBA{R: 120, G: 80, B: 60, A: 200}
	hi := Highlight(base, 0.5)
	if colorutil.ToHSL(hi).L <= colorutil.ToHSL(base).L {
		t.Errorf("Highlight should increase lightness: %v -> %v", base, hi)
	}
	if hi.A != base.A {
		t.Errorf("Highlight should preserve alpha, got %d", hi.A)
	}
	// Full intensity saturates to white.
	full := Highlight(base, 1)
	if full.R != 255 || full.G != 255 || full.B != 255 {
		t.Errorf("Highlight intensity 1 = %v, want white", full)
	}
}

func TestShadowDarkens(t *testing.T) {
	base := color.RGBA{R: 120, G: 80, B: 60, A: 200}
	sh := Shadow(base, 0.5)
	if colorutil.ToHSL(sh).L >= colorutil.ToHSL(base).L {
		t.Errorf("Shadow should decrease lightness: %v -> %v", base, sh)
	}
	if sh.A != base.A {
		t.Errorf("Shadow should preserve alpha, got %d", sh.A)
	}
	// Full intensity collapses to black.
	full := Shadow(base, 1)
	if full.R != 0 || full.G != 0 || full.B != 0 {
		t.Errorf("Shadow intensity 1 = %v, want black", full)
	}
}

func TestShadingRamp(t *testing.T) {
	base := color.RGBA{R: 160, G: 110, B: 70, A: 255}
	stops := ShadingRamp(base, 5)
	if len(stops) != 5 {
		t.Fatalf("got %d stops, want 5", len(stops))
	}
	if stops[2] != base {
		t.Errorf("midpoint = %v, want base %v", stops[2], base)
	}
	// Lightness must increase monotonically along the ramp.
	for i := 1; i < len(stops); i++ {
		if colorutil.ToHSL(stops[i]).L <= colorutil.ToHSL(stops[i-1]).L {
			t.Errorf("lightness not increasing at stop %d: %v", i, stops)
		}
	}
	// Default steps.
	if got := ShadingRamp(base, 0); len(got) != 5 {
		t.Errorf("default steps = %d, want 5", len(got))
	}
}

func TestAmbientOcclusion(t *testing.T) {
	center := color.RGBA{R: 150, G: 150, B: 150, A: 255}
	var open [8]color.RGBA // all transparent
	if got := AmbientOcclusion(center, open, 1); got != center {
		t.Errorf("no solid neighbors should leave center unchanged, got %v", got)
	}

	var solid [8]color.RGBA
	for i := range solid {
		solid[i] = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	}
	occluded := AmbientOcclusion(center, solid, 0.5)
	if colorutil.ToHSL(occluded).L >= colorutil.ToHSL(center).L {
		t.Errorf("fully surrounded center should darken: %v -> %v", center, occluded)
	}

	// Alpha at exactly 128 does not count as solid.
	var borderline [8]color.RGBA
	for i := range borderline {
		borderline[i] = color.RGBA{A: 128}
	}
	if got := AmbientOcclusion(center, borderline, 1); got != center {
		t.Errorf("alpha 128 neighbors should not occlude, got %v", got)
	}
}
