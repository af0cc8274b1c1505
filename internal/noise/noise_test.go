package noise

import (
	"math"
	"testing"
)

func TestNoiseDeterminism(t *testing.T) {
	a := New(1337)
	b := New(1337)
	for y := 0.0; y < 8; y += 0.37 {
		for x := 0.0; x < 8; x += 0.41 {
			if a.Noise2D(x, y) != b.Noise2D(x, y) {
				t.Fatalf("same seed diverged at (%v, %v)", x, y)
			}
		}
	}
}

func TestNoiseSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	different := 0
	samples := 0
	for y := 0.0; y < 8; y += 0.5 {
		for x := 0.0; x < 8; x += 0.5 {
			samples++
			if a.Noise2D(x, y) != b.Noise2D(x, y) {
				different++
			}
		}
	}
	if float64(different)/float64(samples) < 0.8 {
		t.Errorf("different seeds should produce mostly different noise, only %d/%d samples differ", different, samples)
	}
}

func TestNoiseRange(t *testing.T) {
	n := New(99)
	for y := -4.0; y < 4; y += 0.13 {
		for x := -4.0; x < 4; x += 0.17 {
			v := n.Noise2D(x, y)
			if v < -1.5 || v > 1.5 {
				t.Fatalf("Noise2D(%v, %v) = %v far outside expected range", x, y, v)
			}
		}
	}
}

func TestNoiseVariation(t *testing.T) {
	n := New(5)
	first := n.Noise2D(0.3, 0.3)
	found := false
	for x := 0.0; x < 16 && !found; x += 0.23 {
		if n.Noise2D(x, 1.7) != first {
			found = true
		}
	}
	if !found {
		t.Error("noise should vary across coordinates")
	}
}

func TestNoiseContinuity(t *testing.T) {
	n := New(2024)
	const eps = 1e-4
	for _, p := range [][2]float64{{0.5, 0.5}, {1.99, 3.01}, {-2.3, 7.7}} {
		a := n.Noise2D(p[0], p[1])
		b := n.Noise2D(p[0]+eps, p[1]+eps)
		if math.Abs(a-b) > 0.01 {
			t.Errorf("noise discontinuous near (%v, %v): %v vs %v", p[0], p[1], a, b)
		}
	}
}

func TestFBMZeroOctaves(t *testing.T) {
	n := New(7)
	if got := n.FBM(1.5, 2.5, 0, 0.5); got != 0 {
		t.Errorf("FBM with 0 octaves = %v, want 0", got)
	}
	if got := n.FBM(1.5, 2.5, -3, 0.5); got != 0 {
		t.Errorf("FBM with negative octaves = %v, want 0", got)
	}
}

func TestFBMNormalized(t *testing.T) {
	n := New(31)
	for _, octaves := range []int{1, 3, 6} {
		for y := 0.0; y < 4; y += 0.31 {
			for x := 0.0; x < 4; x += 0.29 {
				v := n.FBM(x, y, octaves, 0.5)
				if v < -1.5 || v > 1.5 {
					t.Fatalf("FBM octaves=%d at (%v,%v) = %v outside range", octaves, x, y, v)
				}
			}
		}
	}
}

func TestFBMSingleOctaveMatchesNoise(t *testing.T) {
	n := New(12)
	x, y := 1.25, 3.75
	if n.FBM(x, y, 1, 0.5) != n.Noise2D(x, y) {
		t.Error("single-octave FBM should equal raw Noise2D")
	}
}
