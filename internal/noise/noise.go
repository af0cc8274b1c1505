// Package noise implements seeded 2D gradient noise and fractal Brownian
// motion. All "natural" irregularity in the texture generators (stone
// speckling, soil clumps, wood grain waviness) comes from this package
// evaluated at different coordinate scales.
package noise

import (
	"github.com/MeKo-Tech/pixeltex/internal/rng"
)

// Noise is a coherent 2D noise generator. Construction shuffles a
// permutation table from the seed; after that the generator is read-only
// and safe to share between goroutines.
type Noise struct {
	perm [512]uint8
}

// New returns a noise generator for the given seed.
func New(seed int64) *Noise {
	n := &Noise{}
	r := rng.New(seed)

	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	// Fisher-Yates, driven by the shared seeded source so the table is
	// identical for a given seed on every platform.
	for i := 255; i > 0; i-- {
		j := r.IntN(0, i)
		p[i], p[j] = p[j], p[i]
	}
	// Duplicate to 512 entries to avoid wrap-around branching on lookup.
	for i := 0; i < 512; i++ {
		n.perm[i] = p[i&255]
	}
	return n
}

// fade is the quintic interpolation curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// grad maps a hashed corner to one of eight gradient directions and
// projects the offset vector onto it.
func grad(hash uint8, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}

func fastFloor(x float64) int {
	if x >= 0 {
		return int(x)
	}
	return int(x) - 1
}

// Noise2D returns coherent noise at (x, y), roughly in [-1, 1]. The
// function is continuous, so non-integer coordinates are always legal.
func (n *Noise) Noise2D(x, y float64) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)
	xf := x - float64(xi)
	yf := y - float64(yi)

	xi &= 255
	yi &= 255

	u := fade(xf)
	v := fade(yf)

	aa := n.perm[int(n.perm[xi])+yi]
	ab := n.perm[int(n.perm[xi])+yi+1]
	ba := n.perm[int(n.perm[xi+1])+yi]
	bb := n.perm[int(n.perm[xi+1])+yi+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)

	return lerp(x1, x2, v)
}

// FBM sums octaves of Noise2D at doubling frequency and persistence-
// decaying amplitude, normalized by the total amplitude so the result
// stays in [-1, 1] regardless of octave count. octaves <= 0 yields 0.
func (n *Noise) FBM(x, y float64, octaves int, persistence float64) float64 {
	if octaves <= 0 {
		return 0
	}

	sum := 0.0
	amplitude := 1.0
	frequency := 1.0
	total := 0.0

	for i := 0; i < octaves; i++ {
		sum += n.Noise2D(x*frequency, y*frequency) * amplitude
		total += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return sum / total
}
