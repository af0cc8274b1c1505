// Package rng provides a small seeded pseudo-random number generator.
//
// Every texture generator in this repository derives its randomness from
// this source rather than math/rand, so that a given seed produces
// bit-identical streams on every platform. The recurrence is the
// Park-Miller minimal standard generator (multiplier 16807, modulus
// 2^31-1) evaluated in pure integer arithmetic.
package rng

// Source is a deterministic random source. It is not safe for concurrent
// use; concurrent callers must each construct their own Source.
type Source struct {
	state int64
}

const (
	multiplier = 16807
	modulus    = 2147483647 // 2^31 - 1, prime
)

// New returns a Source seeded with the given value. Any seed is accepted;
// zero and negative seeds are normalized to a valid non-zero state.
func New(seed int64) *Source {
	state := seed % modulus
	if state < 0 {
		state += modulus
	}
	if state == 0 {
		state = 1
	}
	return &Source{state: state}
}

// Float64 returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	s.state = s.state * multiplier % modulus
	return float64(s.state-1) / modulus
}

// IntN returns a uniformly distributed integer in [min, max] inclusive.
// If max < min the bounds are swapped.
func (s *Source) IntN(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + int(s.Float64()*float64(max-min+1))
}
