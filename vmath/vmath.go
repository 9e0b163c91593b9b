package vmath

import "math"

// --- Arithmetic ---

// Trunc converts to int, truncating toward zero
func Trunc(f float64) int { return int(math.Trunc(f)) }

// Polar returns the cartesian components of a vector given as (angle, magnitude)
func Polar(angle, magnitude float64) (x, y float64) {
	return magnitude * math.Cos(angle), magnitude * math.Sin(angle)
}

// Magnitude returns the length of (x, y)
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// --- Randomness ---

// FastRand is a xorshift64 generator; the same seed yields the same sequence
// Not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
