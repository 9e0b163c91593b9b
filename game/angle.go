package game

import (
	"math"

	"github.com/lixenwraith/pong/vmath"
)

// Serving diagonals, one per quadrant
var (
	AngleDownRight = Diagonal(1) // 45°
	AngleDownLeft  = Diagonal(2) // 135°
	AngleUpLeft    = Diagonal(3) // 225°, i.e. -135°
	AngleUpRight   = Diagonal(4) // 315°, i.e. -45°
)

// Diagonal returns the k-th serving angle, k in [1, 4]: π/4·(2k−1)
func Diagonal(k int) float64 {
	return math.Pi / 4 * float64(k*2-1)
}

// AngleSource picks the ball direction at every serve
type AngleSource interface {
	NextAngle() float64
}

// AngleFunc adapts a plain function to AngleSource
type AngleFunc func() float64

func (f AngleFunc) NextAngle() float64 { return f() }

// RandomAngles draws uniformly among the four diagonals
type RandomAngles struct {
	rng *vmath.FastRand
}

// NewRandomAngles seeds a diagonal picker; equal seeds serve identically
func NewRandomAngles(seed uint64) *RandomAngles {
	return &RandomAngles{rng: vmath.NewFastRand(seed)}
}

func (r *RandomAngles) NextAngle() float64 {
	return Diagonal(r.rng.Intn(4) + 1)
}

// FixedAngles replays a fixed sequence, cycling at the end
type FixedAngles struct {
	angles []float64
	next   int
}

// NewFixedAngles returns a source that serves the given angles in order
// With no angles it always serves AngleDownRight
func NewFixedAngles(angles ...float64) *FixedAngles {
	if len(angles) == 0 {
		angles = []float64{AngleDownRight}
	}
	return &FixedAngles{angles: angles}
}

func (f *FixedAngles) NextAngle() float64 {
	a := f.angles[f.next]
	f.next = (f.next + 1) % len(f.angles)
	return a
}
