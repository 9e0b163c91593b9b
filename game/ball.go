package game

import (
	"math"

	"github.com/lixenwraith/pong/vmath"
)

// Exit reports whether, and through which goal line, the ball left the court
type Exit uint8

const (
	ExitNone Exit = iota
	ExitTop
	ExitBottom
)

var exitName = map[Exit]string{
	ExitNone:   "none",
	ExitTop:    "top",
	ExitBottom: "bottom",
}

func (e Exit) String() string {
	return exitName[e]
}

// Contact is what the ball touched during one Advance
type Contact uint8

const (
	ContactNone   Contact = iota
	ContactWall           // side wall reflection
	ContactPaddle         // paddle reflection
)

// Ball is the moving puck; velocity is held in polar form so speed never drifts
type Ball struct {
	court  vmath.Rect
	radius int
	speed  float64
	start  vmath.Point
	angles AngleSource

	x, y  float64
	angle float64

	justBounced bool
	out         Exit
}

// NewBall creates a ball at the court center and serves it along angles.NextAngle
func NewBall(cfg *Config, angles AngleSource) *Ball {
	b := &Ball{
		court:  cfg.Court(),
		radius: cfg.BallRadius,
		speed:  cfg.BallSpeed,
		start:  cfg.BallHome(),
		angles: angles,
	}
	b.Setup()
	return b
}

// Setup re-serves: back to center, latches cleared, fresh diagonal
func (b *Ball) Setup() {
	b.x = float64(b.start.X)
	b.y = float64(b.start.Y)
	b.justBounced = false
	b.out = ExitNone
	b.angle = b.angles.NextAngle()
}

func (b *Ball) Angle() float64        { return b.angle }
func (b *Ball) Speed() float64        { return b.speed }
func (b *Ball) Radius() int           { return b.radius }
func (b *Ball) JustBounced() bool     { return b.justBounced }
func (b *Ball) OutOfCourt() Exit      { return b.out }
func (b *Ball) Position() vmath.Point { return vmath.Point{X: vmath.Trunc(b.x), Y: vmath.Trunc(b.y)} }

// Velocity returns the cartesian step applied per tick
func (b *Ball) Velocity() (vx, vy float64) {
	return vmath.Polar(b.angle, b.speed)
}

// Box is the collision square of side radius centered on the ball
func (b *Ball) Box() vmath.Rect {
	return vmath.RectCentered(b.x, b.y, b.radius, b.radius)
}

// Advance moves the ball one tick and resolves wall, goal and paddle contact
// Paddles are tested in the given order; only the first overlap is resolved
// Once the ball is out of court it stays put until Setup
func (b *Ball) Advance(paddles ...*Paddle) Contact {
	if b.out != ExitNone {
		return ContactNone
	}

	vx, vy := b.Velocity()
	b.x = math.Trunc(b.x + vx)
	b.y = math.Trunc(b.y + vy)

	box := b.Box()
	if !b.court.Contains(box) {
		return b.resolveWalls(box)
	}
	return b.resolvePaddles(box, paddles)
}

// resolveWalls classifies goal exits and side reflections independently
// A corner clip can record an exit and reflect in the same tick
func (b *Ball) resolveWalls(box vmath.Rect) Contact {
	topLeft, topRight, botLeft, botRight := b.court.Corners(box)

	if topLeft && topRight {
		b.out = ExitTop
	} else if botLeft && botRight {
		b.out = ExitBottom
	}

	if (botLeft && topLeft) || (botRight && topRight) {
		b.angle = math.Pi - b.angle
		return ContactWall
	}
	return ContactNone
}

// resolvePaddles reflects off the first overlapping paddle unless the bounce latch is set
// The latch holds while any overlap persists and clears on the first tick without one
func (b *Ball) resolvePaddles(box vmath.Rect, paddles []*Paddle) Contact {
	for _, p := range paddles {
		pr := p.Rect()
		if !box.CollideRect(pr) {
			continue
		}
		if b.justBounced {
			return ContactNone
		}

		b.angle *= -1
		if math.Sin(b.angle) > 0 {
			b.y = float64(pr.Top() + b.radius)
		} else {
			b.y = float64(pr.Bottom() - b.radius)
		}
		b.justBounced = true
		return ContactPaddle
	}

	b.justBounced = false
	return ContactNone
}
