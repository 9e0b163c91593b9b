package game

import "github.com/lixenwraith/pong/vmath"

// Kind selects which routine drives a paddle's velocity
type Kind uint8

const (
	KindPlayer Kind = iota // velocity from key edges
	KindAI                 // velocity from ball tracking
)

func (k Kind) String() string {
	if k == KindAI {
		return "ai"
	}
	return "player"
}

// Paddle is a horizontal bat that moves along a fixed row
type Paddle struct {
	kind  Kind
	rect  vmath.Rect
	home  vmath.Rect
	court vmath.Rect
	step  int
	line  float64 // AI attention line

	velocityX int
}

// NewPaddle places a paddle of the given kind centered on home
func NewPaddle(cfg *Config, kind Kind, home vmath.Point) *Paddle {
	r := vmath.RectCentered(float64(home.X), float64(home.Y), cfg.PaddleWidth, cfg.PaddleHeight)
	return &Paddle{
		kind:  kind,
		rect:  r,
		home:  r,
		court: cfg.Court(),
		step:  cfg.PaddleSpeed,
		line:  cfg.AttentionLine(),
	}
}

func (p *Paddle) Kind() Kind          { return p.kind }
func (p *Paddle) Rect() vmath.Rect    { return p.rect }
func (p *Paddle) VelocityX() int      { return p.velocityX }
func (p *Paddle) Home() vmath.Point   { return vmath.Point{X: p.home.CenterX(), Y: p.home.CenterY()} }
func (p *Paddle) Center() vmath.Point { return vmath.Point{X: p.rect.CenterX(), Y: p.rect.CenterY()} }

// ApplyEdge adjusts player velocity additively: holding both directions cancels out
// AI paddles and keys other than left/right are ignored
func (p *Paddle) ApplyEdge(e Edge) {
	if p.kind != KindPlayer {
		return
	}

	delta := 0
	switch e.Key {
	case KeyLeft:
		delta = -p.step
	case KeyRight:
		delta = p.step
	default:
		return
	}

	if e.Kind == EdgeUp {
		delta = -delta
	}
	p.velocityX += delta
}

// Track steers an AI paddle toward the ball while the ball is inside the attention band
// Outside the band the paddle stops immediately
func (p *Paddle) Track(ball vmath.Point) {
	if p.kind != KindAI {
		return
	}

	if float64(ball.Y) <= p.line {
		if float64(p.rect.X)+float64(p.rect.W)/2 < float64(ball.X) {
			p.velocityX = p.step
		} else {
			p.velocityX = -p.step
		}
	} else if p.velocityX != 0 {
		p.velocityX = 0
	}
}

// Advance applies one tick of velocity
// A move that would leave the court is discarded, not clamped
func (p *Paddle) Advance() {
	if p.velocityX == 0 {
		return
	}
	next := p.rect.Move(p.velocityX, 0)
	if p.court.Contains(next) {
		p.rect = next
	}
}

// Reset returns the paddle to its home position; velocity is left as is
func (p *Paddle) Reset() {
	p.rect = p.home
}

// Halt zeroes velocity
func (p *Paddle) Halt() {
	p.velocityX = 0
}
