package game

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/vmath"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the fixed court geometry and speeds for one match
// Built once at startup and shared read-only by the match, bats and ball
type Config struct {
	CourtWidth  int
	CourtHeight int

	BallRadius int
	BallSpeed  float64

	PaddleWidth  int
	PaddleHeight int
	PaddleSpeed  int

	// HomeOffset is the distance of each paddle's home row from its goal line
	HomeOffset int

	// AttentionFraction is the share of court height, from the AI goal line,
	// inside which the AI paddle chases the ball
	AttentionFraction float64
}

// DefaultConfig returns the standard 200x400 court
func DefaultConfig() *Config {
	return &Config{
		CourtWidth:        constant.ScreenWidth,
		CourtHeight:       constant.ScreenHeight,
		BallRadius:        constant.BallRadius,
		BallSpeed:         constant.BallSpeed,
		PaddleWidth:       constant.BatWidth,
		PaddleHeight:      constant.BatHeight,
		PaddleSpeed:       constant.BatSpeed,
		HomeOffset:        constant.BatHomeOffset,
		AttentionFraction: constant.AIAttentionFraction,
	}
}

// Validate checks that every entity fits the court at its home position
func (c *Config) Validate() error {
	if c.CourtWidth <= 0 || c.CourtHeight <= 0 {
		return fmt.Errorf("%w: court %dx%d", ErrInvalidConfig, c.CourtWidth, c.CourtHeight)
	}
	if c.BallRadius <= 0 || c.BallSpeed <= 0 {
		return fmt.Errorf("%w: ball radius %d speed %g", ErrInvalidConfig, c.BallRadius, c.BallSpeed)
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 || c.PaddleSpeed <= 0 {
		return fmt.Errorf("%w: paddle %dx%d speed %d", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight, c.PaddleSpeed)
	}
	if c.AttentionFraction <= 0 || c.AttentionFraction > 1 {
		return fmt.Errorf("%w: attention fraction %g outside (0, 1]", ErrInvalidConfig, c.AttentionFraction)
	}

	court := c.Court()
	for _, home := range []vmath.Point{c.PlayerHome(), c.AIHome()} {
		r := vmath.RectCentered(float64(home.X), float64(home.Y), c.PaddleWidth, c.PaddleHeight)
		if !court.Contains(r) {
			return fmt.Errorf("%w: paddle at %v exceeds court", ErrInvalidConfig, home)
		}
	}
	ball := c.BallHome()
	if !court.Contains(vmath.RectCentered(float64(ball.X), float64(ball.Y), c.BallRadius, c.BallRadius)) {
		return fmt.Errorf("%w: ball does not fit court", ErrInvalidConfig)
	}
	return nil
}

// Court returns the playing field rectangle anchored at the origin
func (c *Config) Court() vmath.Rect {
	return vmath.Rect{W: c.CourtWidth, H: c.CourtHeight}
}

// PlayerHome is the player paddle's starting center, near the bottom goal line
func (c *Config) PlayerHome() vmath.Point {
	return vmath.Point{X: c.CourtWidth / 2, Y: c.CourtHeight - c.HomeOffset}
}

// AIHome is the AI paddle's starting center, near the top goal line
func (c *Config) AIHome() vmath.Point {
	return vmath.Point{X: c.CourtWidth / 2, Y: c.HomeOffset}
}

// BallHome is the serve position at court center
func (c *Config) BallHome() vmath.Point {
	return vmath.Point{X: c.CourtWidth / 2, Y: c.CourtHeight / 2}
}

// AttentionLine is the ball row at or above which the AI paddle pursues
func (c *Config) AttentionLine() float64 {
	return float64(c.CourtHeight) * c.AttentionFraction
}
