package game

import "github.com/lixenwraith/pong/vmath"

// Snapshot is the read-only state a presentation layer needs to draw one frame
type Snapshot struct {
	CourtWidth  int
	CourtHeight int

	PlayerCenter vmath.Point
	AICenter     vmath.Point
	Ball         vmath.Point

	PaddleWidth  int
	PaddleHeight int
	BallRadius   int

	PlayerScore int
	AIScore     int

	BallAngle float64
	BallSpeed float64
}

// Snapshot captures the match after the latest Step
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		CourtWidth:   m.cfg.CourtWidth,
		CourtHeight:  m.cfg.CourtHeight,
		PlayerCenter: m.player.Center(),
		AICenter:     m.ai.Center(),
		Ball:         m.ball.Position(),
		PaddleWidth:  m.cfg.PaddleWidth,
		PaddleHeight: m.cfg.PaddleHeight,
		BallRadius:   m.cfg.BallRadius,
		PlayerScore:  m.playerScore,
		AIScore:      m.aiScore,
		BallAngle:    m.ball.Angle(),
		BallSpeed:    m.ball.Speed(),
	}
}

// PaddleRect returns the drawing rectangle of a paddle centered at c
func (s Snapshot) PaddleRect(c vmath.Point) vmath.Rect {
	return vmath.RectCentered(float64(c.X), float64(c.Y), s.PaddleWidth, s.PaddleHeight)
}
