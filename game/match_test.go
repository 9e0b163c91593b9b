package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong/status"
	"github.com/lixenwraith/pong/vmath"
)

func newTestMatch(t *testing.T, angles ...float64) *Match {
	t.Helper()
	m, err := NewMatch(DefaultConfig(), NewFixedAngles(angles...))
	require.NoError(t, err)
	return m
}

func TestNewMatch(t *testing.T) {
	m := newTestMatch(t)

	player, ai := m.Scores()
	assert.Equal(t, 0, player, "Player score should start at 0")
	assert.Equal(t, 0, ai, "AI score should start at 0")
	assert.Equal(t, KindPlayer, m.Player().Kind())
	assert.Equal(t, KindAI, m.AI().Kind())
	assert.Equal(t, vmath.Point{X: 100, Y: 370}, m.Player().Center(), "Player should start near the bottom")
	assert.Equal(t, vmath.Point{X: 100, Y: 30}, m.AI().Center(), "AI should start near the top")
	assert.Equal(t, vmath.Point{X: 100, Y: 200}, m.Ball().Position(), "Ball should start at center")
}

func TestNewMatchRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Zero court", func(c *Config) { c.CourtWidth = 0 }},
		{"Zero ball speed", func(c *Config) { c.BallSpeed = 0 }},
		{"Negative paddle speed", func(c *Config) { c.PaddleSpeed = -1 }},
		{"Paddle wider than court", func(c *Config) { c.PaddleWidth = 250 }},
		{"Home row outside court", func(c *Config) { c.HomeOffset = 2 }},
		{"Attention fraction zero", func(c *Config) { c.AttentionFraction = 0 }},
		{"Attention fraction above one", func(c *Config) { c.AttentionFraction = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			m, err := NewMatch(cfg, NewFixedAngles())
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300.0, cfg.AttentionLine(), "Attention line should sit at three quarters of the court")
}

func TestStepAppliesEdgesFirst(t *testing.T) {
	m := newTestMatch(t)

	m.Step([]Edge{Down(KeyLeft)})
	assert.Equal(t, 96, m.Player().Center().X, "Edge should take effect in the tick it is delivered")

	m.Step(nil)
	assert.Equal(t, 92, m.Player().Center().X, "Held key should keep moving the paddle")

	m.Step([]Edge{Down(KeyRight)})
	assert.Equal(t, 92, m.Player().Center().X, "Opposite keys held together should cancel")

	m.Step([]Edge{Up(KeyLeft), Up(KeyRight)})
	assert.Equal(t, 0, m.Player().VelocityX())
}

func TestStepAITracksBall(t *testing.T) {
	m := newTestMatch(t, AngleUpRight)

	// Ball at 200 is inside the AI band and level with the AI center
	m.Step(nil)
	assert.Equal(t, -m.Config().PaddleSpeed, m.AI().VelocityX())

	// Ball right of the AI and deep in the band
	place(m.ball, 180, 100)
	m.Step(nil)
	assert.Equal(t, m.Config().PaddleSpeed, m.AI().VelocityX(), "AI should chase the ball to the right")

	// Ball beyond the attention line
	place(m.ball, 180, 320)
	m.ball.angle = AngleDownRight
	m.Step(nil)
	assert.Equal(t, 0, m.AI().VelocityX(), "AI should stop once the ball leaves the band")
}

func TestStepScoresTopExit(t *testing.T) {
	m := newTestMatch(t, AngleDownRight, AngleUpLeft)
	m.Step([]Edge{Down(KeyRight)})

	place(m.ball, 100, 5)
	m.ball.angle = AngleUpRight

	res := m.Step(nil)

	assert.Equal(t, PhasePointScored, res.Phase)
	assert.Equal(t, ExitTop, res.Exit)
	player, ai := m.Scores()
	assert.Equal(t, 1, player, "Top exit should credit the player")
	assert.Equal(t, 0, ai)

	assert.Equal(t, ExitNone, m.Ball().OutOfCourt(), "Ball should be re-served within the same tick")
	assert.Equal(t, vmath.Point{X: 100, Y: 200}, m.Ball().Position())
	assert.Equal(t, AngleUpLeft, m.Ball().Angle(), "Re-serve should draw a fresh angle")
	assert.Equal(t, m.Player().Home(), m.Player().Center(), "Player should return home")
	assert.Equal(t, m.AI().Home(), m.AI().Center(), "AI should return home")
	assert.Equal(t, 0, m.AI().VelocityX(), "AI should restart from rest")
	assert.Equal(t, m.Config().PaddleSpeed, m.Player().VelocityX(), "Player velocity should follow the held key")

	res = m.Step(nil)
	assert.Equal(t, PhaseInPlay, res.Phase, "Play should resume on the next tick")
}

func TestStepScoresBottomExit(t *testing.T) {
	m := newTestMatch(t)
	place(m.ball, 100, 395)
	m.ball.angle = AngleDownRight

	res := m.Step(nil)

	assert.Equal(t, ExitBottom, res.Exit)
	player, ai := m.Scores()
	assert.Equal(t, 0, player)
	assert.Equal(t, 1, ai, "Bottom exit should credit the AI")
}

func TestScoresOnlyIncreaseByOnePerExit(t *testing.T) {
	m, err := NewMatch(DefaultConfig(), NewRandomAngles(1234))
	require.NoError(t, err)

	exits := 0
	prevPlayer, prevAI := 0, 0
	for i := 0; i < 20000; i++ {
		res := m.Step(nil)
		player, ai := m.Scores()

		switch res.Exit {
		case ExitTop:
			exits++
			assert.Equal(t, prevPlayer+1, player)
			assert.Equal(t, prevAI, ai)
		case ExitBottom:
			exits++
			assert.Equal(t, prevPlayer, player)
			assert.Equal(t, prevAI+1, ai)
		default:
			assert.Equal(t, prevPlayer, player)
			assert.Equal(t, prevAI, ai)
		}
		prevPlayer, prevAI = player, ai

		court := m.Config().Court()
		assert.True(t, court.Contains(m.Player().Rect()), "Player paddle left the court at tick %d", i)
		assert.True(t, court.Contains(m.AI().Rect()), "AI paddle left the court at tick %d", i)
	}
	assert.Equal(t, exits, prevPlayer+prevAI, "Every exit should score exactly one point")
	assert.Positive(t, exits, "An idle player should concede eventually")
}

func TestMatchDeterministicWithSeed(t *testing.T) {
	a, err := NewMatch(DefaultConfig(), NewRandomAngles(77))
	require.NoError(t, err)
	b, err := NewMatch(DefaultConfig(), NewRandomAngles(77))
	require.NoError(t, err)

	edges := [][]Edge{{Down(KeyLeft)}, nil, nil, {Up(KeyLeft), Down(KeyRight)}, nil, {Up(KeyRight)}}
	for i := 0; i < 3000; i++ {
		in := edges[i%len(edges)]
		a.Step(in)
		b.Step(in)
	}
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestMatchMetrics(t *testing.T) {
	reg := status.NewRegistry()
	m := newTestMatch(t)
	m.SetRegistry(reg)

	m.Step(nil)
	place(m.ball, 195, 200)
	m.ball.angle = AngleDownRight
	m.Step(nil)
	place(m.ball, 100, 395)
	m.ball.angle = AngleDownRight
	m.Step(nil)

	assert.Equal(t, int64(3), reg.Ints.Get(MetricTicks).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(MetricWallBounces).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(MetricPoints).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(MetricAIScore).Load())
	assert.Equal(t, int64(0), reg.Ints.Get(MetricPlayerScore).Load())
	assert.Equal(t, uint64(3), m.Ticks())

	m.SetRegistry(nil)
	m.Step(nil)
	assert.Equal(t, int64(3), reg.Ints.Get(MetricTicks).Load(), "Detached registry should stop recording")
}

func TestSnapshot(t *testing.T) {
	m := newTestMatch(t, AngleDownRight)
	m.Step([]Edge{Down(KeyRight)})

	s := m.Snapshot()
	assert.Equal(t, 200, s.CourtWidth)
	assert.Equal(t, 400, s.CourtHeight)
	assert.Equal(t, vmath.Point{X: 104, Y: 370}, s.PlayerCenter)
	assert.Equal(t, m.AI().Center(), s.AICenter)
	assert.Equal(t, vmath.Point{X: 105, Y: 205}, s.Ball)
	assert.Equal(t, 40, s.PaddleWidth)
	assert.Equal(t, 8, s.PaddleHeight)
	assert.Equal(t, 8, s.BallRadius)
	assert.Equal(t, AngleDownRight, s.BallAngle)
	assert.Equal(t, 8.0, s.BallSpeed)
	assert.Equal(t, m.Player().Rect(), s.PaddleRect(s.PlayerCenter))
}

func TestEdgeString(t *testing.T) {
	assert.Equal(t, "left:down", Down(KeyLeft).String())
	assert.Equal(t, "right:up", Up(KeyRight).String())
	assert.Equal(t, "in_play", PhaseInPlay.String())
	assert.Equal(t, "point_scored", PhasePointScored.String())
}
