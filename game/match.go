package game

import (
	"sync/atomic"

	"github.com/lixenwraith/pong/status"
)

// Phase of the point cycle; PhasePointScored never outlives the tick that scored
type Phase uint8

const (
	PhaseInPlay Phase = iota
	PhasePointScored
)

func (p Phase) String() string {
	if p == PhasePointScored {
		return "point_scored"
	}
	return "in_play"
}

// Metric keys written by the match
const (
	MetricTicks       = "match.ticks"
	MetricPoints      = "match.points"
	MetricWallBounces = "ball.wall_bounces"
	MetricPaddleHits  = "ball.paddle_hits"
	MetricPlayerScore = "score.player"
	MetricAIScore     = "score.ai"
)

// StepResult describes what happened during one tick
type StepResult struct {
	Phase   Phase
	Contact Contact
	Exit    Exit // goal line crossed, ExitNone when no point
}

// Match composes one ball and two paddles and keeps score
type Match struct {
	cfg    *Config
	player *Paddle
	ai     *Paddle
	ball   *Ball

	playerScore int
	aiScore     int
	ticks       uint64

	metrics *matchMetrics
}

// matchMetrics caches registry pointers so ticks never touch the registry lock
type matchMetrics struct {
	ticks, points        *atomic.Int64
	walls, hits          *atomic.Int64
	playerScore, aiScore *atomic.Int64
}

// NewMatch validates cfg and sets up a fresh 0-0 match
func NewMatch(cfg *Config, angles AngleSource) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Match{
		cfg:    cfg,
		player: NewPaddle(cfg, KindPlayer, cfg.PlayerHome()),
		ai:     NewPaddle(cfg, KindAI, cfg.AIHome()),
		ball:   NewBall(cfg, angles),
	}, nil
}

// SetRegistry enables metric recording; nil disables it
func (m *Match) SetRegistry(r *status.Registry) {
	if r == nil {
		m.metrics = nil
		return
	}
	m.metrics = &matchMetrics{
		ticks:       r.Ints.Get(MetricTicks),
		points:      r.Ints.Get(MetricPoints),
		walls:       r.Ints.Get(MetricWallBounces),
		hits:        r.Ints.Get(MetricPaddleHits),
		playerScore: r.Ints.Get(MetricPlayerScore),
		aiScore:     r.Ints.Get(MetricAIScore),
	}
	m.metrics.playerScore.Store(int64(m.playerScore))
	m.metrics.aiScore.Store(int64(m.aiScore))
}

func (m *Match) Config() *Config { return m.cfg }
func (m *Match) Player() *Paddle { return m.player }
func (m *Match) AI() *Paddle     { return m.ai }
func (m *Match) Ball() *Ball     { return m.ball }
func (m *Match) Ticks() uint64   { return m.ticks }

// Scores returns (player, ai)
func (m *Match) Scores() (player, ai int) {
	return m.playerScore, m.aiScore
}

// Step advances the match one tick
// Edges apply to the player paddle before anything moves
func (m *Match) Step(edges []Edge) StepResult {
	m.ticks++

	for _, e := range edges {
		m.player.ApplyEdge(e)
	}

	m.player.Advance()
	m.ai.Track(m.ball.Position())
	m.ai.Advance()

	res := StepResult{
		Phase:   PhaseInPlay,
		Contact: m.ball.Advance(m.player, m.ai),
		Exit:    m.ball.OutOfCourt(),
	}

	if res.Exit != ExitNone {
		res.Phase = PhasePointScored
		m.score(res.Exit)
		m.resetPoint()
	}

	m.record(res)
	return res
}

// score credits the side that did not concede: bottom exit is the AI's point
func (m *Match) score(exit Exit) {
	switch exit {
	case ExitBottom:
		m.aiScore++
	case ExitTop:
		m.playerScore++
	}
}

// resetPoint re-serves and returns both paddles home
// Player velocity keeps tracking held keys; AI velocity restarts from rest
func (m *Match) resetPoint() {
	m.ball.Setup()
	m.player.Reset()
	m.ai.Reset()
	m.ai.Halt()
}

func (m *Match) record(res StepResult) {
	mm := m.metrics
	if mm == nil {
		return
	}
	mm.ticks.Add(1)
	switch res.Contact {
	case ContactWall:
		mm.walls.Add(1)
	case ContactPaddle:
		mm.hits.Add(1)
	}
	if res.Phase == PhasePointScored {
		mm.points.Add(1)
		mm.playerScore.Store(int64(m.playerScore))
		mm.aiScore.Store(int64(m.aiScore))
	}
}
