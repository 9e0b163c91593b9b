package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/status"
)

// MetricFPS is the measured frame rate of the terminal loop
const MetricFPS = "driver.fps"

// Game binds one match to a terminal screen
type Game struct {
	screen   tcell.Screen
	match    *game.Match
	renderer *render.Renderer
	keys     *input.KeyTable
	tracker  *input.Tracker
	registry *status.Registry

	// Edges gathered since the last tick
	edges []game.Edge

	// Frame rate sampling
	fps        *status.AtomicFloat
	frames     int
	frameStart time.Time
}

// NewGame wires a match to screen; the screen must already be initialized
func NewGame(screen tcell.Screen, match *game.Match, color bool) *Game {
	reg := status.NewRegistry()
	match.SetRegistry(reg)

	return &Game{
		screen:   screen,
		match:    match,
		renderer: render.NewRenderer(color),
		keys:     input.DefaultKeyTable(),
		tracker:  input.NewTracker(constant.KeyFirstHold, constant.KeyRepeatHold),
		registry: reg,
		edges:    make([]game.Edge, 0, 8),
		fps:      reg.Floats.Get(MetricFPS),
	}
}

// handleInput processes one terminal event, returns false to exit
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleIntent(g.keys.Resolve(ev), ev.When())

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// handleIntent applies one resolved key press, returns false to exit
func (g *Game) handleIntent(intent input.IntentType, when time.Time) bool {
	switch intent {
	case input.IntentQuit:
		return false

	case input.IntentDebug:
		g.logDebug()

	case input.IntentLeft, input.IntentRight:
		g.edges = g.tracker.Press(g.edges, intent.Key(), when)
	}
	return true
}

// tick advances the match one step and draws the frame
func (g *Game) tick(now time.Time) {
	g.edges = g.tracker.Expire(g.edges, now)
	res := g.match.Step(g.edges)
	g.edges = g.edges[:0]

	if res.Phase == game.PhasePointScored {
		player, ai := g.match.Scores()
		scorer := "player"
		if res.Exit == game.ExitBottom {
			scorer = "ai"
		}
		log.Printf("point: %s scores through %s, player=%d ai=%d", scorer, res.Exit, player, ai)
	}

	g.renderer.Draw(g.screen, g.match.Snapshot())
	g.sampleFPS(now)
}

// sampleFPS publishes the frame rate once per second
func (g *Game) sampleFPS(now time.Time) {
	if g.frameStart.IsZero() {
		g.frameStart = now
		return
	}
	g.frames++
	if elapsed := now.Sub(g.frameStart); elapsed >= time.Second {
		g.fps.Set(float64(g.frames) / elapsed.Seconds())
		g.frames = 0
		g.frameStart = now
	}
}

// logDebug dumps the ball vector and all metrics
func (g *Game) logDebug() {
	b := g.match.Ball()
	vx, vy := b.Velocity()
	log.Printf("ball: pos=%v angle=%.4f speed=%.2f velocity=(%.3f, %.3f) latched=%t",
		b.Position(), b.Angle(), b.Speed(), vx, vy, b.JustBounced())
	log.Printf("metrics: %s", g.registry)
}
