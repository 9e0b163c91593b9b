package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/status"
)

const metricFPS = "driver.fps"

var (
	fpsFlag   = flag.Int("fps", constant.FramesPerSecond, "Simulation and render rate in ticks per second")
	seedFlag  = flag.Int64("seed", 0, "Serve angle seed, 0 picks one from the clock")
	scaleFlag = flag.Int("scale", 2, "Window pixels per court pixel")
	fontFlag  = flag.String("font", "", "TTF font for score labels, empty disables them")
)

// SDL must be driven from the main OS thread
func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pong-sdl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *fpsFlag <= 0 {
		return fmt.Errorf("invalid -fps %d: must be positive", *fpsFlag)
	}
	if *scaleFlag <= 0 {
		return fmt.Errorf("invalid -scale %d: must be positive", *scaleFlag)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := game.DefaultConfig()
	match, err := game.NewMatch(cfg, game.NewRandomAngles(uint64(seed)))
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	reg := status.NewRegistry()
	match.SetRegistry(reg)

	win, err := NewWindow(constant.GameTitle, cfg.CourtWidth, cfg.CourtHeight, *scaleFlag, *fontFlag)
	if err != nil {
		return err
	}
	core.SetCrashCleanup(win.Close)
	defer win.Close()

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	log.Printf("start: %s fps=%d seed=%d scale=%d", constant.GameTitle, *fpsFlag, seed, *scaleFlag)
	loop(win, match, reg, uint64(1000 / *fpsFlag))

	player, ai := match.Scores()
	log.Printf("exit: player=%d ai=%d ticks=%d", player, ai, match.Ticks())
	return nil
}

// loop runs fixed-rate ticks until the window closes or Escape is pressed
func loop(win *Window, match *game.Match, reg *status.Registry, frameMs uint64) {
	edges := make([]game.Edge, 0, 8)
	fps := reg.Floats.Get(metricFPS)
	frames, sampleStart := 0, uint64(0)

	for {
		start := sdl.GetTicks64()
		running := true

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				var quit bool
				edges, quit = handleKey(edges, ev, match, reg)
				if quit {
					running = false
				}
			}
		}
		if !running {
			return
		}

		match.Step(edges)
		edges = edges[:0]

		win.Draw(match.Snapshot())

		frames++
		if elapsed := start - sampleStart; elapsed >= 1000 {
			if sampleStart != 0 {
				fps.Set(float64(frames) * 1000 / float64(elapsed))
			}
			frames, sampleStart = 0, start
		}

		if spent := sdl.GetTicks64() - start; spent < frameMs {
			sdl.Delay(uint32(frameMs - spent))
		}
	}
}

// handleKey turns native key events into edges; SDL reports releases so no synthesis is needed
func handleKey(edges []game.Edge, ev *sdl.KeyboardEvent, match *game.Match, reg *status.Registry) ([]game.Edge, bool) {
	if ev.Repeat != 0 {
		return edges, false
	}
	down := ev.Type == sdl.KEYDOWN

	switch ev.Keysym.Sym {
	case sdl.K_ESCAPE:
		return edges, down
	case sdl.K_d:
		if down {
			b := match.Ball()
			log.Printf("ball: pos=%v angle=%.4f speed=%.2f", b.Position(), b.Angle(), b.Speed())
			log.Printf("metrics: %s", reg)
		}
		return edges, false
	}

	key := sdlKey(ev.Keysym.Sym)
	if key == game.KeyNone {
		return edges, false
	}
	if down {
		return append(edges, game.Down(key)), false
	}
	return append(edges, game.Up(key)), false
}

func sdlKey(sym sdl.Keycode) game.Key {
	switch sym {
	case sdl.K_LEFT:
		return game.KeyLeft
	case sdl.K_RIGHT:
		return game.KeyRight
	default:
		return game.KeyNone
	}
}
