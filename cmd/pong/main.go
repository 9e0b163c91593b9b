package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/game"
)

var (
	fpsFlag   = flag.Int("fps", constant.FramesPerSecond, "Simulation and render rate in ticks per second")
	seedFlag  = flag.Int64("seed", 0, "Serve angle seed, 0 picks one from the clock")
	debugFlag = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	colorFlag = flag.String("color", "auto", "Color mode: auto, on, off")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)

	err := run()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *fpsFlag <= 0 {
		return fmt.Errorf("invalid -fps %d: must be positive", *fpsFlag)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	match, err := game.NewMatch(game.DefaultConfig(), game.NewRandomAngles(uint64(seed)))
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	// Panic Recovery: restore the terminal before the stack trace is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	color, err := resolveColor(*colorFlag, screen.Colors())
	if err != nil {
		return err
	}

	screen.HideCursor()
	g := NewGame(screen, match, color)
	log.Printf("start: %s fps=%d seed=%d color=%t", constant.GameTitle, *fpsFlag, seed, color)

	g.run(time.Second / time.Duration(*fpsFlag))

	player, ai := match.Scores()
	log.Printf("exit: player=%d ai=%d ticks=%d", player, ai, match.Ticks())
	return nil
}

// run is the frame loop; returns on a quit key or when the screen closes
func (g *Game) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, constant.EventQueueSize)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			g.tick(now)
		}
	}
}

// resolveColor decides whether to draw with the RGB palette
func resolveColor(mode string, colors int) (bool, error) {
	switch mode {
	case "on", "true", "truecolor":
		return true, nil
	case "off", "false", "mono":
		return false, nil
	case "auto", "":
		return colors >= 256, nil
	default:
		return false, fmt.Errorf("invalid -color %q: want auto, on or off", mode)
	}
}
