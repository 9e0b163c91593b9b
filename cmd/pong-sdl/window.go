package main

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/vmath"
)

// Window owns the SDL window, renderer and optional score font
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font // nil when no font could be loaded
}

// NewWindow opens a window of court size times scale
// Drawing uses logical court pixels; SDL scales them to the window
func NewWindow(title string, courtW, courtH, scale int, fontPath string) (*Window, error) {
	if err := sdl.Init(uint32(sdl.INIT_VIDEO)); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}

	window, err := sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(courtW*scale), int32(courtH*scale), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	if err := renderer.SetLogicalSize(int32(courtW), int32(courtH)); err != nil {
		log.Printf("logical size: %v", err)
	}

	w := &Window{window: window, renderer: renderer}
	w.font = openFont(fontPath)
	return w, nil
}

// openFont loads the score font, nil disables score text
func openFont(path string) *ttf.Font {
	if path == "" {
		return nil
	}
	if err := ttf.Init(); err != nil {
		log.Printf("ttf init: %v", err)
		return nil
	}
	font, err := ttf.OpenFont(path, constant.ScoreFontSize)
	if err != nil {
		log.Printf("open font %s: %v", path, err)
		ttf.Quit()
		return nil
	}
	return font
}

// Close releases every SDL resource in reverse order of creation
func (w *Window) Close() {
	if w.font != nil {
		w.font.Close()
		ttf.Quit()
	}
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}

// Draw renders one frame: background, scores, paddles, ball
func (w *Window) Draw(snap game.Snapshot) {
	bg := constant.ScreenColor
	w.renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	w.renderer.Clear()

	if w.font != nil {
		w.drawText(render.ScoreLabel(snap.PlayerScore), constant.ScoreLabelX, snap.CourtHeight-constant.PlayerScoreOffsetY)
		w.drawText(render.ScoreLabel(snap.AIScore), constant.ScoreLabelX, constant.AIScoreY)
	}

	w.fillRect(snap.PaddleRect(snap.PlayerCenter), constant.BatColor)
	w.fillRect(snap.PaddleRect(snap.AICenter), constant.BatColor)
	w.drawBall(snap.Ball, snap.BallRadius)

	w.renderer.Present()
}

func (w *Window) fillRect(r vmath.Rect, c constant.RGB) {
	w.renderer.SetDrawColor(c.R, c.G, c.B, 255)
	w.renderer.FillRect(&sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)})
}

// drawBall draws a filled circle, falling back to the bounding square when gfx fails
func (w *Window) drawBall(center vmath.Point, radius int) {
	c := constant.BallColor
	if gfx.FilledCircleRGBA(w.renderer, int32(center.X), int32(center.Y), int32(radius), c.R, c.G, c.B, 255) {
		return
	}
	w.fillRect(vmath.RectCentered(float64(center.X), float64(center.Y), 2*radius, 2*radius), c)
}

func (w *Window) drawText(text string, x, y int) {
	c := constant.ScoreFontColor
	surface, err := w.font.RenderUTF8Solid(text, sdl.Color{R: c.R, G: c.G, B: c.B, A: 255})
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := w.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	w.renderer.Copy(texture, nil, &sdl.Rect{X: int32(x), Y: int32(y), W: surface.W, H: surface.H})
}
