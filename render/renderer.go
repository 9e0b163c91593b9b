package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/vmath"
)

// Renderer draws match snapshots onto a tcell screen
type Renderer struct {
	background tcell.Style
	entity     tcell.Style
	border     tcell.Style
	score      tcell.Style

	// Status is drawn on the line below the court when non-empty
	Status string
}

// NewRenderer creates a renderer; color=false falls back to terminal default colors
func NewRenderer(color bool) *Renderer {
	r := &Renderer{Status: constant.GameTitle}
	if !color {
		r.background = tcell.StyleDefault
		r.entity = tcell.StyleDefault.Bold(true)
		r.border = tcell.StyleDefault
		r.score = tcell.StyleDefault
		return r
	}

	bg := tcellColor(constant.ScreenColor)
	r.background = tcell.StyleDefault.Background(bg).Foreground(tcellColor(constant.BallColor))
	r.entity = r.background.Foreground(tcellColor(constant.BatColor))
	r.border = r.background.Foreground(tcellColor(constant.BorderColor))
	r.score = r.background.Foreground(tcellColor(constant.ScoreFontColor))
	return r
}

// Viewport returns the layout Draw would use for the current screen size
func (r *Renderer) Viewport(screen tcell.Screen, snap game.Snapshot) Viewport {
	cols, rows := screen.Size()
	return FitViewport(snap.CourtWidth, snap.CourtHeight, cols, rows)
}

// Draw renders one frame and shows it
// Order: background, frame, score labels, paddles, ball; later layers overwrite earlier ones
func (r *Renderer) Draw(screen tcell.Screen, snap game.Snapshot) {
	screen.SetStyle(r.background)
	screen.Clear()

	vp := r.Viewport(screen, snap)
	r.drawFrame(screen, vp)
	r.drawScores(screen, vp, snap)
	r.drawPaddle(screen, vp, snap, snap.PlayerCenter)
	r.drawPaddle(screen, vp, snap, snap.AICenter)

	col, row := vp.Cell(snap.Ball)
	screen.SetContent(col, row, constant.GlyphBall, nil, r.entity)

	if r.Status != "" {
		_, _, _, bottom := vp.Frame()
		drawText(screen, vp.OriginX-1, bottom+1, r.Status, r.border)
	}

	screen.Show()
}

func (r *Renderer) drawFrame(screen tcell.Screen, vp Viewport) {
	left, top, right, bottom := vp.Frame()
	for x := left + 1; x < right; x++ {
		screen.SetContent(x, top, constant.GlyphRule, nil, r.border)
		screen.SetContent(x, bottom, constant.GlyphRule, nil, r.border)
	}
	for y := top + 1; y < bottom; y++ {
		screen.SetContent(left, y, constant.GlyphBorder, nil, r.border)
		screen.SetContent(right, y, constant.GlyphBorder, nil, r.border)
	}
	screen.SetContent(left, top, constant.GlyphCornerTL, nil, r.border)
	screen.SetContent(right, top, constant.GlyphCornerTR, nil, r.border)
	screen.SetContent(left, bottom, constant.GlyphCornerBL, nil, r.border)
	screen.SetContent(right, bottom, constant.GlyphCornerBR, nil, r.border)
}

// drawScores puts the AI label on the first court row and the player label on the last
// At terminal resolution the window driver's label rows would land on the paddle rows
func (r *Renderer) drawScores(screen tcell.Screen, vp Viewport, snap game.Snapshot) {
	x := vp.Col(constant.ScoreLabelX)
	maxLen := vp.OriginX + vp.Cols - x

	drawText(screen, x, vp.OriginY, clip(ScoreLabel(snap.AIScore), maxLen), r.score)
	drawText(screen, x, vp.OriginY+vp.Rows-1, clip(ScoreLabel(snap.PlayerScore), maxLen), r.score)
}

func (r *Renderer) drawPaddle(screen tcell.Screen, vp Viewport, snap game.Snapshot, center vmath.Point) {
	first, last := vp.Span(snap.PaddleRect(center))
	row := vp.Row(center.Y)
	for x := first; x <= last; x++ {
		screen.SetContent(x, row, constant.GlyphBat, nil, r.entity)
	}
}

// ScoreLabel formats a score the way both drivers display it
func ScoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}

func tcellColor(c constant.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
