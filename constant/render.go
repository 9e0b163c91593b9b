package constant

// RGB triplets shared by frame drivers
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	ScreenColor    = RGB{5, 5, 5}
	BallColor      = RGB{250, 250, 250}
	BatColor       = RGB{250, 250, 250}
	ScoreFontColor = RGB{250, 250, 250}
	BorderColor    = RGB{90, 90, 90}
)

// Score label placement in logical pixels (x, y from top-left)
const (
	ScoreLabelX        = 10
	PlayerScoreOffsetY = 24 // measured up from the bottom edge
	AIScoreY           = 12
	ScoreFontSize      = 24
)

// Terminal glyphs
const (
	GlyphBat    = '█'
	GlyphBall   = '●'
	GlyphBorder = '│'
	GlyphRule   = '─'
)

// Court frame corners
const (
	GlyphCornerTL = '┌'
	GlyphCornerTR = '┐'
	GlyphCornerBL = '└'
	GlyphCornerBR = '┘'
)
