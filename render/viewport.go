package render

import "github.com/lixenwraith/pong/vmath"

// Terminal cells are roughly twice as tall as they are wide
const cellAspect = 2

// Viewport maps logical court pixels onto a block of terminal cells
// The court block sits inside a one-cell frame with a status line below it
type Viewport struct {
	CourtWidth  int
	CourtHeight int

	OriginX, OriginY int // top-left court cell
	Cols, Rows       int // court size in cells
}

// FitViewport fits a court into a cols x rows terminal keeping the court's proportions
// Integer math only so a given terminal size always yields the same layout
func FitViewport(courtW, courtH, cols, rows int) Viewport {
	innerCols := max(cols-2, 1)
	innerRows := max(rows-3, 1) // frame top and bottom, status line

	r := min(innerRows, innerCols*courtH/(cellAspect*courtW))
	r = max(r, 1)
	c := (r*cellAspect*courtW + courtH/2) / courtH
	c = max(min(c, innerCols), 1)

	return Viewport{
		CourtWidth:  courtW,
		CourtHeight: courtH,
		OriginX:     1 + (innerCols-c)/2,
		OriginY:     1,
		Cols:        c,
		Rows:        r,
	}
}

// Col maps a logical x to an absolute screen column inside the court
func (v Viewport) Col(x int) int {
	return v.OriginX + scale(x, v.Cols, v.CourtWidth)
}

// Row maps a logical y to an absolute screen row inside the court
func (v Viewport) Row(y int) int {
	return v.OriginY + scale(y, v.Rows, v.CourtHeight)
}

// Cell maps a logical point to an absolute screen cell
func (v Viewport) Cell(p vmath.Point) (col, row int) {
	return v.Col(p.X), v.Row(p.Y)
}

// Span returns the inclusive column range covered by r
func (v Viewport) Span(r vmath.Rect) (first, last int) {
	first = v.Col(r.Left())
	last = v.Col(r.Right() - 1)
	return first, max(first, last)
}

// Frame returns the outer frame rectangle in screen cells
func (v Viewport) Frame() (left, top, right, bottom int) {
	return v.OriginX - 1, v.OriginY - 1, v.OriginX + v.Cols, v.OriginY + v.Rows
}

// scale maps n in [0, span) to [0, cells), clamping out-of-range values to the edge cells
func scale(n, cells, span int) int {
	i := n * cells / span
	if n < 0 {
		i = 0
	}
	return min(max(i, 0), cells-1)
}
