package vmath

// Point is an integer position in logical pixels
type Point struct {
	X, Y int
}

// Rect is an axis-aligned integer rectangle
// Right and Bottom edges are exclusive: a point at X+W is outside
type Rect struct {
	X, Y int
	W, H int
}

// RectCentered returns a w x h rect centered on (cx, cy)
// The origin is truncated toward zero
func RectCentered(cx, cy float64, w, h int) Rect {
	return Rect{
		X: Trunc(cx - float64(w)/2),
		Y: Trunc(cy - float64(h)/2),
		W: w,
		H: h,
	}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

func (r Rect) CenterX() int { return r.X + r.W/2 }
func (r Rect) CenterY() int { return r.Y + r.H/2 }

func (r Rect) TopLeft() Point     { return Point{r.X, r.Y} }
func (r Rect) TopRight() Point    { return Point{r.X + r.W, r.Y} }
func (r Rect) BottomLeft() Point  { return Point{r.X, r.Y + r.H} }
func (r Rect) BottomRight() Point { return Point{r.X + r.W, r.Y + r.H} }

// Move returns the rect translated by (dx, dy)
func (r Rect) Move(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether o lies entirely inside r (edges may touch)
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

// CollidePoint reports whether p is inside r, right/bottom exclusive
func (r Rect) CollidePoint(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// CollideRect reports whether r and o share any area
// Edge contact and zero-size rects never collide
func (r Rect) CollideRect(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Corners reports which corners of o fall outside r: top-left, top-right, bottom-left, bottom-right
func (r Rect) Corners(o Rect) (topLeft, topRight, botLeft, botRight bool) {
	topLeft = !r.CollidePoint(o.TopLeft())
	topRight = !r.CollidePoint(o.TopRight())
	botLeft = !r.CollidePoint(o.BottomLeft())
	botRight = !r.CollidePoint(o.BottomRight())
	return
}
