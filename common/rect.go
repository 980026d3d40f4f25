package common

// Rect is an axis-aligned box in world pixels. X and Y are the top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// RectFromMidBottom builds a rect whose bottom edge is centred on (x, y).
func RectFromMidBottom(x, y, w, h float64) Rect {
	return Rect{X: x - w/2, Y: y - h, W: w, H: h}
}

// RectFromCenter builds a rect centred on (x, y).
func RectFromCenter(x, y, w, h float64) Rect {
	return Rect{X: x - w/2, Y: y - h/2, W: w, H: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// MidBottom returns the centre of the bottom edge.
func (r Rect) MidBottom() (float64, float64) {
	return r.CenterX(), r.Bottom()
}

func (r *Rect) SetLeft(v float64)   { r.X = v }
func (r *Rect) SetRight(v float64)  { r.X = v - r.W }
func (r *Rect) SetTop(v float64)    { r.Y = v }
func (r *Rect) SetBottom(v float64) { r.Y = v - r.H }

// Intersects reports whether two rects overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inflate grows the rect by dw and dh while keeping its centre.
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, W: r.W + dw, H: r.H + dh}
}
