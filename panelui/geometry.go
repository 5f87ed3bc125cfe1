// Package panelui is a small retained panel layer drawn every frame: text
// lists, image grids and columns that can be hit-tested, dragged and
// nested without a GUI framework.
package panelui

type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAt builds the rectangle of a w by h box placed at p.
func RectAt(p Point, w, h float64) Rect {
	return Rect{X: p.X, Y: p.Y, Width: w, Height: h}
}

func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Pad grows the rectangle outward by the given margins.
func (r Rect) Pad(left, right, top, bottom float64) Rect {
	return Rect{
		X:      r.X - left,
		Y:      r.Y - top,
		Width:  r.Width + left + right,
		Height: r.Height + top + bottom,
	}
}

// PointInRect reports whether p lies in r. Both edges are inclusive.
func PointInRect(p Point, r Rect) bool {
	return (r.X <= p.X && p.X <= r.X+r.Width) &&
		(r.Y <= p.Y && p.Y <= r.Y+r.Height)
}
