// Package core holds the types shared by every simulator and the terminal
// platform: world-space rectangles, input frames, the cell screen, colors,
// sprites and the session stats. It has no terminal dependencies.
package core

// Rect is an axis-aligned box in world units (the playfield is 1000x600 by
// default), anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the x of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom is the y of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether the boxes overlap on both axes.
// Boxes that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
