package core

// Viewport maps world coordinates onto a character screen.
// The world is WorldW x WorldH units; CameraX scrolls it horizontally.
type Viewport struct {
	WorldW  float64
	WorldH  float64
	CameraX float64
}

// ToCell converts a world point to a screen cell.
func (v Viewport) ToCell(dst *Screen, x, y float64) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0
	}
	cx := (x - v.CameraX) * float64(dst.Width()) / v.WorldW
	cy := y * float64(dst.Height()) / v.WorldH
	return floor(cx), floor(cy)
}

// CellRect converts a world rectangle to a cell rectangle at least one cell
// in each dimension, so small entities stay visible.
func (v Viewport) CellRect(dst *Screen, r Rect) (x, y, w, h int) {
	x, y = v.ToCell(dst, r.X, r.Y)
	x2, y2 := v.ToCell(dst, r.Right(), r.Bottom())
	w = max(x2-x, 1)
	h = max(y2-y, 1)
	return x, y, w, h
}

// Draw renders sprites in order; later sprites overwrite earlier ones.
func (v Viewport) Draw(dst *Screen, sprites []Sprite) {
	for _, sp := range sprites {
		x, y, w, h := v.CellRect(dst, sp.Rect)
		dst.FillRect(x, y, w, h, sp.Glyph, sp.Color)
	}
}

func floor(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
