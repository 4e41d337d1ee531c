package geom

// Margin is a per-edge inset in cells.
type Margin struct {
	Left, Right, Top, Bottom int
}

// MarginSame returns a margin with the same inset on every edge.
func MarginSame(m int) Margin {
	return MarginSymmetric(m, m)
}

// MarginSymmetric returns a margin with a horizontal and a vertical inset.
func MarginSymmetric(x, y int) Margin {
	return Margin{Left: x, Right: x, Top: y, Bottom: y}
}

// Sum returns the total horizontal and vertical inset.
func (m Margin) Sum() Size {
	return Sz(m.Left+m.Right, m.Top+m.Bottom)
}

// LeftTop returns the top-left inset as a position.
func (m Margin) LeftTop() Position {
	return Pt(m.Left, m.Top)
}

// RightBottom returns the bottom-right inset as a position.
func (m Margin) RightBottom() Position {
	return Pt(m.Right, m.Bottom)
}
