package geom

// Size is a width/height pair measured in cells.
type Size struct {
	Width, Height int
}

// Sz is shorthand for Size{w, h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

func (s Size) Area() int {
	return s.Width * s.Height
}

func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Size) Min(o Size) Size {
	return Sz(min(s.Width, o.Width), min(s.Height, o.Height))
}

func (s Size) Max(o Size) Size {
	return Sz(max(s.Width, o.Width), max(s.Height, o.Height))
}

func (s Size) Clamp(lo, hi Size) Size {
	return s.Max(lo).Min(hi)
}

func (s Size) Add(o Size) Size {
	return Sz(s.Width+o.Width, s.Height+o.Height)
}

func (s Size) Sub(o Size) Size {
	return Sz(s.Width-o.Width, s.Height-o.Height)
}

// ToPosition reinterprets the size as a coordinate.
func (s Size) ToPosition() Position {
	return Pt(s.Width, s.Height)
}

// Shrink removes a margin from all four edges, clamping at zero.
func (s Size) Shrink(m Margin) Size {
	sum := m.Sum()
	return Sz(max(s.Width-sum.Width, 0), max(s.Height-sum.Height, 0))
}
