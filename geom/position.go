package geom

// Position is a cell coordinate. It may be negative; the surface layer
// decides how out-of-range coordinates are treated.
type Position struct {
	X, Y int
}

// Pt is shorthand for Position{x, y}.
func Pt(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) Add(o Position) Position {
	return Pt(p.X+o.X, p.Y+o.Y)
}

func (p Position) Sub(o Position) Position {
	return Pt(p.X-o.X, p.Y-o.Y)
}

func (p Position) Mul(n int) Position {
	return Pt(p.X*n, p.Y*n)
}

func (p Position) Neg() Position {
	return Pt(-p.X, -p.Y)
}

func (p Position) Min(o Position) Position {
	return Pt(min(p.X, o.X), min(p.Y, o.Y))
}

func (p Position) Max(o Position) Position {
	return Pt(max(p.X, o.X), max(p.Y, o.Y))
}

func (p Position) Clamp(lo, hi Position) Position {
	return p.Max(lo).Min(hi)
}

// Delta returns the offset from p to o.
func (p Position) Delta(o Position) Delta {
	return Delta{X: o.X - p.X, Y: o.Y - p.Y}
}

// ToSize reinterprets the coordinate as a size.
func (p Position) ToSize() Size {
	return Sz(p.X, p.Y)
}

// InBounds reports whether p lies within [0, size).
func (p Position) InBounds(size Size) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < size.Width && p.Y < size.Height
}

// Delta is a displacement between two positions.
type Delta struct {
	X, Y int
}
