package geom

// Axis selects one of the two screen directions. It packs and unpacks
// (main, cross) pairs so layout code can be written once for both
// orientations.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Main returns the component of p along the axis.
func (a Axis) Main(p Position) int {
	if a == Vertical {
		return p.Y
	}
	return p.X
}

// Cross returns the component of p across the axis.
func (a Axis) Cross(p Position) int {
	if a == Vertical {
		return p.X
	}
	return p.Y
}

// Pack builds a position from a main-axis and cross-axis component.
func (a Axis) Pack(main, cross int) Position {
	if a == Vertical {
		return Pt(cross, main)
	}
	return Pt(main, cross)
}

// Flip returns the other axis.
func (a Axis) Flip() Axis {
	if a == Vertical {
		return Horizontal
	}
	return Vertical
}

func (a Axis) IsHorizontal() bool { return a == Horizontal }
func (a Axis) IsVertical() bool   { return a == Vertical }
