package geom

import "math"

// Anchor is a single-axis alignment choice: start, center, or end.
type Anchor uint8

const (
	AnchorMin Anchor = iota
	AnchorCenter
	AnchorMax
)

// Axis-specific aliases.
const (
	AnchorLeft   = AnchorMin
	AnchorRight  = AnchorMax
	AnchorTop    = AnchorMin
	AnchorBottom = AnchorMax
)

// Factor returns the interpolation weight for the anchor: 0 for
// start-aligned, 0.5 for centered, 1 for end-aligned.
func (a Anchor) Factor() float64 {
	switch a {
	case AnchorCenter:
		return 0.5
	case AnchorMax:
		return 1.0
	default:
		return 0.0
	}
}

// Align returns the offset that places content of the given extent within
// the available extent. Fractional results round half to even.
func (a Anchor) Align(available, size int) int {
	return int(math.RoundToEven(float64(available-size) * a.Factor()))
}

// Anchor2 is a per-axis anchor pair, one of the nine alignment points.
type Anchor2 struct {
	X, Y Anchor
}

var (
	LeftTop      = Anchor2{AnchorLeft, AnchorTop}
	CenterTop    = Anchor2{AnchorCenter, AnchorTop}
	RightTop     = Anchor2{AnchorRight, AnchorTop}
	LeftCenter   = Anchor2{AnchorLeft, AnchorCenter}
	CenterCenter = Anchor2{AnchorCenter, AnchorCenter}
	RightCenter  = Anchor2{AnchorRight, AnchorCenter}
	LeftBottom   = Anchor2{AnchorLeft, AnchorBottom}
	CenterBottom = Anchor2{AnchorCenter, AnchorBottom}
	RightBottom  = Anchor2{AnchorRight, AnchorBottom}
)

// Align returns the offset that places content of the given size within the
// available area, independently per axis.
func (a Anchor2) Align(available, size Size) Position {
	return Pt(
		a.X.Align(available.Width, size.Width),
		a.Y.Align(available.Height, size.Height),
	)
}
