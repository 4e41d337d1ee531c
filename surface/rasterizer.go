package surface

import "github.com/museun/mars/geom"

// Rasterizer is the command sink the compositor emits against. A frame is
// bracketed by Begin/End; between them the compositor issues cursor moves,
// style changes, and cell writes. Implementations may buffer; any returned
// error aborts the in-progress frame immediately.
//
// Colors handed to a rasterizer are already resolved: Transparent never
// appears here.
type Rasterizer interface {
	Begin() error
	End() error

	Clear(pos geom.Position, size geom.Size) error
	ClearScreen(bg Color, size geom.Size) error

	MoveTo(pos geom.Position) error

	DefaultFg(color Color) error
	DefaultBg(color Color) error

	SetFg(color Color) error
	SetBg(color Color) error
	ResetFg() error
	ResetBg() error

	SetAttribute(attr Attributes) error
	ResetAttribute() error

	Write(text string) error
}
