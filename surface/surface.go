package surface

import (
	"fmt"

	"github.com/museun/mars/geom"
)

// ResizeMode selects what happens to existing content when a surface
// changes dimensions.
type ResizeMode uint8

const (
	// ResizeDiscard throws all content away and refills with the default.
	ResizeDiscard ResizeMode = iota
	// ResizeKeep preserves the overlapping rectangle, anchored at the
	// origin; new area is filled with the default.
	ResizeKeep
)

// Surface is a flat row-major grid of values with a logical offset, a size,
// and a default fill value.
//
// Two access paths exist on purpose: Get/Set/Patch are bounds-checked and
// safe for external callers, while At/Put panic on out-of-range coordinates
// and are meant for hot loops that have already validated their bounds.
type Surface[T any] struct {
	offset geom.Position
	size   geom.Size
	def    T
	cells  []T
}

// NewSurface allocates a surface of the given size filled with def.
func NewSurface[T any](size geom.Size, def T) *Surface[T] {
	s := &Surface[T]{size: size, def: def}
	s.cells = make([]T, size.Area())
	for i := range s.cells {
		s.cells[i] = def
	}
	return s
}

// WithOffset sets the logical origin offset applied to every coordinate.
func (s *Surface[T]) WithOffset(offset geom.Position) *Surface[T] {
	s.offset = offset
	return s
}

func (s *Surface[T]) Offset() geom.Position { return s.offset }
func (s *Surface[T]) Size() geom.Size       { return s.size }

// index converts a position into a flat index, panicking when the adjusted
// coordinate is out of range. Trusted fast path; see Get for the safe one.
func (s *Surface[T]) index(pos geom.Position) int {
	pos = pos.Add(s.offset)
	if !pos.InBounds(s.size) {
		panic(fmt.Sprintf("surface: position %+v out of bounds %+v", pos, s.size))
	}
	return pos.Y*s.size.Width + pos.X
}

// At returns the value at pos. Panics when pos is out of bounds.
func (s *Surface[T]) At(pos geom.Position) T {
	return s.cells[s.index(pos)]
}

// Put stores a value at pos. Panics when pos is out of bounds.
func (s *Surface[T]) Put(pos geom.Position, v T) {
	s.cells[s.index(pos)] = v
}

// Get returns the value at pos, or false when pos is out of bounds.
func (s *Surface[T]) Get(pos geom.Position) (T, bool) {
	if !pos.Add(s.offset).InBounds(s.size) {
		var zero T
		return zero, false
	}
	return s.At(pos), true
}

// Set stores a value at pos; out-of-bounds writes are dropped.
func (s *Surface[T]) Set(pos geom.Position, v T) {
	if !pos.Add(s.offset).InBounds(s.size) {
		return
	}
	s.Put(pos, v)
}

// Patch applies fn to the value at pos in place. Reports whether pos was in
// bounds.
func (s *Surface[T]) Patch(pos geom.Position, fn func(*T)) bool {
	if !pos.Add(s.offset).InBounds(s.size) {
		return false
	}
	fn(&s.cells[s.index(pos)])
	return true
}

// Fill sets every cell to v.
func (s *Surface[T]) Fill(v T) {
	for i := range s.cells {
		s.cells[i] = v
	}
}

// Clear resets every cell to the default value.
func (s *Surface[T]) Clear() {
	s.Fill(s.def)
}

// Row returns the backing slice for one row. The slice is invalidated by
// Resize. Panics when y is out of range.
func (s *Surface[T]) Row(y int) []T {
	if y < 0 || y >= s.size.Height {
		panic(fmt.Sprintf("surface: row %d out of bounds %+v", y, s.size))
	}
	start := y * s.size.Width
	return s.cells[start : start+s.size.Width]
}

// CopyRow copies values into the row starting at pos, clipping at the right
// edge. Out-of-bounds rows are dropped.
func (s *Surface[T]) CopyRow(pos geom.Position, row []T) {
	if !pos.InBounds(s.size) {
		return
	}
	dst := s.Row(pos.Y)[pos.X:]
	copy(dst, row)
}

// Each visits every cell in row-major order.
func (s *Surface[T]) Each(fn func(geom.Position, T)) {
	for i, v := range s.cells {
		fn(geom.Pt(i%s.size.Width, i/s.size.Width), v)
	}
}

// Resize changes the surface dimensions. ResizeDiscard resets everything to
// the default (skipping the work when the size is unchanged). ResizeKeep
// allocates a fresh buffer and copies the overlapping rectangle row by row,
// anchored at the origin; content outside the new bounds is dropped and new
// area takes the default.
func (s *Surface[T]) Resize(size geom.Size, mode ResizeMode) {
	switch mode {
	case ResizeKeep:
		cells := make([]T, size.Area())
		for i := range cells {
			cells[i] = s.def
		}
		overlap := s.size.Min(size)
		for y := 0; y < overlap.Height; y++ {
			src := s.cells[y*s.size.Width : y*s.size.Width+overlap.Width]
			copy(cells[y*size.Width:], src)
		}
		s.cells = cells
		s.size = size

	default:
		if s.size == size {
			s.Clear()
			return
		}
		s.size = size
		s.cells = make([]T, size.Area())
		for i := range s.cells {
			s.cells[i] = s.def
		}
	}
}
