package surface

import (
	"testing"

	"github.com/museun/mars/geom"
)

func TestSurfaceAccess(t *testing.T) {
	s := NewSurface(geom.Sz(3, 2), 0)

	s.Put(geom.Pt(1, 1), 7)
	if got := s.At(geom.Pt(1, 1)); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}

	if _, ok := s.Get(geom.Pt(3, 0)); ok {
		t.Error("Expected out-of-bounds Get to report false")
	}
	if _, ok := s.Get(geom.Pt(0, -1)); ok {
		t.Error("Expected negative Get to report false")
	}

	// out-of-bounds Set is dropped silently
	s.Set(geom.Pt(99, 99), 1)

	if !s.Patch(geom.Pt(0, 0), func(v *int) { *v = 3 }) {
		t.Error("Expected in-bounds Patch to report true")
	}
	if got := s.At(geom.Pt(0, 0)); got != 3 {
		t.Errorf("Expected 3 after patch, got %d", got)
	}
}

func TestSurfaceAtPanicsOutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected At to panic out of bounds")
		}
	}()
	NewSurface(geom.Sz(2, 2), 0).At(geom.Pt(2, 0))
}

func TestSurfaceResizeKeep(t *testing.T) {
	s := NewSurface(geom.Sz(5, 5), -1)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			s.Put(geom.Pt(x, y), y*5+x)
		}
	}

	// shrink: the top-left 3x3 survives
	s.Resize(geom.Sz(3, 3), ResizeKeep)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := s.At(geom.Pt(x, y)); got != y*5+x {
				t.Errorf("Expected %d at %d,%d, got %d", y*5+x, x, y, got)
			}
		}
	}

	// grow: kept content stays anchored at the origin, new area defaults
	s.Resize(geom.Sz(4, 4), ResizeKeep)
	if got := s.At(geom.Pt(2, 2)); got != 12 {
		t.Errorf("Expected 12 preserved at 2,2, got %d", got)
	}
	if got := s.At(geom.Pt(3, 3)); got != -1 {
		t.Errorf("Expected default -1 in new area, got %d", got)
	}
}

func TestSurfaceResizeDiscard(t *testing.T) {
	s := NewSurface(geom.Sz(2, 2), 9)
	s.Put(geom.Pt(0, 0), 1)

	// same size still resets content
	s.Resize(geom.Sz(2, 2), ResizeDiscard)
	if got := s.At(geom.Pt(0, 0)); got != 9 {
		t.Errorf("Expected default after same-size discard, got %d", got)
	}

	s.Put(geom.Pt(1, 1), 5)
	s.Resize(geom.Sz(3, 1), ResizeDiscard)
	if s.Size() != geom.Sz(3, 1) {
		t.Errorf("Expected size 3x1, got %+v", s.Size())
	}
	for x := 0; x < 3; x++ {
		if got := s.At(geom.Pt(x, 0)); got != 9 {
			t.Errorf("Expected default at %d,0, got %d", x, got)
		}
	}
}

func TestSurfaceRow(t *testing.T) {
	s := NewSurface(geom.Sz(4, 2), 0)
	s.CopyRow(geom.Pt(1, 1), []int{7, 8, 9, 10})

	row := s.Row(1)
	expected := []int{0, 7, 8, 9}
	for i, want := range expected {
		if row[i] != want {
			t.Errorf("Expected %d at column %d, got %d", want, i, row[i])
		}
	}

	// writes through the row slice land in the surface
	row[0] = 42
	if got := s.At(geom.Pt(0, 1)); got != 42 {
		t.Errorf("Expected 42 via row aliasing, got %d", got)
	}
}

func TestSurfaceEach(t *testing.T) {
	s := NewSurface(geom.Sz(2, 2), 0)
	var visited []geom.Position
	s.Each(func(pos geom.Position, _ int) {
		visited = append(visited, pos)
	})

	expected := []geom.Position{
		geom.Pt(0, 0), geom.Pt(1, 0),
		geom.Pt(0, 1), geom.Pt(1, 1),
	}
	if len(visited) != len(expected) {
		t.Fatalf("Expected %d visits, got %d", len(expected), len(visited))
	}
	for i, want := range expected {
		if visited[i] != want {
			t.Errorf("Expected visit %d at %+v, got %+v", i, want, visited[i])
		}
	}
}

func TestSurfaceOffset(t *testing.T) {
	s := NewSurface(geom.Sz(3, 3), 0).WithOffset(geom.Pt(1, 1))

	// logical -1,-1 maps to physical 0,0
	s.Put(geom.Pt(-1, -1), 5)
	if got := s.At(geom.Pt(-1, -1)); got != 5 {
		t.Errorf("Expected 5 through offset, got %d", got)
	}
	if _, ok := s.Get(geom.Pt(2, 2)); ok {
		t.Error("Expected logical 2,2 to fall outside the offset surface")
	}
}
