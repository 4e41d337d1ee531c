package surface

import (
	"errors"
	"fmt"
	"testing"

	"github.com/museun/mars/geom"
)

// recorder captures the command stream as tagged strings for assertions.
type recorder struct {
	ops []string
}

func (r *recorder) Begin() error { r.ops = append(r.ops, "begin"); return nil }
func (r *recorder) End() error   { r.ops = append(r.ops, "end"); return nil }

func (r *recorder) Clear(pos geom.Position, size geom.Size) error {
	r.ops = append(r.ops, fmt.Sprintf("clear %d,%d %dx%d", pos.X, pos.Y, size.Width, size.Height))
	return nil
}

func (r *recorder) ClearScreen(bg Color, _ geom.Size) error {
	r.ops = append(r.ops, "clear_screen "+bg.String())
	return nil
}

func (r *recorder) MoveTo(pos geom.Position) error {
	r.ops = append(r.ops, fmt.Sprintf("move %d,%d", pos.X, pos.Y))
	return nil
}

func (r *recorder) DefaultFg(c Color) error { r.ops = append(r.ops, "default_fg "+c.String()); return nil }
func (r *recorder) DefaultBg(c Color) error { r.ops = append(r.ops, "default_bg "+c.String()); return nil }
func (r *recorder) SetFg(c Color) error     { r.ops = append(r.ops, "fg "+c.String()); return nil }
func (r *recorder) SetBg(c Color) error     { r.ops = append(r.ops, "bg "+c.String()); return nil }
func (r *recorder) ResetFg() error          { r.ops = append(r.ops, "reset_fg"); return nil }
func (r *recorder) ResetBg() error          { r.ops = append(r.ops, "reset_bg"); return nil }

func (r *recorder) SetAttribute(attr Attributes) error {
	r.ops = append(r.ops, fmt.Sprintf("attr %v", attr.SgrCodes()))
	return nil
}

func (r *recorder) ResetAttribute() error {
	r.ops = append(r.ops, "reset_attr")
	return nil
}

func (r *recorder) Write(text string) error {
	r.ops = append(r.ops, "write "+text)
	return nil
}

func (r *recorder) count(prefix string) int {
	var n int
	for _, op := range r.ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// flush runs one Render so the dirty first frame is out of the way.
func flush(t *testing.T, r *Renderer) {
	t.Helper()
	if err := r.Render(&recorder{}); err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
}

func TestRenderFirstFramePaintsEverything(t *testing.T) {
	r := NewRenderer(geom.Sz(3, 2))
	rec := &recorder{}
	if err := r.Render(rec); err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	if writes := rec.count("write"); writes != 6 {
		t.Errorf("Expected 6 cell writes on the first frame, got %d", writes)
	}
	// one move per row; cells within a row ride the cursor advance
	if moves := rec.count("move"); moves != 2 {
		t.Errorf("Expected 2 cursor moves, got %d", moves)
	}
	if rec.ops[0] != "begin" || rec.ops[len(rec.ops)-1] != "end" {
		t.Errorf("Expected begin/end bracketing, got %v", rec.ops)
	}
	// the frame opens by stating the default colors
	if rec.count("default_fg") != 1 || rec.count("default_bg") != 1 {
		t.Errorf("Expected defaults stated once, got %v", rec.ops)
	}
}

func TestRenderUnchangedFrameEmitsNothing(t *testing.T) {
	r := NewRenderer(geom.Sz(4, 4))
	flush(t, r)

	rec := &recorder{}
	if err := r.Render(rec); err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	if len(rec.ops) != 0 {
		t.Errorf("Expected an empty command stream, got %v", rec.ops)
	}
}

func TestRenderCursorElision(t *testing.T) {
	t.Run("Contiguous run needs one move", func(t *testing.T) {
		r := NewRenderer(geom.Sz(4, 1))
		flush(t, r)

		for x, ch := range "abcd" {
			r.Put(geom.Pt(x, 0), NewPixel(ch), BlendReplace)
		}

		rec := &recorder{}
		if err := r.Render(rec); err != nil {
			t.Fatalf("Unexpected render error: %v", err)
		}
		if moves := rec.count("move"); moves != 1 {
			t.Errorf("Expected 1 move for a contiguous run, got %d: %v", moves, rec.ops)
		}
		if writes := rec.count("write"); writes != 4 {
			t.Errorf("Expected 4 writes, got %d", writes)
		}
	})

	t.Run("Gap forces a move", func(t *testing.T) {
		r := NewRenderer(geom.Sz(4, 1))
		flush(t, r)

		r.Put(geom.Pt(0, 0), NewPixel('a'), BlendReplace)
		r.Put(geom.Pt(2, 0), NewPixel('b'), BlendReplace)

		rec := &recorder{}
		if err := r.Render(rec); err != nil {
			t.Fatalf("Unexpected render error: %v", err)
		}
		if moves := rec.count("move"); moves != 2 {
			t.Errorf("Expected 2 moves across the gap, got %d: %v", moves, rec.ops)
		}
	})

	t.Run("Row wrap forces a move", func(t *testing.T) {
		r := NewRenderer(geom.Sz(2, 2))
		flush(t, r)

		// last cell of row 0 and first cell of row 1 are adjacent in
		// memory but not on screen
		r.Put(geom.Pt(1, 0), NewPixel('a'), BlendReplace)
		r.Put(geom.Pt(0, 1), NewPixel('b'), BlendReplace)

		rec := &recorder{}
		if err := r.Render(rec); err != nil {
			t.Fatalf("Unexpected render error: %v", err)
		}
		if moves := rec.count("move"); moves != 2 {
			t.Errorf("Expected 2 moves across the row wrap, got %d: %v", moves, rec.ops)
		}
	})
}

func TestRenderStyleElision(t *testing.T) {
	r := NewRenderer(geom.Sz(4, 1))
	flush(t, r)

	red := Hex("#ff0000").Color()
	for x, ch := range "abc" {
		r.Put(geom.Pt(x, 0), NewPixel(ch).WithFg(red), BlendReplace)
	}

	rec := &recorder{}
	if err := r.Render(rec); err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	if fgs := rec.count("fg"); fgs != 1 {
		t.Errorf("Expected 1 foreground change for a same-style run, got %d: %v", fgs, rec.ops)
	}
	if bgs := rec.count("bg"); bgs != 0 {
		t.Errorf("Expected no background changes, got %d: %v", bgs, rec.ops)
	}
}

func TestRenderAttributeTransitions(t *testing.T) {
	r := NewRenderer(geom.Sz(2, 1))
	flush(t, r)

	bold := NewPixel('a')
	bold.AddAttribute(AttrBold)
	r.Put(geom.Pt(0, 0), bold, BlendReplace)
	r.Put(geom.Pt(1, 0), NewPixel('b'), BlendReplace)

	rec := &recorder{}
	if err := r.Render(rec); err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	if attrs := rec.count("attr"); attrs != 1 {
		t.Errorf("Expected 1 attribute set, got %d: %v", attrs, rec.ops)
	}
	// the plain cell after the bold one must reset explicitly
	if resets := rec.count("reset_attr"); resets != 1 {
		t.Errorf("Expected 1 attribute reset, got %d: %v", resets, rec.ops)
	}
}

func TestRenderDefaultColorResolution(t *testing.T) {
	bg := Hex("#112233").Color()
	r := NewRenderer(geom.Sz(1, 1)).DefaultBg(bg)
	rec := &recorder{}
	if err := r.Render(rec); err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	// the cell's Default bg resolves through the renderer default
	if rec.count("default_bg #112233ff") != 1 {
		t.Errorf("Expected default bg to be stated, got %v", rec.ops)
	}
	if rec.count("bg") != 0 {
		t.Errorf("Expected no per-cell bg change when it matches the default, got %v", rec.ops)
	}
}

type failingRasterizer struct {
	recorder
	err error
}

func (f *failingRasterizer) Write(string) error { return f.err }

func TestRenderAbortsOnError(t *testing.T) {
	r := NewRenderer(geom.Sz(3, 3))

	boom := errors.New("sink closed")
	if err := r.Render(&failingRasterizer{err: boom}); !errors.Is(err, boom) {
		t.Errorf("Expected the sink error to propagate, got %v", err)
	}
}

func TestRenderOutOfBoundsPutDropped(t *testing.T) {
	r := NewRenderer(geom.Sz(2, 2))
	flush(t, r)

	r.Put(geom.Pt(5, 5), NewPixel('x'), BlendReplace)
	r.Put(geom.Pt(-1, 0), NewPixel('x'), BlendReplace)

	rec := &recorder{}
	if err := r.Render(rec); err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	if len(rec.ops) != 0 {
		t.Errorf("Expected out-of-bounds puts to be dropped, got %v", rec.ops)
	}
}

func TestRenderResize(t *testing.T) {
	t.Run("Shrinking height repaints everything", func(t *testing.T) {
		r := NewRenderer(geom.Sz(3, 3))
		flush(t, r)

		r.Resize(geom.Sz(3, 2), ResizeDiscard)
		rec := &recorder{}
		if err := r.Render(rec); err != nil {
			t.Fatalf("Unexpected render error: %v", err)
		}
		if writes := rec.count("write"); writes != 6 {
			t.Errorf("Expected a full 6-cell repaint after shrink, got %d", writes)
		}
	})

	t.Run("Growing height repaints only the new rows", func(t *testing.T) {
		r := NewRenderer(geom.Sz(2, 2))
		flush(t, r)

		r.Resize(geom.Sz(2, 3), ResizeDiscard)
		rec := &recorder{}
		if err := r.Render(rec); err != nil {
			t.Fatalf("Unexpected render error: %v", err)
		}
		if writes := rec.count("write"); writes != 2 {
			t.Errorf("Expected only the new row (2 cells) to repaint, got %d", writes)
		}
	})

	t.Run("Same size is a no-op", func(t *testing.T) {
		r := NewRenderer(geom.Sz(2, 2))
		flush(t, r)

		r.Resize(geom.Sz(2, 2), ResizeDiscard)
		rec := &recorder{}
		if err := r.Render(rec); err != nil {
			t.Fatalf("Unexpected render error: %v", err)
		}
		if len(rec.ops) != 0 {
			t.Errorf("Expected nothing after a same-size resize, got %v", rec.ops)
		}
	})
}

func TestRenderConsumesFrontBuffer(t *testing.T) {
	r := NewRenderer(geom.Sz(2, 1))
	flush(t, r)

	r.Put(geom.Pt(0, 0), NewPixel('x'), BlendReplace)
	flush(t, r)

	// drawing is immediate-mode: a cell not re-put reverts to blank, so
	// the frame after painting 'x' erases it again
	rec := &recorder{}
	if err := r.Render(rec); err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	if writes := rec.count("write  "); writes != 1 {
		t.Errorf("Expected 1 blanking write, got %v", rec.ops)
	}

	// with the blank committed, the next frame has nothing to do
	rec = &recorder{}
	if err := r.Render(rec); err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	if len(rec.ops) != 0 {
		t.Errorf("Expected a settled screen to emit nothing, got %v", rec.ops)
	}
}
