package surface

import "github.com/museun/mars/geom"

// BlendMode selects how a put combines with the cell already present.
type BlendMode uint8

const (
	// BlendReplace overwrites the destination cell outright.
	BlendReplace BlendMode = iota
	// BlendAlpha alpha-composites the source colors over the destination;
	// content and attributes still come from the source.
	BlendAlpha
)

// Placer is the minimal drawing capability handed to drawables: put one
// pixel, and report the available area.
type Placer interface {
	Put(pos geom.Position, pixel Pixel, blend BlendMode)
	Size() geom.Size
}

// Renderer is the compositor. It owns a front buffer that drawing calls
// accumulate into and a back buffer mirroring what was last emitted.
// Render diffs the two in row-major order and emits the minimal command
// stream to a Rasterizer, then commits the frame.
//
// Not safe for concurrent use; all mutation happens on one goroutine.
type Renderer struct {
	size  geom.Size
	front *Surface[Pixel]
	back  *Surface[Pixel]

	defaultFg Color
	defaultBg Color
}

// NewRenderer creates a compositor for the given area. The back buffer is
// seeded with the dirty sentinel so the first Render repaints every cell.
func NewRenderer(size geom.Size) *Renderer {
	return &Renderer{
		size:  size,
		front: NewSurface(size, EmptyPixel()),
		back:  NewSurface(size, DirtyPixel()),
	}
}

// DefaultFg sets the fallback foreground and returns the renderer.
func (r *Renderer) DefaultFg(fg Color) *Renderer {
	r.defaultFg = fg
	return r
}

// DefaultBg sets the fallback background and returns the renderer.
func (r *Renderer) DefaultBg(bg Color) *Renderer {
	r.defaultBg = bg
	return r
}

func (r *Renderer) SetDefaultFg(fg Color) { r.defaultFg = fg }
func (r *Renderer) SetDefaultBg(bg Color) { r.defaultBg = bg }

// DefaultColors returns the fallback foreground and background.
func (r *Renderer) DefaultColors() (fg, bg Color) {
	return r.defaultFg, r.defaultBg
}

func (r *Renderer) Size() geom.Size { return r.size }

// Put merges a pixel into the front buffer. Out-of-bounds writes are
// dropped; the caller does not need to clip.
func (r *Renderer) Put(pos geom.Position, pixel Pixel, blend BlendMode) {
	if !pos.InBounds(r.size) {
		return
	}
	r.front.Patch(pos, func(dst *Pixel) {
		dst.Merge(pixel, blend)
	})
}

// Get returns the front-buffer pixel at pos, or false when out of bounds.
func (r *Renderer) Get(pos geom.Position) (Pixel, bool) {
	return r.front.Get(pos)
}

// Patch applies fn to the front-buffer pixel at pos in place.
func (r *Renderer) Patch(pos geom.Position, fn func(*Pixel)) bool {
	return r.front.Patch(pos, fn)
}

// PatchArea applies fn to every front-buffer pixel in the rectangle,
// clipped to the renderer bounds.
func (r *Renderer) PatchArea(pos geom.Position, size geom.Size, fn func(geom.Position, *Pixel)) {
	x0, y0 := max(pos.X, 0), max(pos.Y, 0)
	x1 := min(pos.X+size.Width, r.size.Width)
	y1 := min(pos.Y+size.Height, r.size.Height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := geom.Pt(x, y)
			r.front.Patch(p, func(pixel *Pixel) { fn(p, pixel) })
		}
	}
}

// Fill puts the same pixel across the rectangle.
func (r *Renderer) Fill(pos geom.Position, size geom.Size, pixel Pixel, blend BlendMode) {
	x0, y0 := max(pos.X, 0), max(pos.Y, 0)
	x1 := min(pos.X+size.Width, r.size.Width)
	y1 := min(pos.Y+size.Height, r.size.Height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.Put(geom.Pt(x, y), pixel, blend)
		}
	}
}

// FillWith fills the rectangle with per-position pixels.
func (r *Renderer) FillWith(pos geom.Position, size geom.Size, with func(geom.Position) Pixel) {
	x0, y0 := max(pos.X, 0), max(pos.Y, 0)
	x1 := min(pos.X+size.Width, r.size.Width)
	y1 := min(pos.Y+size.Height, r.size.Height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := geom.Pt(x, y)
			r.Put(p, with(p), BlendReplace)
		}
	}
}

// Clear fills the whole area with the empty pixel carrying the default
// colors.
func (r *Renderer) Clear() {
	r.Fill(geom.Pt(0, 0), r.size, EmptyPixel().WithFg(r.defaultFg).WithBg(r.defaultBg), BlendReplace)
}

// Draw renders a drawable at the origin. Adapters (offsets, anchors) decide
// the final placement.
func (r *Renderer) Draw(d Drawable, blend BlendMode) {
	d.Draw(r, geom.Pt(0, 0), blend)
}

// Resize changes the renderer dimensions, keeping the front and back
// buffers in lockstep. With ResizeDiscard the back buffer is re-seeded with
// the dirty sentinel when it cannot be safely kept, forcing a repaint of
// the affected area on the next Render. References into the grids obtained
// before a resize are invalid afterward.
func (r *Renderer) Resize(size geom.Size, mode ResizeMode) {
	if r.size == size {
		return
	}
	old := r.size
	r.size = size

	switch mode {
	case ResizeKeep:
		r.front.Resize(size, ResizeKeep)
		r.back.Resize(size, ResizeKeep)
	default:
		r.front.Resize(size, ResizeDiscard)
		if old.Height > size.Height {
			r.back.Resize(size, ResizeDiscard)
			r.back.Fill(DirtyPixel())
		} else {
			r.back.Resize(size, ResizeKeep)
		}
	}
}

// Render diffs the front buffer against the back buffer and emits the
// minimal command stream. Every front cell is consumed and reset to the
// empty pixel, so the next frame starts from a clean slate; changed cells
// are committed into the back buffer. A frame with zero differing cells
// emits nothing at all.
//
// On the first rasterizer error the scan aborts and the error is returned;
// whatever was already emitted stays emitted.
func (r *Renderer) Render(rast Rasterizer) error {
	state := renderState{
		fg: r.defaultFg,
		bg: r.defaultBg,
	}

	for y := 0; y < r.size.Height; y++ {
		for x := 0; x < r.size.Width; x++ {
			pos := geom.Pt(x, y)

			pixel := r.front.At(pos)
			r.front.Put(pos, EmptyPixel())

			if pixel == r.back.At(pos) {
				continue
			}

			if !state.seen {
				state.seen = true
				if err := rast.Begin(); err != nil {
					return err
				}
				if err := rast.MoveTo(pos); err != nil {
					return err
				}
				state.setPos(pos)
				if err := rast.DefaultFg(r.defaultFg); err != nil {
					return err
				}
				if err := rast.DefaultBg(r.defaultBg); err != nil {
					return err
				}
			} else if state.needMove(pos) {
				if err := rast.MoveTo(pos); err != nil {
					return err
				}
			}

			fg := pixel.Fg.GetOrDefault(r.defaultFg)
			bg := pixel.Bg.GetOrDefault(r.defaultBg)

			if err := state.syncAttr(rast, pixel.Attr); err != nil {
				return err
			}
			if state.needFg(fg) {
				if err := rast.SetFg(fg); err != nil {
					return err
				}
			}
			if state.needBg(bg) {
				if err := rast.SetBg(bg); err != nil {
					return err
				}
			}

			if err := rast.Write(pixel.Content()); err != nil {
				return err
			}
			r.back.Put(pos, pixel)
		}
	}

	if state.seen {
		return rast.End()
	}
	return nil
}

// renderState tracks what has already been emitted during one Render so
// redundant cursor moves, color sets, and attribute sets are elided.
type renderState struct {
	seen bool

	pos    geom.Position
	hasPos bool

	fg, bg    Color
	fgInvalid bool
	bgInvalid bool

	attr Attributes
}

func (s *renderState) setPos(pos geom.Position) {
	s.pos = pos
	s.hasPos = true
}

// needMove reports whether a cursor move must be emitted for pos. Writing a
// cell advances the terminal cursor one column, so the immediately
// right-adjacent cell on the same row needs no move. Always records pos as
// the new cursor location.
func (s *renderState) needMove(pos geom.Position) bool {
	move := !s.hasPos || s.pos.Y != pos.Y || s.pos.X != pos.X-1
	s.setPos(pos)
	return move
}

// syncAttr reconciles the cell's attribute set with the last emitted one.
// A cell with no attributes after one that set attributes emits an explicit
// reset; since an attribute reset also clobbers the terminal's current
// colors, the tracked fg/bg are invalidated so the next cell restates them.
func (s *renderState) syncAttr(rast Rasterizer, attr Attributes) error {
	if s.attr == attr {
		return nil
	}
	s.attr = attr
	s.fgInvalid = true
	s.bgInvalid = true
	if attr == AttrNone {
		return rast.ResetAttribute()
	}
	return rast.SetAttribute(attr)
}

func (s *renderState) needFg(fg Color) bool {
	if !s.fgInvalid && s.fg == fg {
		return false
	}
	s.fg = fg
	s.fgInvalid = false
	return true
}

func (s *renderState) needBg(bg Color) bool {
	if !s.bgInvalid && s.bg == bg {
		return false
	}
	s.bg = bg
	s.bgInvalid = false
	return true
}
