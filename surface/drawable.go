package surface

import "github.com/museun/mars/geom"

// Drawable is anything that can place itself onto a Placer. Measure reports
// the footprint the content would occupy within the available area; Draw
// writes it cell by cell at origin, honoring the blend mode.
//
// Adapters (WithFg, WithBg, WithOffset, WithAnchor) wrap a drawable for the
// duration of one draw call; none of them retain the wrapped value past it.
type Drawable interface {
	Draw(p Placer, origin geom.Position, blend BlendMode)
	Measure(available geom.Size) geom.Size
}

// Glyph is a single-codepoint drawable occupying one cell.
type Glyph rune

func (g Glyph) Draw(p Placer, origin geom.Position, blend BlendMode) {
	p.Put(origin, NewPixel(rune(g)), blend)
}

func (g Glyph) Measure(geom.Size) geom.Size {
	return geom.Sz(1, 1)
}

// Text is a multi-line string drawable. A '\n' starts a new row at x=0.
// Rows beyond the available height are silently dropped; that is the
// truncation policy, not an error.
type Text string

func (t Text) Draw(p Placer, origin geom.Position, blend BlendMode) {
	layoutText(string(t), p.Size(), func(pos geom.Position, ch rune) {
		p.Put(pos.Add(origin), NewPixel(ch), blend)
	})
}

func (t Text) Measure(available geom.Size) geom.Size {
	return layoutText(string(t), available, nil)
}

// Fill is a flat color drawable: it paints one cell's background.
type Fill Rgba

func (f Fill) Draw(p Placer, origin geom.Position, blend BlendMode) {
	p.Put(origin, EmptyPixel().WithBg(Rgba(f).Color()), blend)
}

func (f Fill) Measure(geom.Size) geom.Size {
	return geom.Size{}
}

// Empty draws nothing and measures zero.
type Empty struct{}

func (Empty) Draw(Placer, geom.Position, BlendMode) {}
func (Empty) Measure(geom.Size) geom.Size           { return geom.Size{} }

// Draw places the pixel itself.
func (p Pixel) Draw(placer Placer, origin geom.Position, blend BlendMode) {
	placer.Put(origin, p, blend)
}

// Measure reports one cell; a pixel is always a single column.
func (p Pixel) Measure(geom.Size) geom.Size {
	return geom.Sz(1, 1)
}

// layoutText walks the string's line structure within the available area,
// invoking place for every visible cell. Width is the longest line, capped
// at the available width; the scan stops outright once the running maximum
// exceeds it, and once the row count would exceed the available height.
// Height counts the final line even without a trailing break.
func layoutText(s string, available geom.Size, place func(geom.Position, rune)) geom.Size {
	if s == "" {
		return geom.Size{}
	}

	var dx, dy, w int
	for _, ch := range s {
		if w > available.Width {
			break
		}

		if ch == '\n' {
			if dy+1 >= available.Height {
				break
			}
			dy++
			dx = 0
			continue
		}

		if place != nil {
			place(geom.Pt(dx, dy), ch)
		}
		dx++
		w = max(w, dx)
	}

	return geom.Sz(min(w, available.Width), dy+1)
}

// WithFg wraps a drawable, forcing the foreground of every cell it writes.
// The measured size is unchanged.
func WithFg(d Drawable, fg Color) Drawable {
	return &overrideFg{d: d, fg: fg}
}

type overrideFg struct {
	d  Drawable
	fg Color
}

func (o *overrideFg) Draw(p Placer, origin geom.Position, blend BlendMode) {
	o.d.Draw(&fgPlacer{p: p, fg: o.fg}, origin, blend)
}

func (o *overrideFg) Measure(available geom.Size) geom.Size {
	return o.d.Measure(available)
}

type fgPlacer struct {
	p  Placer
	fg Color
}

func (f *fgPlacer) Put(pos geom.Position, pixel Pixel, blend BlendMode) {
	f.p.Put(pos, pixel.WithFg(f.fg), blend)
}

func (f *fgPlacer) Size() geom.Size { return f.p.Size() }

// WithBg wraps a drawable, forcing the background of every cell it writes.
// The measured size is unchanged.
func WithBg(d Drawable, bg Color) Drawable {
	return &overrideBg{d: d, bg: bg}
}

type overrideBg struct {
	d  Drawable
	bg Color
}

func (o *overrideBg) Draw(p Placer, origin geom.Position, blend BlendMode) {
	o.d.Draw(&bgPlacer{p: p, bg: o.bg}, origin, blend)
}

func (o *overrideBg) Measure(available geom.Size) geom.Size {
	return o.d.Measure(available)
}

type bgPlacer struct {
	p  Placer
	bg Color
}

func (b *bgPlacer) Put(pos geom.Position, pixel Pixel, blend BlendMode) {
	b.p.Put(pos, pixel.WithBg(b.bg), blend)
}

func (b *bgPlacer) Size() geom.Size { return b.p.Size() }

// WithOffset wraps a drawable, shifting its origin by a constant delta.
// The measured size is unchanged.
func WithOffset(d Drawable, offset geom.Position) Drawable {
	return &offsetDrawable{d: d, offset: offset}
}

type offsetDrawable struct {
	d      Drawable
	offset geom.Position
}

func (o *offsetDrawable) Draw(p Placer, origin geom.Position, blend BlendMode) {
	o.d.Draw(p, origin.Add(o.offset), blend)
}

func (o *offsetDrawable) Measure(available geom.Size) geom.Size {
	return o.d.Measure(available)
}

// WithAnchor wraps a drawable, aligning it within the placer's area: the
// offset is anchor_factor * (available - measured) per axis, rounded half
// to even.
func WithAnchor(d Drawable, anchor geom.Anchor2) Drawable {
	return &anchoredDrawable{d: d, anchor: anchor}
}

type anchoredDrawable struct {
	d      Drawable
	anchor geom.Anchor2
}

func (a *anchoredDrawable) Draw(p Placer, origin geom.Position, blend BlendMode) {
	available := p.Size()
	offset := a.anchor.Align(available, a.d.Measure(available))
	a.d.Draw(p, origin.Add(offset), blend)
}

func (a *anchoredDrawable) Measure(available geom.Size) geom.Size {
	return a.d.Measure(available)
}

// HLine puts the pixel across [x0, x1] on row y.
func HLine(p Placer, y, x0, x1 int, pixel Pixel, blend BlendMode) {
	Line(p, geom.Horizontal, y, x0, x1, pixel, blend)
}

// VLine puts the pixel down [y0, y1] on column x.
func VLine(p Placer, x, y0, y1 int, pixel Pixel, blend BlendMode) {
	Line(p, geom.Vertical, x, y0, y1, pixel, blend)
}

// Line puts the pixel along the axis from lo to hi (inclusive) at the given
// cross-axis offset.
func Line(p Placer, axis geom.Axis, cross, lo, hi int, pixel Pixel, blend BlendMode) {
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := lo; i <= hi; i++ {
		p.Put(axis.Pack(i, cross), pixel, blend)
	}
}
