package surface

// Pixel is one styled terminal cell: its content, a foreground and
// background color slot, and optional attributes. A pixel always renders as
// exactly one column; content wider than a single codepoint is stored as a
// short string and written verbatim (ligature-like sequences), never
// measured.
//
// Pixels are value types: they are copied and overwritten, never shared.
type Pixel struct {
	ch   rune
	str  string
	Fg   Color
	Bg   Color
	Attr Attributes
}

// EmptyPixel is the blank cell: a space with inherited colors and no
// attributes. The compositor resets the front buffer to this between
// frames.
func EmptyPixel() Pixel {
	return Pixel{ch: ' '}
}

// DirtyPixel is a sentinel guaranteed not to equal any pixel a drawable
// produces; seeding the back buffer with it forces a full first paint.
func DirtyPixel() Pixel {
	return Pixel{ch: ' ', Bg: Rgba{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}.Color()}
}

// NewPixel returns a pixel holding a single codepoint.
func NewPixel(ch rune) Pixel {
	return Pixel{ch: ch}
}

// NewTextPixel returns a pixel holding a short string written as one cell.
func NewTextPixel(s string) Pixel {
	return Pixel{str: s}
}

// Content returns the text the pixel writes to the terminal.
func (p Pixel) Content() string {
	if p.str != "" {
		return p.str
	}
	return string(p.ch)
}

// WithFg returns a copy with the foreground replaced.
func (p Pixel) WithFg(fg Color) Pixel {
	p.Fg = fg
	return p
}

// WithBg returns a copy with the background replaced.
func (p Pixel) WithBg(bg Color) Pixel {
	p.Bg = bg
	return p
}

// AddAttribute unions attr into the pixel's attribute set.
func (p *Pixel) AddAttribute(attr Attributes) {
	if p.Attr == AttrNone {
		p.Attr = attr
		return
	}
	if attr == AttrNone {
		return
	}
	p.Attr = p.Attr.Union(attr)
}

// Styled applies a style bundle to the pixel.
func (p Pixel) Styled(s Style) Pixel {
	p.Fg = s.Fg
	p.Bg = s.Bg
	p.Attr = s.Attr
	return p
}

// Merge overlays src onto p. Content and attributes of the upper layer
// always win. A Transparent source channel inherits p's channel in either
// mode. With BlendAlpha, channels that both resolve to RGBA are
// alpha-composited using the source alpha; unresolvable channels (terminal
// defaults) fall back to replacement. With BlendReplace the source channel
// simply replaces.
func (p *Pixel) Merge(src Pixel, blend BlendMode) {
	fg := mergeChannel(p.Fg, src.Fg, blend)
	bg := mergeChannel(p.Bg, src.Bg, blend)
	*p = src
	p.Fg = fg
	p.Bg = bg
}

func mergeChannel(dst, src Color, blend BlendMode) Color {
	if src.IsTransparent() {
		return dst
	}
	if blend != BlendAlpha {
		return src
	}

	s, ok := src.resolve()
	if !ok {
		return src
	}
	d, ok := dst.resolve()
	if !ok {
		return src
	}
	return s.BlendAlpha(d).Color()
}
