package surface

// Style bundles the presentation of a draw call: colors, attributes, and
// the blend mode to composite with.
type Style struct {
	Fg    Color
	Bg    Color
	Attr  Attributes
	Blend BlendMode
}

// WithFg returns a copy with the foreground replaced.
func (s Style) WithFg(fg Color) Style {
	s.Fg = fg
	return s
}

// WithBg returns a copy with the background replaced.
func (s Style) WithBg(bg Color) Style {
	s.Bg = bg
	return s
}

// WithAttr returns a copy with the attribute set replaced.
func (s Style) WithAttr(attr Attributes) Style {
	s.Attr = attr
	return s
}

// WithBlend returns a copy with the blend mode replaced.
func (s Style) WithBlend(blend BlendMode) Style {
	s.Blend = blend
	return s
}
