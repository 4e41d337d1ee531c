package surface

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Rgba is a 24-bit color with an alpha channel.
type Rgba struct {
	R, G, B, A uint8
}

// NewRgba builds a color from explicit channel values.
func NewRgba(r, g, b, a uint8) Rgba {
	return Rgba{R: r, G: g, B: b, A: a}
}

func (c Rgba) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex parses a hex color string. Accepted forms are #RGB, #RGBA,
// #RRGGBB and #RRGGBBAA, with optional surrounding whitespace. The leading
// '#' is mandatory. Anything else is an error; a malformed string never
// produces a color.
func ParseHex(s string) (Rgba, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Rgba{}, fmt.Errorf("empty hex color")
	}
	if trimmed[0] != '#' {
		return Rgba{}, fmt.Errorf("missing '#' prefix in hex color %q", s)
	}

	digits := trimmed[1:]
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return Rgba{}, fmt.Errorf("invalid hex digit %q in color %q", digits[i], s)
		}
	}

	pack := func(hi, lo byte) uint8 {
		return hexDigit(hi)<<4 | hexDigit(lo)
	}

	switch len(digits) {
	case 3:
		return Rgba{pack(digits[0], digits[0]), pack(digits[1], digits[1]), pack(digits[2], digits[2]), 0xFF}, nil
	case 4:
		return Rgba{pack(digits[0], digits[0]), pack(digits[1], digits[1]), pack(digits[2], digits[2]), pack(digits[3], digits[3])}, nil
	case 6:
		return Rgba{pack(digits[0], digits[1]), pack(digits[2], digits[3]), pack(digits[4], digits[5]), 0xFF}, nil
	case 8:
		return Rgba{pack(digits[0], digits[1]), pack(digits[2], digits[3]), pack(digits[4], digits[5]), pack(digits[6], digits[7])}, nil
	}
	return Rgba{}, fmt.Errorf("invalid hex color %q, syntax is #RGB | #RGBA | #RRGGBB | #RRGGBBAA", s)
}

// Hex is the constant-friendly form of ParseHex: it panics on malformed
// input. Use it for literal colors; use ParseHex for dynamic strings.
func Hex(s string) Rgba {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func hexDigit(b byte) uint8 {
	switch {
	case b >= 'a':
		return b - 'a' + 10
	case b >= 'A':
		return b - 'A' + 10
	default:
		return b - '0'
	}
}

func (c Rgba) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color, alpha uint8) Rgba {
	r, g, b := c.Clamped().RGB255()
	return Rgba{R: r, G: g, B: b, A: alpha}
}

// BlendLinear interpolates between c and other in RGB space. mix 0 yields c,
// mix 1 yields other. The result takes the larger alpha.
func (c Rgba) BlendLinear(other Rgba, mix float64) Rgba {
	return fromColorful(c.colorful().BlendRgb(other.colorful(), mix), max(c.A, other.A))
}

// BlendLab interpolates between c and other perceptually (CIE-L*a*b*).
func (c Rgba) BlendLab(other Rgba, mix float64) Rgba {
	return fromColorful(c.colorful().BlendLab(other.colorful(), mix), max(c.A, other.A))
}

// BlendFlat is an even linear mix of the two colors.
func (c Rgba) BlendFlat(other Rgba) Rgba {
	return c.BlendLinear(other, 0.5)
}

// BlendAlpha composites c over dst using c's alpha channel:
// result = (a*src + (255-a)*dst) / 255 per channel. Alpha 0 yields dst
// unchanged, alpha 255 yields c unchanged.
func (c Rgba) BlendAlpha(dst Rgba) Rgba {
	switch c.A {
	case 0:
		return dst
	case 255:
		return c
	}

	a := int(c.A)
	blend := func(src, dst uint8) uint8 {
		return uint8((a*int(src) + (255-a)*int(dst)) / 255)
	}
	return Rgba{
		R: blend(c.R, dst.R),
		G: blend(c.G, dst.G),
		B: blend(c.B, dst.B),
		A: max(c.A, dst.A),
	}
}

// colorKind discriminates the Color tri-state (plus Transparent, which only
// has meaning while compositing).
type colorKind uint8

const (
	colorDefault colorKind = iota
	colorIndexed
	colorRgba
	colorTransparent
)

// Color is a cell color slot: an explicit RGBA value, a palette index, the
// terminal default, or Transparent (inherit whatever is beneath during a
// merge). Transparent never reaches a rasterizer; GetOrDefault resolves it
// first.
type Color struct {
	kind  colorKind
	rgba  Rgba
	index IndexedColor
}

// DefaultColor inherits the terminal's configured default.
var DefaultColor = Color{}

// Transparent inherits from whatever the color is merged on top of.
var Transparent = Color{kind: colorTransparent}

// Color converts the RGBA value into a color slot.
func (c Rgba) Color() Color {
	return Color{kind: colorRgba, rgba: c}
}

// Color converts the palette index into a color slot.
func (c IndexedColor) Color() Color {
	return Color{kind: colorIndexed, index: c}
}

func (c Color) IsDefault() bool     { return c.kind == colorDefault }
func (c Color) IsTransparent() bool { return c.kind == colorTransparent }

// Rgba returns the explicit color value, if the slot holds one.
func (c Color) Rgba() (Rgba, bool) {
	return c.rgba, c.kind == colorRgba
}

// Index returns the palette index, if the slot holds one.
func (c Color) Index() (IndexedColor, bool) {
	return c.index, c.kind == colorIndexed
}

// GetOrDefault resolves Default and Transparent slots to the fallback.
// Concrete slots are returned unchanged.
func (c Color) GetOrDefault(fallback Color) Color {
	if c.kind == colorDefault || c.kind == colorTransparent {
		return fallback
	}
	return c
}

// resolve reduces the slot to a concrete RGBA value when possible. Indexed
// colors convert through the 256-entry palette; Default and Transparent
// have no RGBA equivalent.
func (c Color) resolve() (Rgba, bool) {
	switch c.kind {
	case colorRgba:
		return c.rgba, true
	case colorIndexed:
		return c.index.ToRgb(), true
	}
	return Rgba{}, false
}

func (c Color) String() string {
	switch c.kind {
	case colorRgba:
		return c.rgba.String()
	case colorIndexed:
		return fmt.Sprintf("indexed(%d)", uint8(c.index))
	case colorTransparent:
		return "transparent"
	}
	return "default"
}
