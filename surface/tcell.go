package surface

import (
	"github.com/gdamore/tcell/v2"

	"github.com/museun/mars/geom"
)

// TcellRasterizer drives a tcell.Screen instead of a raw escape stream. It
// keeps its own cursor and style, applying writes via SetContent; End flips
// the frame with Show. Handy when the process already runs under tcell and
// the compositor should not fight it for the tty.
type TcellRasterizer struct {
	screen tcell.Screen

	pos   geom.Position
	style tcell.Style
}

// NewTcellRasterizer wraps an initialized screen. The caller owns the screen
// lifecycle (Init/Fini).
func NewTcellRasterizer(screen tcell.Screen) *TcellRasterizer {
	return &TcellRasterizer{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

func (t *TcellRasterizer) Begin() error {
	t.style = tcell.StyleDefault
	return nil
}

func (t *TcellRasterizer) End() error {
	t.screen.Show()
	return nil
}

func (t *TcellRasterizer) Clear(pos geom.Position, size geom.Size) error {
	for y := pos.Y; y < pos.Y+size.Height; y++ {
		for x := pos.X; x < pos.X+size.Width; x++ {
			t.screen.SetContent(x, y, ' ', nil, t.style)
		}
	}
	return nil
}

func (t *TcellRasterizer) ClearScreen(bg Color, _ geom.Size) error {
	t.style = tcell.StyleDefault.Background(tcellColor(bg))
	t.screen.Fill(' ', t.style)
	return nil
}

func (t *TcellRasterizer) MoveTo(pos geom.Position) error {
	t.pos = pos
	return nil
}

func (t *TcellRasterizer) DefaultFg(color Color) error { return t.SetFg(color) }
func (t *TcellRasterizer) DefaultBg(color Color) error { return t.SetBg(color) }

func (t *TcellRasterizer) SetFg(color Color) error {
	t.style = t.style.Foreground(tcellColor(color))
	return nil
}

func (t *TcellRasterizer) SetBg(color Color) error {
	t.style = t.style.Background(tcellColor(color))
	return nil
}

func (t *TcellRasterizer) ResetFg() error {
	t.style = t.style.Foreground(tcell.ColorDefault)
	return nil
}

func (t *TcellRasterizer) ResetBg() error {
	t.style = t.style.Background(tcell.ColorDefault)
	return nil
}

func (t *TcellRasterizer) SetAttribute(attr Attributes) error {
	t.style = t.style.Attributes(tcellAttrs(attr))
	return nil
}

func (t *TcellRasterizer) ResetAttribute() error {
	t.style = t.style.Attributes(tcell.AttrNone)
	return nil
}

// Write places the text at the tracked cursor, advancing one column per
// rune, matching how the escape-stream path leaves the hardware cursor.
func (t *TcellRasterizer) Write(text string) error {
	for _, ch := range text {
		t.screen.SetContent(t.pos.X, t.pos.Y, ch, nil, t.style)
		t.pos.X++
	}
	return nil
}

func tcellColor(color Color) tcell.Color {
	if rgba, ok := color.Rgba(); ok {
		return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
	}
	if index, ok := color.Index(); ok {
		return tcell.PaletteColor(int(uint8(index)))
	}
	return tcell.ColorDefault
}

func tcellAttrs(attr Attributes) tcell.AttrMask {
	var mask tcell.AttrMask
	if attr.IsBold() {
		mask |= tcell.AttrBold
	}
	if attr.IsFaint() {
		mask |= tcell.AttrDim
	}
	if attr.IsItalic() {
		mask |= tcell.AttrItalic
	}
	if attr.IsUnderline() {
		mask |= tcell.AttrUnderline
	}
	if attr.IsBlink() {
		mask |= tcell.AttrBlink
	}
	if attr.IsReverse() {
		mask |= tcell.AttrReverse
	}
	if attr.IsStrikeout() {
		mask |= tcell.AttrStrikeThrough
	}
	return mask
}
