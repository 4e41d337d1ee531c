package surface

import (
	"bytes"
	"io"

	"github.com/museun/mars/geom"
)

// Pre-allocated escape sequence fragments (avoid allocations during render)
var (
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")

	csiSyncBegin = []byte("\x1b[?2026h") // synchronized update start
	csiSyncEnd   = []byte("\x1b[?2026l")

	csiClearAll = []byte("\x1b[2J\x1b[H")

	csiFg256     = []byte("\x1b[38;5;")
	csiBg256     = []byte("\x1b[48;5;")
	csiFgRGB     = []byte("\x1b[38;2;")
	csiBgRGB     = []byte("\x1b[48;2;")
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")
)

// AnsiRasterizer serializes sink commands into xterm escape sequences. The
// stream accumulates in an internal buffer; CopyTo drains it to the actual
// terminal. Frames are bracketed with the synchronized-update sequences so
// conforming terminals apply them atomically.
type AnsiRasterizer struct {
	buf bytes.Buffer
}

// NewAnsiRasterizer returns an empty rasterizer.
func NewAnsiRasterizer() *AnsiRasterizer {
	return &AnsiRasterizer{}
}

// Len reports the number of buffered bytes.
func (a *AnsiRasterizer) Len() int { return a.buf.Len() }

// Bytes exposes the buffered stream without draining it.
func (a *AnsiRasterizer) Bytes() []byte { return a.buf.Bytes() }

// CopyTo drains the buffered stream into out. Nothing is written for an
// empty buffer.
func (a *AnsiRasterizer) CopyTo(out io.Writer) error {
	if a.buf.Len() == 0 {
		return nil
	}
	_, err := a.buf.WriteTo(out)
	return err
}

// WriteTo implements io.WriterTo, draining the buffered stream.
func (a *AnsiRasterizer) WriteTo(out io.Writer) (int64, error) {
	if a.buf.Len() == 0 {
		return 0, nil
	}
	return a.buf.WriteTo(out)
}

// writeInt appends a decimal integer without allocation. Terminal
// parameters are small: 0-255 for colors, rarely beyond 999 for coordinates.
func writeInt(buf *bytes.Buffer, n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n < 10:
		buf.WriteByte(byte(n) + '0')
	case n < 100:
		buf.WriteByte(byte(n/10) + '0')
		buf.WriteByte(byte(n%10) + '0')
	case n < 1000:
		buf.WriteByte(byte(n/100) + '0')
		buf.WriteByte(byte(n/10%10) + '0')
		buf.WriteByte(byte(n%10) + '0')
	default:
		var tmp [8]byte
		i := len(tmp)
		for n > 0 {
			i--
			tmp[i] = byte(n%10) + '0'
			n /= 10
		}
		buf.Write(tmp[i:])
	}
}

func (a *AnsiRasterizer) Begin() error {
	a.buf.Write(csiSyncBegin)
	return nil
}

func (a *AnsiRasterizer) End() error {
	a.buf.Write(csiSyncEnd)
	return nil
}

// Clear emits DECERA for the rectangle.
func (a *AnsiRasterizer) Clear(pos geom.Position, size geom.Size) error {
	a.buf.Write(csi)
	writeInt(&a.buf, pos.Y+1)
	a.buf.WriteByte(';')
	writeInt(&a.buf, pos.X+1)
	a.buf.WriteByte(';')
	writeInt(&a.buf, pos.Y+size.Height)
	a.buf.WriteByte(';')
	writeInt(&a.buf, pos.X+size.Width)
	a.buf.WriteString("$z")
	return nil
}

// ClearScreen resets attributes, paints the background, and erases the
// whole screen, homing the cursor.
func (a *AnsiRasterizer) ClearScreen(bg Color, _ geom.Size) error {
	a.buf.Write(csiSGR0)
	if err := a.SetBg(bg); err != nil {
		return err
	}
	a.buf.Write(csiClearAll)
	return nil
}

func (a *AnsiRasterizer) MoveTo(pos geom.Position) error {
	a.buf.Write(csi)
	writeInt(&a.buf, pos.Y+1)
	a.buf.WriteByte(';')
	writeInt(&a.buf, pos.X+1)
	a.buf.WriteByte('H')
	return nil
}

func (a *AnsiRasterizer) DefaultFg(color Color) error { return a.SetFg(color) }
func (a *AnsiRasterizer) DefaultBg(color Color) error { return a.SetBg(color) }

func (a *AnsiRasterizer) SetFg(color Color) error {
	if rgba, ok := color.Rgba(); ok {
		a.writeRGB(csiFgRGB, rgba)
		return nil
	}
	if index, ok := color.Index(); ok {
		a.writeIndexed(csiFg256, index)
		return nil
	}
	return a.ResetFg()
}

func (a *AnsiRasterizer) SetBg(color Color) error {
	if rgba, ok := color.Rgba(); ok {
		a.writeRGB(csiBgRGB, rgba)
		return nil
	}
	if index, ok := color.Index(); ok {
		a.writeIndexed(csiBg256, index)
		return nil
	}
	return a.ResetBg()
}

func (a *AnsiRasterizer) writeRGB(prefix []byte, c Rgba) {
	a.buf.Write(prefix)
	writeInt(&a.buf, int(c.R))
	a.buf.WriteByte(';')
	writeInt(&a.buf, int(c.G))
	a.buf.WriteByte(';')
	writeInt(&a.buf, int(c.B))
	a.buf.WriteByte('m')
}

func (a *AnsiRasterizer) writeIndexed(prefix []byte, c IndexedColor) {
	a.buf.Write(prefix)
	writeInt(&a.buf, int(uint8(c)))
	a.buf.WriteByte('m')
}

func (a *AnsiRasterizer) ResetFg() error {
	a.buf.Write(csiDefaultFg)
	return nil
}

func (a *AnsiRasterizer) ResetBg() error {
	a.buf.Write(csiDefaultBg)
	return nil
}

// SetAttribute emits one combined SGR sequence for the set flags. SGR
// attributes are additive, so the sequence opens with a reset; otherwise
// flags from the previous run would stay active under the new ones. The
// reset sentinel yields a bare SGR0.
func (a *AnsiRasterizer) SetAttribute(attr Attributes) error {
	codes := attr.SgrCodes()
	if len(codes) == 0 {
		a.buf.Write(csiSGR0)
		return nil
	}
	a.buf.Write(csi)
	a.buf.WriteByte('0')
	for _, code := range codes {
		a.buf.WriteByte(';')
		writeInt(&a.buf, code)
	}
	a.buf.WriteByte('m')
	return nil
}

func (a *AnsiRasterizer) ResetAttribute() error {
	a.buf.Write(csiSGR0)
	return nil
}

func (a *AnsiRasterizer) Write(text string) error {
	a.buf.WriteString(text)
	return nil
}
