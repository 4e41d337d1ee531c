package surface

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/museun/mars/geom"
)

// TraceRasterizer records the command stream as human-readable lines. Useful
// in tests and for eyeballing what a frame actually emitted. Cell writes are
// coalesced onto one line until a non-write command arrives; whitespace in
// written text is swapped for '▪' so runs of blanks stay visible.
type TraceRasterizer struct {
	out        strings.Builder
	incomplete bool
}

func NewTraceRasterizer() *TraceRasterizer {
	return &TraceRasterizer{}
}

// String returns the recorded trace.
func (t *TraceRasterizer) String() string { return t.out.String() }

// nextEntry terminates a pending run of cell writes before a new command
// starts its own line.
func (t *TraceRasterizer) nextEntry() {
	if t.incomplete {
		t.out.WriteByte('\n')
		t.incomplete = false
	}
}

func (t *TraceRasterizer) color(name string, color Color) {
	if rgba, ok := color.Rgba(); ok {
		fmt.Fprintf(&t.out, "    %s: %s\n", name, rgba)
		return
	}
	if index, ok := color.Index(); ok {
		fmt.Fprintf(&t.out, "    %s: %d\n", name, uint8(index))
	}
	// default colors trace nothing; the reset commands cover them
}

func (t *TraceRasterizer) Begin() error {
	t.out.Reset()
	t.incomplete = false
	t.out.WriteString("begin\n")
	return nil
}

func (t *TraceRasterizer) End() error {
	t.nextEntry()
	t.out.WriteString("end\n")
	return nil
}

func (t *TraceRasterizer) Clear(pos geom.Position, size geom.Size) error {
	t.nextEntry()
	fmt.Fprintf(&t.out, "    clear %d,%d .. %d,%d\n", pos.X, pos.Y, size.Width, size.Height)
	return nil
}

func (t *TraceRasterizer) ClearScreen(bg Color, _ geom.Size) error {
	t.nextEntry()
	t.color("clear_screen", bg)
	return nil
}

func (t *TraceRasterizer) MoveTo(pos geom.Position) error {
	t.nextEntry()
	fmt.Fprintf(&t.out, "    move to: %d,%d\n", pos.X, pos.Y)
	return nil
}

func (t *TraceRasterizer) DefaultFg(color Color) error {
	t.nextEntry()
	t.color("set_default_fg", color)
	return nil
}

func (t *TraceRasterizer) DefaultBg(color Color) error {
	t.nextEntry()
	t.color("set_default_bg", color)
	return nil
}

func (t *TraceRasterizer) SetFg(color Color) error {
	t.nextEntry()
	t.color("set_fg", color)
	return nil
}

func (t *TraceRasterizer) SetBg(color Color) error {
	t.nextEntry()
	t.color("set_bg", color)
	return nil
}

func (t *TraceRasterizer) ResetFg() error {
	t.nextEntry()
	t.out.WriteString("   reset_fg\n")
	return nil
}

func (t *TraceRasterizer) ResetBg() error {
	t.nextEntry()
	t.out.WriteString("   reset_bg\n")
	return nil
}

func (t *TraceRasterizer) SetAttribute(attr Attributes) error {
	t.nextEntry()
	t.out.WriteString("    set_attribute:")
	for i, code := range attr.SgrCodes() {
		if i > 0 {
			t.out.WriteString(" |")
		}
		fmt.Fprintf(&t.out, " %d", code)
	}
	t.out.WriteByte('\n')
	return nil
}

func (t *TraceRasterizer) ResetAttribute() error {
	t.nextEntry()
	t.out.WriteString("   reset_attribute\n")
	return nil
}

func (t *TraceRasterizer) Write(text string) error {
	if !t.incomplete {
		t.out.WriteString("    ")
		t.incomplete = true
	}
	for _, ch := range text {
		if unicode.IsSpace(ch) {
			ch = '▪'
		}
		t.out.WriteRune(ch)
	}
	return nil
}
