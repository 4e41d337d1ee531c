package surface

// Attributes is a bit-set of text attributes. The zero value means "no
// attributes present" (nothing is emitted for it). AttrReset is a distinct
// sentinel that forces an explicit attribute reset command; it is not the
// same as having no flags set.
type Attributes uint16

const (
	AttrNone      Attributes = 0
	AttrBold      Attributes = 1 << 0
	AttrFaint     Attributes = 1 << 1
	AttrItalic    Attributes = 1 << 2
	AttrUnderline Attributes = 1 << 3
	AttrBlink     Attributes = 1 << 4
	AttrReverse   Attributes = 1 << 6
	AttrStrikeout Attributes = 1 << 8

	// AttrReset forces emission of an explicit reset command.
	AttrReset Attributes = 0xFFFF
)

// The bit positions above are chosen so that bit i maps to SGR code i+1:
// bold=1, faint=2, italic=3, underline=4, blink=5, reverse=7, strikeout=9.

func (a Attributes) IsReset() bool     { return a == AttrReset }
func (a Attributes) IsBold() bool      { return a != AttrReset && a&AttrBold != 0 }
func (a Attributes) IsFaint() bool     { return a != AttrReset && a&AttrFaint != 0 }
func (a Attributes) IsItalic() bool    { return a != AttrReset && a&AttrItalic != 0 }
func (a Attributes) IsUnderline() bool { return a != AttrReset && a&AttrUnderline != 0 }
func (a Attributes) IsBlink() bool     { return a != AttrReset && a&AttrBlink != 0 }
func (a Attributes) IsReverse() bool   { return a != AttrReset && a&AttrReverse != 0 }
func (a Attributes) IsStrikeout() bool { return a != AttrReset && a&AttrStrikeout != 0 }

// translate maps the reset sentinel to the empty bit pattern so that
// combination can operate on plain bits.
func (a Attributes) translate() Attributes {
	if a == AttrReset {
		return 0
	}
	return a
}

// Union combines two attribute sets bitwise. AttrNone is the identity:
// combining it with anything yields the other operand. The reset sentinel
// absorbs: combining reset with a flag set yields the flag set, and
// combining reset with reset stays reset rather than becoming "no
// attributes".
func (a Attributes) Union(b Attributes) Attributes {
	if a == AttrNone {
		return b
	}
	if b == AttrNone {
		return a
	}
	v := a.translate() | b.translate()
	if v == 0 {
		// only reachable when both operands are the sentinel
		return AttrReset
	}
	return v
}

// SgrCodes returns the SGR parameter for each set flag, in ascending order.
// The reset sentinel (and only it) yields no codes; callers emit an
// explicit reset for it.
func (a Attributes) SgrCodes() []int {
	bits := a.translate()
	if bits == 0 {
		return nil
	}
	codes := make([]int, 0, 4)
	for i := 0; i < 16; i++ {
		if bits&(1<<i) != 0 {
			codes = append(codes, i+1)
		}
	}
	return codes
}
