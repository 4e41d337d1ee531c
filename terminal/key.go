package terminal

// Key identifies a decoded key press. Printable input arrives as KeyRune
// with the rune in Event.Rune; Ctrl and Alt are reported through Modifiers
// rather than dedicated key constants.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

func (m Modifier) Has(flag Modifier) bool { return m&flag != 0 }

type sequence struct {
	key Key
	mod Modifier
}

// CSI sequences, keyed by the bytes between ESC [ and the terminator
// (terminator included).
var csiKeys = map[string]sequence{
	"A": {KeyUp, ModNone},
	"B": {KeyDown, ModNone},
	"C": {KeyRight, ModNone},
	"D": {KeyLeft, ModNone},
	"Z": {KeyBacktab, ModShift},

	// xterm modified arrows: ESC [ 1 ; mod letter
	"1;2A": {KeyUp, ModShift},
	"1;2B": {KeyDown, ModShift},
	"1;2C": {KeyRight, ModShift},
	"1;2D": {KeyLeft, ModShift},
	"1;3A": {KeyUp, ModAlt},
	"1;3B": {KeyDown, ModAlt},
	"1;3C": {KeyRight, ModAlt},
	"1;3D": {KeyLeft, ModAlt},
	"1;5A": {KeyUp, ModCtrl},
	"1;5B": {KeyDown, ModCtrl},
	"1;5C": {KeyRight, ModCtrl},
	"1;5D": {KeyLeft, ModCtrl},

	"H":  {KeyHome, ModNone},
	"F":  {KeyEnd, ModNone},
	"1~": {KeyHome, ModNone},
	"4~": {KeyEnd, ModNone},
	"5~": {KeyPageUp, ModNone},
	"6~": {KeyPageDown, ModNone},
	"2~": {KeyInsert, ModNone},
	"3~": {KeyDelete, ModNone},

	"11~": {KeyF1, ModNone},
	"12~": {KeyF2, ModNone},
	"13~": {KeyF3, ModNone},
	"14~": {KeyF4, ModNone},
	"15~": {KeyF5, ModNone},
	"17~": {KeyF6, ModNone},
	"18~": {KeyF7, ModNone},
	"19~": {KeyF8, ModNone},
	"20~": {KeyF9, ModNone},
	"21~": {KeyF10, ModNone},
	"23~": {KeyF11, ModNone},
	"24~": {KeyF12, ModNone},
}

// SS3 sequences: ESC O x
var ss3Keys = map[string]sequence{
	"A": {KeyUp, ModNone},
	"B": {KeyDown, ModNone},
	"C": {KeyRight, ModNone},
	"D": {KeyLeft, ModNone},
	"H": {KeyHome, ModNone},
	"F": {KeyEnd, ModNone},
	"P": {KeyF1, ModNone},
	"Q": {KeyF2, ModNone},
	"R": {KeyF3, ModNone},
	"S": {KeyF4, ModNone},
}

// The string([]byte) conversion inside a map index does not allocate.
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	s, ok := csiKeys[string(seq)]
	return s.key, s.mod, ok
}

func lookupSS3(seq []byte) (Key, Modifier, bool) {
	s, ok := ss3Keys[string(seq)]
	return s.key, s.mod, ok
}
