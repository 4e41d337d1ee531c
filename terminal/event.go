package terminal

import "github.com/museun/mars/geom"

// EventType distinguishes input event categories.
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventMouse
	EventError
	EventClosed
)

// Event is one decoded terminal event.
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier

	Size geom.Size // EventResize
	Err  error     // EventError

	Mouse       geom.Position // EventMouse, zero-indexed
	MouseButton MouseButton
	MouseAction MouseAction
}

// IsKey reports whether the event is a press of the given key.
func (e Event) IsKey(key Key) bool {
	return e.Type == EventKey && e.Key == key
}

// IsRune reports whether the event is the given printable character with no
// modifiers beyond shift.
func (e Event) IsRune(ch rune) bool {
	return e.Type == EventKey && e.Key == KeyRune && e.Rune == ch &&
		e.Modifiers&(ModAlt|ModCtrl) == 0
}

// IsCtrl reports whether the event is Ctrl plus the given letter.
func (e Event) IsCtrl(ch rune) bool {
	return e.Type == EventKey && e.Key == KeyRune && e.Rune == ch &&
		e.Modifiers.Has(ModCtrl)
}

// MouseButton identifies which button an EventMouse refers to.
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseMiddle:
		return "middle"
	case MouseRight:
		return "right"
	case MouseWheelUp:
		return "wheel-up"
	case MouseWheelDown:
		return "wheel-down"
	}
	return "none"
}

// MouseAction is what the button (or pointer) did.
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "press"
	case MouseActionRelease:
		return "release"
	case MouseActionMove:
		return "move"
	case MouseActionDrag:
		return "drag"
	}
	return "none"
}

// MouseMode selects which pointer events the terminal reports. Modes
// combine: MouseClick | MouseDrag.
type MouseMode uint8

const (
	MouseOff    MouseMode = 0
	MouseClick  MouseMode = 1 << 0
	MouseDrag   MouseMode = 1 << 1
	MouseMotion MouseMode = 1 << 2
)
