package terminal

import (
	"testing"

	"github.com/museun/mars/geom"
)

func collect(data []byte) (events []Event, consumed int) {
	consumed = decode(data, func(ev Event) {
		events = append(events, ev)
	})
	return events, consumed
}

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Event
	}{
		{
			name:     "Printable ASCII",
			input:    "q",
			expected: Event{Type: EventKey, Key: KeyRune, Rune: 'q'},
		},
		{
			name:     "UTF-8 multibyte",
			input:    "é",
			expected: Event{Type: EventKey, Key: KeyRune, Rune: 'é'},
		},
		{
			name:     "Enter",
			input:    "\r",
			expected: Event{Type: EventKey, Key: KeyEnter},
		},
		{
			name:     "Tab",
			input:    "\t",
			expected: Event{Type: EventKey, Key: KeyTab},
		},
		{
			name:     "Backspace DEL",
			input:    "\x7f",
			expected: Event{Type: EventKey, Key: KeyBackspace},
		},
		{
			name:     "Ctrl letter",
			input:    "\x03",
			expected: Event{Type: EventKey, Key: KeyRune, Rune: 'c', Modifiers: ModCtrl},
		},
		{
			name:     "Ctrl space",
			input:    "\x00",
			expected: Event{Type: EventKey, Key: KeyRune, Rune: ' ', Modifiers: ModCtrl},
		},
		{
			name:     "Arrow up CSI",
			input:    "\x1b[A",
			expected: Event{Type: EventKey, Key: KeyUp},
		},
		{
			name:     "Ctrl arrow",
			input:    "\x1b[1;5C",
			expected: Event{Type: EventKey, Key: KeyRight, Modifiers: ModCtrl},
		},
		{
			name:     "Shift tab",
			input:    "\x1b[Z",
			expected: Event{Type: EventKey, Key: KeyBacktab, Modifiers: ModShift},
		},
		{
			name:     "Function key tilde form",
			input:    "\x1b[15~",
			expected: Event{Type: EventKey, Key: KeyF5},
		},
		{
			name:     "SS3 F1",
			input:    "\x1bOP",
			expected: Event{Type: EventKey, Key: KeyF1},
		},
		{
			name:     "Alt printable",
			input:    "\x1bx",
			expected: Event{Type: EventKey, Key: KeyRune, Rune: 'x', Modifiers: ModAlt},
		},
		{
			name:     "Alt escape",
			input:    "\x1b\x1b",
			expected: Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt},
		},
		{
			name:     "Delete",
			input:    "\x1b[3~",
			expected: Event{Type: EventKey, Key: KeyDelete},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, consumed := collect([]byte(tt.input))
			if consumed != len(tt.input) {
				t.Errorf("Expected %d bytes consumed, got %d", len(tt.input), consumed)
			}
			if len(events) != 1 {
				t.Fatalf("Expected 1 event, got %d: %v", len(events), events)
			}
			if events[0] != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, events[0])
			}
		})
	}
}

func TestDecodeIncomplete(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Lone escape", input: "\x1b"},
		{name: "Partial CSI", input: "\x1b[1;5"},
		{name: "Partial SS3", input: "\x1bO"},
		{name: "Split UTF-8", input: "\xc3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, consumed := collect([]byte(tt.input))
			if consumed != 0 {
				t.Errorf("Expected nothing consumed, got %d", consumed)
			}
			if len(events) != 0 {
				t.Errorf("Expected no events, got %v", events)
			}
		})
	}
}

func TestDecodeStream(t *testing.T) {
	// a run of keys with an incomplete sequence at the tail
	events, consumed := collect([]byte("ab\x1b[A\x1b["))
	if consumed != 5 {
		t.Errorf("Expected 5 bytes consumed, got %d", consumed)
	}

	expected := []Event{
		{Type: EventKey, Key: KeyRune, Rune: 'a'},
		{Type: EventKey, Key: KeyRune, Rune: 'b'},
		{Type: EventKey, Key: KeyUp},
	}
	if len(events) != len(expected) {
		t.Fatalf("Expected %d events, got %d: %v", len(expected), len(events), events)
	}
	for i, want := range expected {
		if events[i] != want {
			t.Errorf("Expected event %d %+v, got %+v", i, want, events[i])
		}
	}
}

func TestDecodeUnknownCSISwallowed(t *testing.T) {
	events, consumed := collect([]byte("\x1b[99Xq"))
	if consumed != len("\x1b[99Xq") {
		t.Errorf("Expected the whole input consumed, got %d", consumed)
	}
	if len(events) != 1 || !events[0].IsRune('q') {
		t.Errorf("Expected only the trailing q, got %v", events)
	}
}

func TestDecodeSGRMouse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		button   MouseButton
		action   MouseAction
		pos      geom.Position
		mod      Modifier
	}{
		{
			name:   "Left press",
			input:  "\x1b[<0;10;5M",
			button: MouseLeft,
			action: MouseActionPress,
			pos:    geom.Pt(9, 4),
		},
		{
			name:   "Left release",
			input:  "\x1b[<0;10;5m",
			button: MouseLeft,
			action: MouseActionRelease,
			pos:    geom.Pt(9, 4),
		},
		{
			name:   "Drag",
			input:  "\x1b[<32;3;4M",
			button: MouseLeft,
			action: MouseActionDrag,
			pos:    geom.Pt(2, 3),
		},
		{
			name:   "Motion without button",
			input:  "\x1b[<35;3;4M",
			button: MouseNone,
			action: MouseActionMove,
			pos:    geom.Pt(2, 3),
		},
		{
			name:   "Wheel up",
			input:  "\x1b[<64;1;1M",
			button: MouseWheelUp,
			action: MouseActionPress,
			pos:    geom.Pt(0, 0),
		},
		{
			name:   "Ctrl click",
			input:  "\x1b[<16;2;2M",
			button: MouseLeft,
			action: MouseActionPress,
			pos:    geom.Pt(1, 1),
			mod:    ModCtrl,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, consumed := collect([]byte(tt.input))
			if consumed != len(tt.input) {
				t.Errorf("Expected %d consumed, got %d", len(tt.input), consumed)
			}
			if len(events) != 1 {
				t.Fatalf("Expected 1 event, got %v", events)
			}

			ev := events[0]
			if ev.Type != EventMouse {
				t.Fatalf("Expected a mouse event, got %+v", ev)
			}
			if ev.MouseButton != tt.button {
				t.Errorf("Expected button %v, got %v", tt.button, ev.MouseButton)
			}
			if ev.MouseAction != tt.action {
				t.Errorf("Expected action %v, got %v", tt.action, ev.MouseAction)
			}
			if ev.Mouse != tt.pos {
				t.Errorf("Expected position %+v, got %+v", tt.pos, ev.Mouse)
			}
			if ev.Modifiers != tt.mod {
				t.Errorf("Expected modifiers %v, got %v", tt.mod, ev.Modifiers)
			}
		})
	}
}
