package terminal

import (
	"sync"
	"time"
	"unicode/utf8"
)

// reader pulls raw bytes off the backend and decodes them into events.
// Partial escape sequences and split UTF-8 runes are carried across reads in
// a persistent buffer.
type reader struct {
	backend backend
	events  chan Event
	stop    chan struct{}
	done    chan struct{}

	mu      sync.Mutex
	running bool

	buf []byte
}

func newReader(b backend) *reader {
	return &reader{
		backend: b,
		events:  make(chan Event, 256),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		buf:     make([]byte, 0, 256),
	}
}

func (r *reader) start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	go r.loop()
}

func (r *reader) halt() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stop)
	select {
	case <-r.done:
	case <-time.After(100 * time.Millisecond):
		// reader stuck on a blocking read, proceed anyway
	}
}

func (r *reader) loop() {
	defer close(r.done)

	for {
		data, err := r.backend.read(r.stop)
		if err != nil {
			r.send(Event{Type: EventError, Err: err})
			return
		}

		if len(data) == 0 {
			// poll timeout: a lone buffered ESC is a real Escape press,
			// not the start of a sequence
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.send(Event{Type: EventKey, Key: KeyEscape})
				r.buf = r.buf[:0]
			}
			select {
			case <-r.stop:
				r.send(Event{Type: EventClosed})
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)
		consumed := decode(r.buf, r.send)
		if consumed >= len(r.buf) {
			r.buf = r.buf[:0]
		} else if consumed > 0 {
			copy(r.buf, r.buf[consumed:])
			r.buf = r.buf[:len(r.buf)-consumed]
		}
	}
}

func (r *reader) send(ev Event) {
	select {
	case r.events <- ev:
	default:
		// channel full, drop
	}
}

// decode parses as many complete events out of data as possible, reporting
// how many bytes were consumed. An incomplete trailing sequence is left
// unconsumed for the next read.
func decode(data []byte, emit func(Event)) int {
	i, n := 0, len(data)

	for i < n {
		b := data[i]

		// printable ASCII fast path
		if b >= 0x20 && b < 0x7f {
			emit(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		if b == 0x1b {
			if i+1 >= n {
				return i // wait for more data
			}
			consumed, ev, ok := decodeEscape(data[i:])
			if consumed == 0 {
				return i
			}
			if ok {
				emit(ev)
			}
			i += consumed
			continue
		}

		if b < 0x20 {
			emit(decodeControl(b))
			i++
			continue
		}

		if b == 0x7f {
			emit(Event{Type: EventKey, Key: KeyBackspace})
			i++
			continue
		}

		// UTF-8 multibyte; an invalid encoding decodes as a width-1
		// replacement rune, so only a genuinely split rune waits
		if !utf8.FullRune(data[i:]) {
			return i
		}
		ch, size := utf8.DecodeRune(data[i:])
		emit(Event{Type: EventKey, Key: KeyRune, Rune: ch})
		i += size
	}
	return i
}

// decodeEscape handles everything after a leading ESC. A zero consumed count
// means the sequence is incomplete; ok=false means the bytes were consumed
// but decoded to nothing worth emitting.
func decodeEscape(data []byte) (int, Event, bool) {
	if len(data) < 2 {
		return 0, Event{}, false
	}

	switch {
	case data[1] == 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}, true
	case data[1] == '[':
		return decodeCSI(data)
	case data[1] == 'O':
		return decodeSS3(data)
	case data[1] < 0x20:
		ev := decodeControl(data[1])
		ev.Modifiers |= ModAlt
		return 2, ev, true
	case data[1] < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}, true
	}
	return 2, Event{}, false
}

func decodeCSI(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}

	if data[2] == '<' {
		return decodeSGRMouse(data)
	}

	end := 2
	maxScan := min(len(data), 16)
	terminated := false
	for end < maxScan {
		b := data[end]
		if b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b == '~' {
			end++
			terminated = true
			break
		}
		if b < 0x20 || b > 0x7e {
			// malformed, drop the introducer and resync
			return 2, Event{}, false
		}
		end++
	}
	if !terminated {
		return 0, Event{}, false
	}

	if key, mod, ok := lookupCSI(data[2:end]); ok {
		return end, Event{Type: EventKey, Key: key, Modifiers: mod}, true
	}
	// valid but unknown sequence, swallow it
	return end, Event{}, false
}

func decodeSS3(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Type: EventKey, Key: key, Modifiers: mod}, true
	}
	return 3, Event{}, false
}

// decodeControl maps C0 control bytes. Ctrl+letter arrives as the letter
// with ModCtrl; the few controls that double as their own keys keep their
// identity.
func decodeControl(b byte) Event {
	switch b {
	case 0x00:
		return Event{Type: EventKey, Key: KeyRune, Rune: ' ', Modifiers: ModCtrl}
	case 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	case 0x1c:
		return Event{Type: EventKey, Key: KeyRune, Rune: '\\', Modifiers: ModCtrl}
	case 0x1d:
		return Event{Type: EventKey, Key: KeyRune, Rune: ']', Modifiers: ModCtrl}
	case 0x1e:
		return Event{Type: EventKey, Key: KeyRune, Rune: '^', Modifiers: ModCtrl}
	case 0x1f:
		return Event{Type: EventKey, Key: KeyRune, Rune: '_', Modifiers: ModCtrl}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Type: EventKey, Key: KeyRune, Rune: rune('a' + b - 1), Modifiers: ModCtrl}
	}
	return Event{Type: EventKey, Key: KeyNone}
}

// decodeSGRMouse parses ESC [ < btn ; x ; y M/m.
func decodeSGRMouse(data []byte) (int, Event, bool) {
	end := 3
	for end < len(data) && end < 32 {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) || (data[end] != 'M' && data[end] != 'm') {
		if end >= 32 {
			return 3, Event{}, false // runaway, resync
		}
		return 0, Event{}, false
	}

	btn, x, y, ok := sgrParams(data[3:end])
	if !ok {
		return end + 1, Event{}, false
	}

	ev := Event{Type: EventMouse}
	ev.Mouse.X, ev.Mouse.Y = x-1, y-1 // wire format is one-based

	buttonID := btn & 0x03
	isMotion := btn&32 != 0
	isScroll := btn&64 != 0

	switch {
	case isScroll:
		ev.MouseButton = MouseWheelUp
		if buttonID == 1 {
			ev.MouseButton = MouseWheelDown
		}
		ev.MouseAction = MouseActionPress
	default:
		switch buttonID {
		case 0:
			ev.MouseButton = MouseLeft
		case 1:
			ev.MouseButton = MouseMiddle
		case 2:
			ev.MouseButton = MouseRight
		case 3:
			ev.MouseButton = MouseNone
		}

		switch {
		case data[end] == 'm':
			ev.MouseAction = MouseActionRelease
		case isMotion && ev.MouseButton != MouseNone:
			ev.MouseAction = MouseActionDrag
		case isMotion:
			ev.MouseAction = MouseActionMove
		default:
			ev.MouseAction = MouseActionPress
		}
	}

	if btn&4 != 0 {
		ev.Modifiers |= ModShift
	}
	if btn&8 != 0 {
		ev.Modifiers |= ModAlt
	}
	if btn&16 != 0 {
		ev.Modifiers |= ModCtrl
	}
	return end + 1, ev, true
}

func sgrParams(data []byte) (btn, x, y int, ok bool) {
	field, val := 0, 0
	for _, b := range data {
		switch {
		case b == ';':
			switch field {
			case 0:
				btn = val
			case 1:
				x = val
			default:
				return 0, 0, 0, false
			}
			field++
			val = 0
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			if val > 9999 {
				return 0, 0, 0, false
			}
		default:
			return 0, 0, 0, false
		}
	}
	if field != 2 {
		return 0, 0, 0, false
	}
	return btn, x, val, true
}
