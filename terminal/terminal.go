package terminal

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/museun/mars/geom"
)

// Session control sequences. The per-cell escapes live with the rasterizer;
// these only bracket the session itself.
var (
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiCursorHide     = []byte("\x1b[?25l")
	csiCursorShow     = []byte("\x1b[?25h")
	csiAutoWrapOff    = []byte("\x1b[?7l")
	csiAutoWrapOn     = []byte("\x1b[?7h")
	csiSGRReset       = []byte("\x1b[0m")
	csiRIS            = []byte("\x1bc")

	csiMouseClickOn   = []byte("\x1b[?1000h")
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseDragOn    = []byte("\x1b[?1002h")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseMotionOn  = []byte("\x1b[?1003h")
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseSGROn     = []byte("\x1b[?1006h")
	csiMouseSGROff    = []byte("\x1b[?1006l")
)

// Terminal is one tty session: raw mode, the alternate screen, a hidden
// cursor, and decoded input. Create with New, bring up with Init, and
// always Fini before exit; Fini is safe to call more than once.
type Terminal struct {
	backend backend
	writer  *bufio.Writer
	input   *reader

	resizeCh  chan geom.Size
	colorMode ColorMode

	mu          sync.Mutex
	mouseMode   MouseMode
	initialized bool
	finalized   bool
}

// New builds a session. The color mode is detected from the environment
// unless explicitly given.
func New(colorMode ...ColorMode) *Terminal {
	mode := DetectColorMode()
	if len(colorMode) > 0 {
		mode = colorMode[0]
	}

	b := newBackend()
	return &Terminal{
		backend:   b,
		writer:    bufio.NewWriterSize(backendWriter{b}, 32*1024),
		resizeCh:  make(chan geom.Size, 1),
		colorMode: mode,
	}
}

// Init enters raw mode and the alternate screen, hides the cursor, and
// disables autowrap so the bottom-right cell is writable without scrolling.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	t.backend.onResize(func(size geom.Size) {
		// keep only the latest pending size
		select {
		case t.resizeCh <- size:
		default:
			select {
			case <-t.resizeCh:
			default:
			}
			select {
			case t.resizeCh <- size:
			default:
			}
		}
	})

	t.writer.Write(csiAltScreenEnter)
	t.writer.Write(csiCursorHide)
	t.writer.Write(csiAutoWrapOff)
	if err := t.writer.Flush(); err != nil {
		t.backend.fini()
		return fmt.Errorf("terminal init: %w", err)
	}

	t.input = newReader(t.backend)
	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores the terminal. Mouse reporting is torn down first so the
// shell never sees tracking sequences.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if t.mouseMode != MouseOff {
		t.writer.Write(csiMouseMotionOff)
		t.writer.Write(csiMouseDragOff)
		t.writer.Write(csiMouseClickOff)
		t.writer.Write(csiMouseSGROff)
	}

	if t.input != nil {
		t.input.halt()
	}

	t.writer.Write(csiCursorShow)
	t.writer.Write(csiAltScreenExit)
	t.writer.Write(csiAutoWrapOn)
	t.writer.Write(csiSGRReset)
	t.writer.Flush()

	t.backend.fini()
	t.finalized = true
}

// Size reports the current terminal dimensions.
func (t *Terminal) Size() geom.Size {
	return t.backend.size()
}

// ColorMode reports the session's color capability.
func (t *Terminal) ColorMode() ColorMode {
	return t.colorMode
}

// Write appends raw bytes to the buffered output stream. The stream is not
// sent until Flush.
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.writer.Write(p)
}

// Flush drains src (anything exposing a buffered frame, like the ANSI
// rasterizer) into the tty in one write burst.
func (t *Terminal) Flush(src io.WriterTo) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	if _, err := src.WriteTo(t.writer); err != nil {
		return err
	}
	return t.writer.Flush()
}

// PollEvent blocks for the next event, folding resizes into the stream.
func (t *Terminal) PollEvent() Event {
	select {
	case size := <-t.resizeCh:
		return Event{Type: EventResize, Size: size}
	case ev := <-t.input.events:
		return ev
	}
}

// TryPollEvent returns the next pending event without blocking.
func (t *Terminal) TryPollEvent() (Event, bool) {
	select {
	case size := <-t.resizeCh:
		return Event{Type: EventResize, Size: size}, true
	case ev := <-t.input.events:
		return ev, true
	default:
		return Event{}, false
	}
}

// SetTitle sets the terminal window title.
func (t *Terminal) SetTitle(title string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	fmt.Fprintf(t.writer, "\x1b]2;%s\x07", title)
	return t.writer.Flush()
}

// SetCursorVisible shows or hides the hardware cursor.
func (t *Terminal) SetCursorVisible(visible bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	if visible {
		t.writer.Write(csiCursorShow)
	} else {
		t.writer.Write(csiCursorHide)
	}
	return t.writer.Flush()
}

// SetMouseMode reconfigures pointer reporting. Modes combine; MouseOff
// disables everything.
func (t *Terminal) SetMouseMode(mode MouseMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	old := t.mouseMode
	t.mouseMode = mode

	if old&MouseMotion != 0 && mode&MouseMotion == 0 {
		t.writer.Write(csiMouseMotionOff)
	}
	if old&MouseDrag != 0 && mode&MouseDrag == 0 {
		t.writer.Write(csiMouseDragOff)
	}
	if old&MouseClick != 0 && mode&MouseClick == 0 {
		t.writer.Write(csiMouseClickOff)
	}
	if mode == MouseOff && old != MouseOff {
		t.writer.Write(csiMouseSGROff)
	}

	if mode != MouseOff && old == MouseOff {
		t.writer.Write(csiMouseSGROn)
	}
	if mode&MouseClick != 0 && old&MouseClick == 0 {
		t.writer.Write(csiMouseClickOn)
	}
	if mode&MouseDrag != 0 && old&MouseDrag == 0 {
		t.writer.Write(csiMouseDragOn)
	}
	if mode&MouseMotion != 0 && old&MouseMotion == 0 {
		t.writer.Write(csiMouseMotionOn)
	}

	return t.writer.Flush()
}

// backendWriter adapts the backend to io.Writer for bufio.
type backendWriter struct {
	b backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	return w.b.write(p)
}

// EmergencyReset writes the restore sequences directly, for panic recovery
// paths where Fini cannot run. Raw mode is undone best-effort via /dev/tty.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGRReset)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	resetTermios()
}
