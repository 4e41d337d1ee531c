//go:build unix

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/museun/mars/geom"
)

type unixBackend struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	saved *term.State

	resizeStop chan struct{}
	resizeDone chan struct{}
}

func newBackend() backend {
	return &unixBackend{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (b *unixBackend) init() error {
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	saved, err := term.MakeRaw(b.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	b.saved = saved
	return nil
}

func (b *unixBackend) fini() {
	if b.resizeStop != nil {
		close(b.resizeStop)
		<-b.resizeDone
		b.resizeStop = nil
	}
	if b.saved != nil {
		term.Restore(b.inFd, b.saved)
		b.saved = nil
	}
}

func (b *unixBackend) size() geom.Size {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return geom.Sz(80, 24)
	}
	return geom.Sz(int(ws.Col), int(ws.Row))
}

func (b *unixBackend) write(p []byte) (int, error) {
	return b.out.Write(p)
}

// read polls with a 100ms timeout so the stop channel stays responsive.
func (b *unixBackend) read(stop <-chan struct{}) ([]byte, error) {
	buf := make([]byte, 256)

	for {
		select {
		case <-stop:
			return nil, nil
		default:
		}

		fds := []unix.PollFd{{Fd: int32(b.inFd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, err
		}
		if n == 0 {
			return nil, nil // timeout
		}

		rn, err := unix.Read(b.inFd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil, err
		}
		if rn == 0 {
			return nil, nil // EOF
		}

		out := make([]byte, rn)
		copy(out, buf[:rn])
		return out, nil
	}
}

func (b *unixBackend) onResize(handler func(geom.Size)) {
	b.resizeStop = make(chan struct{})
	b.resizeDone = make(chan struct{})

	go func() {
		defer close(b.resizeDone)
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGWINCH)
		defer signal.Stop(sigs)

		for {
			select {
			case <-b.resizeStop:
				return
			case <-sigs:
				handler(b.size())
			}
		}
	}()
}

// resetTermios restores cooked mode best-effort through /dev/tty; used by
// crash recovery where the saved state is unreachable.
func resetTermios() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, unix.TCSETS, termios)
}
