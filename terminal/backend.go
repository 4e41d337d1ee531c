package terminal

import "github.com/museun/mars/geom"

// backend abstracts the platform tty operations the session needs: raw
// mode, size queries, raw I/O, and resize notification.
type backend interface {
	init() error
	fini()

	size() geom.Size

	write(p []byte) (int, error)

	// read blocks until input arrives, the stop channel closes, or an
	// error occurs. A nil slice with nil error is a poll timeout.
	read(stop <-chan struct{}) ([]byte, error)

	onResize(handler func(geom.Size))
}
