// Package terminal owns the tty session: raw mode, the alternate screen,
// input decoding, and resize notification. It turns the byte stream from
// stdin into Events and hands the compositor a writer to flush frames
// through.
//
// The package is Unix-only; it drives the terminal with ioctls and SIGWINCH.
package terminal
