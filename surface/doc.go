// Package surface implements the frame-diffing rendering core: styled cells
// (pixels), a generic double-buffered grid, a compositor that diffs two
// frames and emits a minimal command stream, and a composable drawable layer
// for positioning and styling content.
//
// The compositor never talks to a terminal directly. It emits against the
// Rasterizer interface; AnsiRasterizer serializes to xterm escape sequences,
// TraceRasterizer to a readable per-command trace, and TcellRasterizer onto
// a tcell.Screen.
//
// The core is single-threaded: all grid mutation and diffing happens
// synchronously inside one Render call.
package surface
