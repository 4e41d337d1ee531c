// Package geom provides the 2D cell-coordinate primitives used by the
// rendering core: positions, sizes, deltas, axes, margins, and the
// nine-point anchor grid used for alignment.
//
// Coordinates are plain ints. The origin is the top-left cell; x grows to
// the right and y grows downward, matching terminal addressing.
package geom
