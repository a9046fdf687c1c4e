// Package poly implements a planar polygon sweep-line engine.
//
// # Overview
//
// The engine takes a set of possibly self-intersecting, possibly overlapping
// polygons on an integer grid and produces an intersection-free planar
// subdivision whose per-region inside/outside status is determined by a
// pluggable winding rule (even/odd, non-zero, set-union, set-intersection,
// set-difference). It is the hard core of a larger graphics pipeline: curve
// flattening, affine transforms, rendering, and file I/O all live outside
// this package and are expected to hand the engine already-flattened integer
// polygons.
//
// # Error Handling
//
// Process and the polygon constructors return an error as their last value
// for caller mistakes (non-monotone strokes, degenerate grid size, too many
// input polygons for the winding bitmap). Internal invariant violations
// surface as a *FatalError, which carries the path of a PostScript dump
// written for post-mortem before the error is returned; the engine never
// calls os.Exit itself.
//
// # Coordinate System
//
// All coordinates are 32-bit signed integers on an abstract grid; a single
// floating-point GridSize value is carried through unchanged from input to
// output and is otherwise ignored by the engine.
package poly
