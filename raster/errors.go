// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

import "fmt"

// RasterError is the error type returned for programmer
// precondition violations caught at construction time: bad
// dimensions, mismatched framebuffer attachments, missing
// pipeline bindings, and the like. Unlike the per-draw-call
// asserts gated by debugChecks, these are always checked and
// always returned as ordinary Go errors, never panics.
type RasterError struct{ msg string }

func (e *RasterError) Error() string { return e.msg }

// newError returns a *RasterError wrapping msg, prefixed with
// "raster: ".
func newError(msg string) *RasterError { return &RasterError{msg: "raster: " + msg} }

// debugChecks gates per-draw-call precondition asserts: index
// count not a multiple of the topology's vertex count,
// out-of-range indices, and the like. These are programmer
// errors, not recoverable conditions, so they panic rather
// than return an error - but only when debugChecks is true;
// disabling it trades the check for undefined behavior on a
// malformed draw call. Tests run with it enabled.
var debugChecks = true

// assertf panics with a formatted message if cond is false
// and debugChecks is enabled.
func assertf(cond bool, format string, args ...any) {
	if debugChecks && !cond {
		panic(fmt.Sprintf("raster: "+format, args...))
	}
}
