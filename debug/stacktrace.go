// File: debug/stacktrace.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stack capture and symbolization helpers. Diagnostics only: the core
// primitives never call into this package.

package debug

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/momentics/hioload-sync/api"
)

// Ensure compile-time interface compliance.
var _ api.StackTracer = (*Tracer)(nil)

// maxDepth bounds a single capture.
const maxDepth = 64

// StackTrace is a resolved call stack, innermost frame first.
type StackTrace []api.Frame

// Tracer captures goroutine stacks via the runtime symbolizer.
type Tracer struct{}

// Capture returns the calling goroutine's stack, skipping skip frames above
// the Capture call itself.
func (Tracer) Capture(skip int) []api.Frame {
	return Capture(skip + 1)
}

// Capture returns the calling goroutine's resolved stack. skip counts frames
// above the caller to omit; 0 starts at the caller of Capture.
func Capture(skip int) StackTrace {
	pcs := make([]uintptr, maxDepth)
	// +2 skips runtime.Callers and Capture itself.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	st := make(StackTrace, 0, n)
	for {
		fr, more := frames.Next()
		st = append(st, api.Frame{
			PC:       fr.PC,
			Function: fr.Function,
			File:     fr.File,
			Line:     fr.Line,
		})
		if !more {
			break
		}
	}
	return st
}

// String renders one "0xADDR: function file:line" per frame.
func (st StackTrace) String() string {
	var b strings.Builder
	for _, f := range st {
		fn := f.Function
		if fn == "" {
			fn = "??"
		}
		fmt.Fprintf(&b, "0x%016x: %s %s:%d\n", uint64(f.PC), fn, f.File, f.Line)
	}
	return b.String()
}
