// Package api
// Author: momentics
//
// Diagnostics boundary: stack capture contract. The core primitives never
// depend on it; it exists so higher-level code can swap symbolization
// strategies.

package api

// Frame is one resolved call-stack frame.
type Frame struct {
	PC       uintptr
	Function string
	File     string
	Line     int
}

// StackTracer captures the calling goroutine's stack.
type StackTracer interface {
	// Capture returns resolved frames, skipping skip frames above the
	// Capture call itself.
	Capture(skip int) []Frame
}
