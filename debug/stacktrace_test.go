package debug

import (
	"strings"
	"testing"
)

//go:noinline
func captureHere() StackTrace {
	return Capture(0)
}

func TestCapture(t *testing.T) {
	st := captureHere()
	if len(st) == 0 {
		t.Fatal("empty stack trace")
	}
	if !strings.Contains(st[0].Function, "captureHere") {
		t.Errorf("innermost frame = %q, want captureHere", st[0].Function)
	}
	if st[0].Line == 0 || st[0].File == "" {
		t.Errorf("frame not symbolized: %+v", st[0])
	}
}

func TestCapture_Skip(t *testing.T) {
	st := Capture(0)
	if len(st) == 0 {
		t.Fatal("empty stack trace")
	}
	if !strings.Contains(st[0].Function, "TestCapture_Skip") {
		t.Errorf("innermost frame = %q, want TestCapture_Skip", st[0].Function)
	}
}

func TestStackTrace_String(t *testing.T) {
	out := captureHere().String()
	if !strings.Contains(out, "0x") || !strings.Contains(out, "captureHere") {
		t.Errorf("unexpected rendering:\n%s", out)
	}
}

func TestTracer_Capture(t *testing.T) {
	frames := Tracer{}.Capture(0)
	if len(frames) == 0 {
		t.Fatal("empty stack trace")
	}
	if !strings.Contains(frames[0].Function, "TestTracer_Capture") {
		t.Errorf("innermost frame = %q, want TestTracer_Capture", frames[0].Function)
	}
}
