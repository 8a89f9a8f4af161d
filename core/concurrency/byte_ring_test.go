package concurrency

import (
	"bytes"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/momentics/hioload-sync/api"
)

func TestByteRing_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int64{0, -8, 3, 48, 1000} {
		if _, err := NewByteRing(capacity); !errors.Is(err, api.ErrInvalidCapacity) {
			t.Errorf("capacity %d: expected ErrInvalidCapacity, got %v", capacity, err)
		}
	}
	if _, err := NewByteRing(64); err != nil {
		t.Fatalf("capacity 64: unexpected error %v", err)
	}
}

func TestByteRing_EmptyDequeue(t *testing.T) {
	r := MustByteRing(32)
	if n, err := r.Dequeue(make([]byte, 16)); !errors.Is(err, api.ErrRingEmpty) {
		t.Errorf("expected ErrRingEmpty, got n=%d err=%v", n, err)
	}
}

func TestByteRing_RecordScenario(t *testing.T) {
	r := MustByteRing(64)
	chunks := [][]byte{
		{1, 2, 3, 4},
		{10, 11, 12, 13, 14, 15, 16, 17},
		{20, 21},
	}
	for i, c := range chunks {
		if !r.Enqueue(c) {
			t.Fatalf("enqueue %d failed", i)
		}
	}
	// 3 records, each len(chunk)+8 bytes of header.
	if want := 4 + 8 + 2 + 3*recordHeader; r.Len() != want {
		t.Errorf("Len = %d, want %d", r.Len(), want)
	}
	dst := make([]byte, 16)
	for i, c := range chunks {
		n, err := r.Dequeue(dst)
		if err != nil {
			t.Fatalf("dequeue %d: %v", i, err)
		}
		if !bytes.Equal(dst[:n], c) {
			t.Errorf("dequeue %d: got %v, want %v", i, dst[:n], c)
		}
	}
	if r.Len() != 0 {
		t.Errorf("drained ring Len = %d, want 0", r.Len())
	}
}

func TestByteRing_FreeSpaceBound(t *testing.T) {
	r := MustByteRing(32)
	// 30-byte record needs 38 bytes with its header, more than capacity.
	if r.Enqueue(make([]byte, 30)) {
		t.Fatal("enqueue of 30 bytes into empty 32-byte ring should fail")
	}
	if r.Len() != 0 {
		t.Errorf("failed enqueue modified state: Len = %d", r.Len())
	}
	// 24+8 fills the ring exactly.
	if !r.Enqueue(make([]byte, 24)) {
		t.Fatal("enqueue of 24 bytes into empty 32-byte ring should succeed")
	}
	if r.Len() != 32 {
		t.Errorf("Len = %d, want 32", r.Len())
	}
	if r.Enqueue([]byte{}) {
		t.Error("enqueue into full ring should fail even for empty chunk")
	}
}

func TestByteRing_BufferTooSmall(t *testing.T) {
	r := MustByteRing(64)
	payload := []byte("sixteen byte rec")
	if !r.Enqueue(payload) {
		t.Fatal("enqueue failed")
	}
	n, err := r.Dequeue(make([]byte, 4))
	if !errors.Is(err, api.ErrBufferTooSmall) {
		t.Fatalf("expected ErrBufferTooSmall, got %v", err)
	}
	if n != len(payload) {
		t.Errorf("required size = %d, want %d", n, len(payload))
	}
	// Record must stay dequeueable after the failed attempt.
	dst := make([]byte, 32)
	n, err = r.Dequeue(dst)
	if err != nil {
		t.Fatalf("retry dequeue: %v", err)
	}
	if !bytes.Equal(dst[:n], payload) {
		t.Errorf("retry dequeue got %q, want %q", dst[:n], payload)
	}
}

func TestByteRing_WrapAround(t *testing.T) {
	r := MustByteRing(32)
	dst := make([]byte, 16)
	// Repeated enqueue/dequeue pushes the cursors far past the capacity,
	// forcing two-segment copies at every buffer-end crossing.
	for i := 0; i < 1000; i++ {
		chunk := []byte{byte(i), byte(i >> 8), byte(i + 1)}
		if !r.Enqueue(chunk) {
			t.Fatalf("iteration %d: enqueue failed", i)
		}
		n, err := r.Dequeue(dst)
		if err != nil {
			t.Fatalf("iteration %d: dequeue: %v", i, err)
		}
		if !bytes.Equal(dst[:n], chunk) {
			t.Fatalf("iteration %d: got %v, want %v", i, dst[:n], chunk)
		}
	}
}

func TestByteRing_SPSC_RoundTrip(t *testing.T) {
	r := MustByteRing(256)
	const records = 50000

	chunkFor := func(i int) []byte {
		c := make([]byte, 1+i%29)
		for j := range c {
			c[j] = byte(i + j)
		}
		return c
	}

	done := make(chan error, 1)
	go func() {
		dst := make([]byte, 64)
		for i := 0; i < records; i++ {
			var n int
			var err error
			for {
				n, err = r.Dequeue(dst)
				if err == nil {
					break
				}
				runtime.Gosched()
			}
			if want := chunkFor(i); !bytes.Equal(dst[:n], want) {
				done <- errors.New("record content mismatch")
				return
			}
			if r.Len() > r.Cap() {
				done <- errors.New("Len exceeds Cap")
				return
			}
		}
		done <- nil
	}()

	for i := 0; i < records; i++ {
		for !r.Enqueue(chunkFor(i)) {
			runtime.Gosched()
		}
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timeout waiting for consumer")
	}
}
