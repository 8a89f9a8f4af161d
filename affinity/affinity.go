// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are
// located in separate files (affinity_linux.go, affinity_windows.go, etc.)
// guarded by build tags.
//
// Pinning producer and consumer goroutines to distinct cores keeps the ring
// and queue cursors on stable cache lines, which is what the padding in the
// core primitives is sized for.

package affinity

import "runtime"

// SetAffinity pins the current OS thread to a given logical CPU on supported
// platforms. The caller must already hold runtime.LockOSThread, otherwise the
// goroutine may migrate to an unpinned thread. On unsupported platforms
// returns an error.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}

// Pin locks the calling goroutine to its OS thread and pins that thread to
// cpuID. The returned undo unlocks the goroutine from the thread.
func Pin(cpuID int) (undo func(), err error) {
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	return runtime.UnlockOSThread, nil
}
