// Package affinity pins the calling OS thread to a single logical CPU.
// It is host-owned: the bus core never calls it, and nothing under
// package bus imports it. A host process that dedicates one core to its
// consumer goroutine calls Pin from that goroutine after
// runtime.LockOSThread.
//
// Linux gets a real sched_setaffinity binding via golang.org/x/sys/unix;
// every other platform gets a no-op fallback.
package affinity

// Pin attempts to pin the calling OS thread to cpu (0-based). The
// caller is responsible for calling runtime.LockOSThread first —
// without it, the Go scheduler is free to move the goroutine to a
// different thread afterward, silently undoing the pin. Failures are
// reported, never panicked: affinity is an optimization, not a
// correctness requirement.
func Pin(cpu int) error {
	return pin(cpu)
}
