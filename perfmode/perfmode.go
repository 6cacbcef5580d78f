// Package perfmode implements the bus's single runtime-switchable
// performance mode: full-featured, no-stats, or bare-metal. Read once per
// Publish and once per batch, stored in one atomic field.
//
// The switch is built for tight polling loops: a relaxed atomic load per
// read, no lock, no allocation, readers observing either the old or the
// new mode but never a torn value.
package perfmode

import "sync/atomic"

// Mode selects how much of the bus's safety/observability machinery runs.
type Mode uint32

const (
	// FullFeatured runs admission control, statistics, and a shared lock
	// around dispatch.
	FullFeatured Mode = iota
	// NoStats runs admission control and dispatch locking but skips
	// statistics updates.
	NoStats
	// BareMetal skips admission control, statistics, and dispatch
	// locking entirely; only the ring's own slot-empty check remains as
	// backpressure. Switching into or out of BareMetal while another
	// goroutine is concurrently calling Subscribe/Unsubscribe is the
	// caller's responsibility to avoid — see package subscribe.
	BareMetal
)

func (m Mode) String() string {
	switch m {
	case FullFeatured:
		return "full-featured"
	case NoStats:
		return "no-stats"
	case BareMetal:
		return "bare-metal"
	default:
		return "unknown"
	}
}

// Switch is a lock-free, atomically-readable performance mode selector.
type Switch struct {
	v atomic.Uint32
}

// Get returns the current mode with a relaxed load.
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:inline
//go:registerparams
func (s *Switch) Get() Mode { return Mode(s.v.Load()) }

// Set installs a new mode. Readers racing a Set observe either the old or
// the new mode, never a torn value — the same "eventually visible" contract
// the bus documents for SetErrorCallback.
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:inline
//go:registerparams
func (s *Switch) Set(m Mode) { s.v.Store(uint32(m)) }

// Admission reports whether admission control should run under the
// current mode.
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:inline
//go:registerparams
func (s *Switch) Admission() bool { return s.Get() != BareMetal }

// Stats reports whether statistics updates and error reporting should
// run under the current mode.
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:inline
//go:registerparams
func (s *Switch) Stats() bool { return s.Get() == FullFeatured }

// DispatchLock reports whether dispatch should take the subscription
// table's shared lock under the current mode.
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:inline
//go:registerparams
func (s *Switch) DispatchLock() bool { return s.Get() != BareMetal }
