// Package subscribe implements the fixed-size subscription table: one
// slot per payload discriminant, each holding up to CMax callback
// entries, guarded by a reader-writer lock for registration and free of
// locking during dispatch when the bus is in bare-metal mode.
//
// The table is a flat, pre-sized array rather than a map: dispatch runs
// per-message, and a fixed array keeps that path free of hashing,
// allocation, and pointer chasing.
package subscribe

import (
	"sync"
	"sync/atomic"

	"mccc/config"
	"mccc/envelope"
	"mccc/payload"
)

// InvalidID is the sentinel callback id returned by Subscribe when the
// table for a discriminant is full. Registration failure is a reported
// condition, not an error — callers check Handle.Valid().
const InvalidID = ^uint64(0)

// Handle identifies one registered callback so it can later be removed.
type Handle struct {
	Discriminant uint8
	ID           uint64
}

// Valid reports whether the handle refers to a real registration.
func (h Handle) Valid() bool { return h.ID != InvalidID }

type entry struct {
	id       uint64
	active   bool
	callback func(envelope.Header, *[payload.MaxSize]byte)
}

type typeSlot struct {
	entries [config.CMax]entry
	count   uint32
}

// Table is the fixed-size, per-discriminant callback registry.
type Table struct {
	mu     sync.RWMutex
	slots  [config.NMax]typeSlot
	nextID atomic.Uint64
}

// NewTable returns an empty subscription table.
func NewTable() *Table {
	t := &Table{}
	t.nextID.Store(1)
	return t
}

// Subscribe registers a type-erased callback for T's discriminant. The
// erasure to func(Header, *[MaxSize]byte) happens here, once, at
// registration — Dispatch never needs to know concrete types.
func Subscribe[T payload.Payload](t *Table, cb func(envelope.Header, T)) Handle {
	discriminant := payload.DiscriminantOf[T]()
	wrapped := func(h envelope.Header, raw *[payload.MaxSize]byte) {
		cb(h, payload.Decode[T](raw))
	}
	return t.subscribeRaw(discriminant, wrapped)
}

func (t *Table) subscribeRaw(discriminant uint8, cb func(envelope.Header, *[payload.MaxSize]byte)) Handle {
	if discriminant >= config.NMax {
		return Handle{Discriminant: discriminant, ID: InvalidID}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	slot := &t.slots[discriminant]
	id := t.nextID.Add(1) - 1

	for i := range slot.entries {
		if !slot.entries[i].active {
			slot.entries[i] = entry{id: id, active: true, callback: cb}
			slot.count++
			return Handle{Discriminant: discriminant, ID: id}
		}
	}
	return Handle{Discriminant: discriminant, ID: InvalidID}
}

// Unsubscribe removes the registration identified by h, returning whether
// a matching, active entry was found. Unsubscribing a handle that was
// never active (or already removed) returns false and has no other
// effect.
func (t *Table) Unsubscribe(h Handle) bool {
	if !h.Valid() || int(h.Discriminant) >= len(t.slots) {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	slot := &t.slots[h.Discriminant]
	for i := range slot.entries {
		if slot.entries[i].active && slot.entries[i].id == h.ID {
			slot.entries[i].active = false
			slot.entries[i].callback = nil
			slot.count--
			return true
		}
	}
	return false
}

// Dispatch invokes every active callback registered for env's
// discriminant, in slot order. When locked is false (bare-metal mode) no
// lock is taken at all — the caller guarantees no concurrent
// Subscribe/Unsubscribe, per the bus's performance-mode contract.
func (t *Table) Dispatch(locked bool, env *envelope.Envelope) {
	if int(env.Discriminant) >= len(t.slots) {
		return
	}

	if locked {
		t.mu.RLock()
		defer t.mu.RUnlock()
	}

	slot := &t.slots[env.Discriminant]
	if slot.count == 0 {
		return
	}
	for i := range slot.entries {
		if slot.entries[i].active {
			slot.entries[i].callback(env.Header, &env.Raw)
		}
	}
}
