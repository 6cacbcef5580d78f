// Package bus implements the top-level message bus facade: the thing a
// host application constructs once and shares between producers and one
// consumer. It wires package ring (transport), admission (priority
// backpressure), subscribe (typed callback dispatch), stats (counters and
// backpressure classification), and perfmode (the runtime feature switch)
// into one object.
//
// Publish runs admission, then the slot claim, then the envelope write;
// ProcessBatch drains the ring and dispatches each envelope through the
// subscription table. Error reporting is best-effort and suppressed along
// with statistics under no-stats and bare-metal modes.
package bus

import (
	"sync/atomic"

	"mccc/admission"
	"mccc/config"
	"mccc/dispatch"
	"mccc/envelope"
	"mccc/payload"
	"mccc/perfmode"
	"mccc/ring"
	"mccc/stats"
	"mccc/subscribe"
)

// ErrorFunc is the host-supplied error callback. It is invoked from the
// producer goroutine whose Publish failed, synchronously, before that
// call returns failure to its own caller — it must not block.
// Reporting is best-effort: under no-stats and bare-metal modes the
// callback is suppressed along with the counters.
type ErrorFunc func(kind BusError, msgID uint64)

// Bus is one message bus instance for payload set V. V is typically a
// small closed interface implemented by every message type this bus
// instance carries; nothing prevents running several Bus[V] instances
// with different V side by side in the same process.
type Bus[V payload.Payload] struct {
	r          *ring.Ring
	thresholds admission.Thresholds
	table      *subscribe.Table
	counters   stats.Counters
	mode       perfmode.Switch

	nextMsgID atomic.Uint64
	errCB     atomic.Pointer[ErrorFunc]
}

// New constructs a bus with the given ring capacity, which must be a
// power of two (ring.New panics otherwise). Passing zero selects
// config.QueueDepth, the default of 131072 slots.
func New[V payload.Payload](capacity uint32) *Bus[V] {
	if capacity == 0 {
		capacity = config.QueueDepth
	}
	return &Bus[V]{
		r:          ring.New(capacity),
		thresholds: admission.ThresholdsFor(capacity),
		table:      subscribe.NewTable(),
	}
}

// Publish enqueues p at envelope.Medium priority, tagging it with the
// current timestamp. Returns false if admission control or the ring
// itself rejected the message.
//
// Publish is a package-level generic function, not a method on Bus[V],
// because Go methods cannot carry their own type parameters: V alone
// cannot recover the concrete payload type's size when V is the shared
// marker interface a bus is instantiated with (the common case), so T
// is inferred separately from p at each call site and used directly for
// payload.Encode — encoding the interface value V would copy its two-word
// interface header instead of the concrete struct's bytes.
func Publish[V payload.Payload, T payload.Payload](b *Bus[V], p T, senderID uint32) bool {
	return publish(b, p, senderID, envelope.Medium, nowMicros())
}

// PublishWithPriority enqueues p at the given priority.
func PublishWithPriority[V payload.Payload, T payload.Payload](b *Bus[V], p T, senderID uint32, pr envelope.Priority) bool {
	return publish(b, p, senderID, pr, nowMicros())
}

// PublishFast enqueues p at envelope.Medium priority using a
// caller-supplied timestamp, skipping this bus's own clock read — for
// producers that already have a timestamp in hand (e.g. a hardware
// capture time) and want to avoid the extra call.
func PublishFast[V payload.Payload, T payload.Payload](b *Bus[V], p T, senderID uint32, timestampUS uint64) bool {
	return publish(b, p, senderID, envelope.Medium, timestampUS)
}

func publish[V payload.Payload, T payload.Payload](b *Bus[V], p T, senderID uint32, pr envelope.Priority, timestampUS uint64) bool {
	candidate := b.nextMsgID.Load()
	if candidate >= ^uint64(0)-config.WrapGuard {
		b.reportError(OverflowDetected, candidate)
		return false
	}

	if b.mode.Admission() {
		if !admission.Check(b.r, b.countersOrNil(), b.thresholds, pr) {
			b.onDrop(pr)
			b.reportError(QueueFull, candidate)
			return false
		}
	}

	// The id is allocated inside the fill callback, after the slot claim
	// has already won, so no refused publish — admission or ring-full —
	// ever consumes an id. The WrapGuard margin absorbs the producers
	// that raced past the overflow check above before performing their
	// increment.
	ok := b.r.TryPushWith(func(env *envelope.Envelope) {
		env.Header = envelope.Header{
			MsgID:       b.nextMsgID.Add(1) - 1,
			TimestampUS: timestampUS,
			SenderID:    senderID,
			Priority:    pr,
		}
		env.Discriminant = p.Discriminant()
		payload.Encode(&env.Raw, p)
	})
	if !ok {
		b.onDrop(pr)
		b.reportError(QueueFull, candidate)
		return false
	}

	b.onPublish(pr)
	return true
}

func (b *Bus[V]) onPublish(pr envelope.Priority) {
	if !b.mode.Stats() {
		return
	}
	b.counters.Published.Add(1)
	switch pr {
	case envelope.High:
		b.counters.HighPublished.Add(1)
	case envelope.Medium:
		b.counters.MediumPublished.Add(1)
	default:
		b.counters.LowPublished.Add(1)
	}
}

func (b *Bus[V]) onDrop(pr envelope.Priority) {
	if !b.mode.Stats() {
		return
	}
	b.counters.Dropped.Add(1)
	switch pr {
	case envelope.High:
		b.counters.HighDropped.Add(1)
	case envelope.Medium:
		b.counters.MediumDropped.Add(1)
	default:
		b.counters.LowDropped.Add(1)
	}
}

func (b *Bus[V]) countersOrNil() *stats.Counters {
	if !b.mode.Stats() {
		return nil
	}
	return &b.counters
}

// reportError counts and reports a failure through the host callback.
// Error reporting is part of the observability machinery: under no-stats
// and bare-metal modes the callback is never invoked, same as the
// counters.
func (b *Bus[V]) reportError(kind BusError, msgID uint64) {
	if !b.mode.Stats() {
		return
	}
	b.counters.Errors.Add(1)
	cb := b.errCB.Load()
	if cb == nil || *cb == nil {
		return
	}
	(*cb)(kind, msgID)
}

// Subscribe registers a typed callback for payload type T on bus b. T
// must implement V's constraint (payload.Payload); the discriminant used
// to route dispatch comes from T, not from V.
func Subscribe[V payload.Payload, T payload.Payload](b *Bus[V], cb func(envelope.Header, T)) subscribe.Handle {
	return subscribe.Subscribe[T](b.table, cb)
}

// Unsubscribe removes a previously registered callback.
func (b *Bus[V]) Unsubscribe(h subscribe.Handle) bool {
	return b.table.Unsubscribe(h)
}

// ProcessBatch drains up to config.BatchMax envelopes from the ring and
// dispatches each through the subscription table. Returns the number of
// envelopes processed. Intended to be called from the bus's single
// consumer goroutine only.
func (b *Bus[V]) ProcessBatch() uint32 {
	locked := b.mode.DispatchLock()
	statsOn := b.mode.Stats()
	return b.r.Drain(config.BatchMax, func(env *envelope.Envelope) {
		b.table.Dispatch(locked, env)
		if statsOn {
			b.counters.Processed.Add(1)
		}
	})
}

// ProcessBatchWith drains up to config.BatchMax envelopes and hands each
// directly to v, bypassing the subscription table entirely — no lock, no
// table lookup, regardless of performance mode.
func (b *Bus[V]) ProcessBatchWith(v dispatch.Visitor) uint32 {
	statsOn := b.mode.Stats()
	return b.r.Drain(config.BatchMax, func(env *envelope.Envelope) {
		v.Visit(env.Header, env.Discriminant, &env.Raw)
		if statsOn {
			b.counters.Processed.Add(1)
		}
	})
}

// QueueDepth returns the current number of enqueued-but-undrained
// envelopes.
func (b *Bus[V]) QueueDepth() uint32 { return b.r.Depth() }

// QueueUtilizationPercent returns QueueDepth as a percentage of capacity.
func (b *Bus[V]) QueueUtilizationPercent() uint32 {
	return b.r.Depth() * 100 / b.r.Cap()
}

// GetBackpressureLevel classifies the current queue depth.
func (b *Bus[V]) GetBackpressureLevel() stats.Level {
	return stats.BackpressureLevel(b.r.Depth(), b.r.Cap())
}

// GetStatistics returns a point-in-time snapshot of every counter.
func (b *Bus[V]) GetStatistics() stats.Snapshot { return b.counters.Snapshot() }

// ResetStatistics zeros every counter, field by field, with no
// cross-field transactional guarantee.
func (b *Bus[V]) ResetStatistics() { b.counters.Reset() }

// SetPerformanceMode switches the bus's runtime feature level. Safe to
// call concurrently with Publish/ProcessBatch; readers observe either the
// old or new mode, never a torn value. Switching into or out of
// BareMetal while Subscribe/Unsubscribe may run concurrently on another
// goroutine is the caller's responsibility to avoid, per package
// subscribe's documented bare-metal contract.
func (b *Bus[V]) SetPerformanceMode(m perfmode.Mode) { b.mode.Set(m) }

// SetErrorCallback installs fn as the bus's error reporter, replacing any
// previous one. A producer racing this call observes either the old or
// the new callback for that one report — never a mix of the two, and
// never a panic from a nil callback — but there is no guarantee about
// which callback a given in-flight Publish reports through.
func (b *Bus[V]) SetErrorCallback(fn ErrorFunc) {
	if fn == nil {
		b.errCB.Store(nil)
		return
	}
	b.errCB.Store(&fn)
}
