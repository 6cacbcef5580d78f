// Package ring implements the MPSC ring buffer transport: a fixed-capacity
// array of slots, each carrying a sequence counter and an envelope, with
// the Vyukov-style claim/publish/consume protocol described by the slot
// sequence state machine (empty-at-round-k / producer-claimed /
// ready / consumer-read / empty-at-round-(k+CAP)).
//
// Head, tail, and the advisory consumer cache live on cache-line-isolated
// fields; positions map to indices by power-of-two masking. Sequence and
// position counters are uint32 on purpose: capacity divides 2^32, so
// 32-bit wraparound is exact and depth arithmetic stays correct across
// every round.
package ring

import (
	"mccc/config"
	"mccc/envelope"
	"mccc/fences"
)

// pad is the inter-field spacing that keeps the consumer position, the
// producer position, and the advisory cache on their own cache lines.
// Each padded field is a 4-byte seqCounter, so pad+4 spans exactly one
// line of config.CachelineSize bytes.
const pad = config.CachelineSize - 4

// slot holds one ring position's sequence counter and envelope storage.
type slot struct {
	seq seqCounter
	env envelope.Envelope
}

// Ring is a fixed-capacity MPSC transport. Producer and consumer positions
// live on separate cache lines to avoid false sharing; Cap must be a
// power of two, checked once at New.
type Ring struct {
	_          [config.CachelineSize]byte
	cons       seqCounter // consumer read position — written only by the consumer
	_          [pad]byte
	prod       seqCounter // producer write position — written by producer(s)
	_          [pad]byte
	cachedCons seqCounter // advisory, producer-local hint (see package admission)

	mask uint32
	cap  uint32
	buf  []slot
}

// New allocates a ring with the given capacity, which must be a positive
// power of two. Go generics cannot parameterize an array's length by an
// arbitrary caller-supplied value, so the power-of-two invariant is
// enforced once, at construction, and panics otherwise.
func New(capacity uint32) *Ring {
	if capacity == 0 || capacity&(capacity-1) != 0 {
		panic("ring: capacity must be a positive power of two")
	}
	r := &Ring{
		mask: capacity - 1,
		cap:  capacity,
		buf:  make([]slot, capacity),
	}
	for i := range r.buf {
		r.buf[i].seq.Store(uint32(i))
	}
	return r
}

// Cap returns the ring's fixed capacity.
func (r *Ring) Cap() uint32 { return r.cap }

// ProducerPos returns the current producer position (relaxed read).
func (r *Ring) ProducerPos() uint32 { return r.prod.Load() }

// ConsumerPos returns the current consumer position (relaxed read).
func (r *Ring) ConsumerPos() uint32 { return r.cons.Load() }

// CachedConsumerPos returns the producer-local, advisory consumer position
// hint. It only moves at a refresh, so it never runs ahead of the real
// value and the depth estimated from it is at-or-above the real depth:
// admission may accept on it, but never refuses without a refresh.
func (r *Ring) CachedConsumerPos() uint32 { return r.cachedCons.Load() }

// RefreshCachedConsumerPos reloads the real consumer position with an
// acquire-ordered load and republishes it as the cached hint, returning
// the freshly observed real position.
func (r *Ring) RefreshCachedConsumerPos() uint32 {
	real := r.cons.Load()
	fences.Acquire()
	r.cachedCons.Store(real)
	return real
}

// Depth returns prod-cons using wraparound-correct unsigned subtraction.
func (r *Ring) Depth() uint32 { return r.prod.Load() - r.cons.Load() }

// TryPushWith claims the next producer slot, calls fill to write the
// envelope in place, and publishes the slot to the consumer. Returns
// false without calling fill if the ring is full at the claimed position.
//
// fill runs between the slot claim and the release store, which is the
// only window where the slot is exclusively this producer's — anything
// that must be assigned per accepted message (the message id) belongs
// inside fill, so a ring-full rejection never consumes it.
//
// Performance: one CAS (or one relaxed store under singleproducer), one
// release store, zero allocation, zero copies beyond what fill writes.
// Thread safety: safe for concurrent producers; the caller is
// responsible for statistics and error reporting on a false return.
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:inline
//go:registerparams
func (r *Ring) TryPushWith(fill func(*envelope.Envelope)) bool {
	pos, node, ok := r.claimProducerSlot()
	if !ok {
		return false
	}
	fill(&node.env)
	fences.Release()
	node.seq.Store(pos + 1)
	return true
}

// TryPush copies env into the next producer slot. Equivalent to
// TryPushWith with a plain copy; kept for callers that already hold a
// fully built envelope.
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:inline
//go:registerparams
func (r *Ring) TryPush(env *envelope.Envelope) bool {
	return r.TryPushWith(func(dst *envelope.Envelope) { *dst = *env })
}

// Drain calls fn for each ready envelope in FIFO order, stopping at the
// first empty slot or after max calls, whichever comes first. Returns the
// number of envelopes released.
//
// Performance: one acquire load and one release store per envelope, one
// consumer-position store per batch, zero allocation.
// Thread safety: single consumer only — concurrent Drain calls corrupt
// the consumer position.
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:registerparams
func (r *Ring) Drain(max uint32, fn func(*envelope.Envelope)) uint32 {
	consPos := r.cons.Load()
	var n uint32
	for ; n < max; n++ {
		node := &r.buf[consPos&r.mask]
		seq := node.seq.Load()
		fences.Acquire()
		if seq != consPos+1 {
			break
		}
		fn(&node.env)
		fences.Release()
		node.seq.Store(consPos + r.cap)
		consPos++
	}
	if n > 0 {
		r.cons.Store(consPos)
	}
	return n
}
