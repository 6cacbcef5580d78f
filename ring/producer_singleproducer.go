//go:build singleproducer

package ring

import "mccc/fences"

// claimProducerSlot is the wait-free single-producer fast path: no other
// producer exists, so the position advance is a plain relaxed store
// instead of a CAS. The slot-empty check still guards against overtaking
// the consumer — it is the only backpressure this path has once admission
// control is bypassed.
//
// Performance: wait-free, no CAS, zero allocation.
// Thread safety: single producer only — concurrent callers corrupt the
// producer position.
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:inline
//go:registerparams
func (r *Ring) claimProducerSlot() (pos uint32, node *slot, ok bool) {
	prodPos := r.prod.Load()
	n := &r.buf[prodPos&r.mask]

	seq := n.seq.Load()
	fences.Acquire()
	if seq != prodPos {
		return 0, nil, false
	}

	r.prod.Store(prodPos + 1)
	return prodPos, n, true
}
