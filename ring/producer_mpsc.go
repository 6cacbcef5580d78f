//go:build !singleproducer

package ring

import "mccc/fences"

// claimProducerSlot implements the default multi-producer claim: read the
// producer position, check the target slot is actually empty at that
// position, then race every other producer for it with a CAS loop. Each
// retry observes strict progress in r.prod, so this cannot livelock.
//
// Performance: bounded spin, one CAS per winning claim, zero allocation.
// Thread safety: safe for concurrent producers by construction.
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:inline
//go:registerparams
func (r *Ring) claimProducerSlot() (pos uint32, node *slot, ok bool) {
	for {
		prodPos := r.prod.Load()
		n := &r.buf[prodPos&r.mask]

		seq := n.seq.Load()
		fences.Acquire()
		if seq != prodPos {
			return 0, nil, false
		}

		if r.prod.CompareAndSwap(prodPos, prodPos+1) {
			return prodPos, n, true
		}
	}
}
