// Package admission implements the pre-enqueue priority threshold check:
// compare an estimated queue depth against a priority-derived threshold,
// using a cached consumer position to avoid touching the consumer's
// contended cache line on the common path, and only reloading it
// authoritatively when the estimate looks dangerous.
//
// The cached consumer position is a value that is cheap to read locally
// and only occasionally reconciled against ground truth; because it can
// only overestimate depth, it can wave a Publish through but never turn
// one away.
package admission

import (
	"mccc/envelope"
	"mccc/ring"
	"mccc/stats"
)

// Thresholds holds the depth at or above which a Publish at each priority
// is refused, derived once from a ring's capacity.
type Thresholds struct {
	Low, Medium, High uint32
}

// ThresholdsFor computes the 60%/80%/99% admission table for a ring of
// the given capacity.
func ThresholdsFor(capacity uint32) Thresholds {
	return Thresholds{
		Low:    capacity * 60 / 100,
		Medium: capacity * 80 / 100,
		High:   capacity * 99 / 100,
	}
}

func (t Thresholds) forPriority(p envelope.Priority) uint32 {
	switch p {
	case envelope.High:
		return t.High
	case envelope.Medium:
		return t.Medium
	default:
		return t.Low
	}
}

// Check runs the two-phase admission decision: estimate depth from the
// cached consumer position; if the estimate is below threshold, accept
// without touching r.ConsumerPos. Otherwise reload the real consumer
// position, update the cache, and decide for real. Returns true if the
// Publish may proceed to the slot-claim phase.
//
// The cached depth is always at-or-above the real depth, so the cheap
// path can accept but never refuse; refusal always rests on the
// authoritative reload.
//
// Performance: two relaxed loads on the common path, one extra acquire
// load and one store on the recheck path, zero allocation.
// Thread safety: safe for concurrent producers; counters may be nil.
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:registerparams
func Check(r *ring.Ring, counters *stats.Counters, thresholds Thresholds, priority envelope.Priority) bool {
	threshold := thresholds.forPriority(priority)

	prod := r.ProducerPos()
	cachedCons := r.CachedConsumerPos()
	estimated := prod - cachedCons
	if estimated < threshold {
		return true
	}

	realCons := r.RefreshCachedConsumerPos()
	realDepth := prod - realCons

	if counters != nil {
		counters.AdmissionRecheckCount.Add(1)
		if estimated > realDepth {
			counters.StaleCacheDepthDelta.Add(uint64(estimated - realDepth))
		}
	}

	return realDepth < threshold
}
