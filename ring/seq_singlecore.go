//go:build singlecore && i_know_single_core_is_unsafe

package ring

// seqCounter on this build is a plain uint32: no hardware fence, no atomic
// CAS. Safe only when the producer(s) and the consumer never run
// concurrently on different physical cores — see package fences for the
// build-tag interlock that gates this file.
type seqCounter struct {
	v uint32
}

func (c *seqCounter) Load() uint32     { return c.v }
func (c *seqCounter) Store(val uint32) { c.v = val }

// CompareAndSwap is a plain compare-then-set, not an atomic primitive.
// Under genuine single-core, single-hardware-thread execution this is
// sufficient; across goroutines scheduled onto more than one core it is a
// data race. That tradeoff is the entire point of the singlecore tag.
func (c *seqCounter) CompareAndSwap(old, new uint32) bool {
	if c.v != old {
		return false
	}
	c.v = new
	return true
}
