//go:build !singlecore

package ring

import "sync/atomic"

// seqCounter is a slot sequence number or a producer/consumer position.
// This build uses a real atomic.Uint32, giving the acquire/release and
// compare-and-swap semantics the MPSC protocol in ring.go depends on.
type seqCounter struct {
	v atomic.Uint32
}

func (c *seqCounter) Load() uint32     { return c.v.Load() }
func (c *seqCounter) Store(val uint32) { c.v.Store(val) }
func (c *seqCounter) CompareAndSwap(old, new uint32) bool {
	return c.v.CompareAndSwap(old, new)
}
