//go:build singlecore && i_know_single_core_is_unsafe

package fences

// SingleCore reports whether the unsafe single-core fence downgrade is
// active in this build.
const SingleCore = true

// Acquire and Release remain no-ops: Go's compiler does not expose a
// portable compiler-only signal fence. What actually changes under this
// build tag is in package ring, which drops sequence counters from atomic.Uint32
// to plain uint32 — safe only when producer and consumer are guaranteed
// to execute on the same physical core, never reordered relative to each
// other by a second core observing stale cache state. These functions stay
// as the named call sites so a reviewer grepping for "fences." finds every
// place the single-core assumption is load-bearing.
//
//go:inline
func Acquire() {}

//go:inline
func Release() {}
