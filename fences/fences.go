// Package fences is the single choke point the ring transport threads
// every slot-sequence load/store through. In the default build it is two
// empty, always-inlined functions — the real ordering guarantee comes
// from the atomic loads/stores in package ring.
//
// Building with -tags singlecore switches package ring to a second
// implementation that drops the atomics entirely and touches the
// sequence counters with plain loads/stores — valid only when the
// producer and consumer genuinely cannot run on different cores. That
// variant is gated by a second, separate build tag
// (i_know_single_core_is_unsafe) so that -tags singlecore alone leaves
// this package with neither file compiled in and the build fails with
// "undefined: fences.Acquire" rather than silently producing an unsafe
// binary.
package fences
