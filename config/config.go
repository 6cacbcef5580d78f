// Package config collects the compile-time tunables for the message bus.
//
// All knobs here are plain Go constants rather than a runtime config file:
// the bus is meant for real-time/embedded hosts where a value that changes
// shape of an array (queue depth, callback slots, payload size) must be
// fixed before the binary is built, not read from disk at startup.
// Each constant carries a comment justifying its default.
package config

// QueueDepth is the default ring capacity in slots, used by bus.New when
// the caller does not request a specific capacity. Must be a power of two;
// ring.New panics otherwise. 131072 slots at 104 bytes per slot (with the
// default 64-byte payload.MaxSize) is 13 MiB — generous for a single
// producer/consumer pair pushing sensor or control-plane traffic.
const QueueDepth = 131072

// CachelineSize is the assumed hardware cache-line size, used by the
// ring's padding fields to keep the producer position, consumer position,
// and advisory cache off each other's lines. 64 bytes covers the
// overwhelming majority of desktop, server, and application-class
// embedded cores (Cortex-A, x86-64). MCUs without a cache can lower this
// to 4 to reclaim the padding; behavior is unchanged either way. Must be
// at least 4.
const CachelineSize = 64

// NMax is the maximum number of distinct payload types a single bus may
// carry. Kept small and fixed so the subscription table is a flat array,
// never a map, on the dispatch hot path.
const NMax = 8

// CMax is the maximum number of simultaneously active subscriber callbacks
// per payload type.
const CMax = 16

// BatchMax bounds how many envelopes a single ProcessBatch/ProcessBatchWith
// call will drain before returning control to the caller, so one consumer
// call has bounded, predictable latency even under sustained overload.
const BatchMax = 1024

// WrapGuard is how far below the uint64 max a message id must stay. Once
// the next id would land within WrapGuard of wrapping, Publish refuses
// with OverflowDetected instead of risking id reuse.
const WrapGuard = 10000
