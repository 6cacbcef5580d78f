// Package stats implements the bus's monotonic counters and the
// backpressure-level classification derived from current queue depth.
// Counters are plain exported atomic fields rather than a mutex-guarded
// struct, so writers on the publish path pay one relaxed add and nothing
// else.
package stats

import "sync/atomic"

// Counters holds every monotonic counter the bus tracks. Every field is
// independently atomic; Reset zeros each one with no cross-field
// transactional guarantee.
type Counters struct {
	Published atomic.Uint64
	Dropped   atomic.Uint64
	Processed atomic.Uint64
	Errors    atomic.Uint64

	HighPublished   atomic.Uint64
	MediumPublished atomic.Uint64
	LowPublished    atomic.Uint64

	HighDropped   atomic.Uint64
	MediumDropped atomic.Uint64
	LowDropped    atomic.Uint64

	AdmissionRecheckCount atomic.Uint64
	StaleCacheDepthDelta  atomic.Uint64
}

// Snapshot is a point-in-time copy of Counters, safe to pass by value and
// to serialize (see package telemetry).
type Snapshot struct {
	Published uint64
	Dropped   uint64
	Processed uint64
	Errors    uint64

	HighPublished   uint64
	MediumPublished uint64
	LowPublished    uint64

	HighDropped   uint64
	MediumDropped uint64
	LowDropped    uint64

	AdmissionRecheckCount uint64
	StaleCacheDepthDelta  uint64
}

// Snapshot reads every counter with a relaxed load and returns a copy.
// Counters may lag concurrent writers by at most the number of in-flight
// operations.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Published:             c.Published.Load(),
		Dropped:               c.Dropped.Load(),
		Processed:             c.Processed.Load(),
		Errors:                c.Errors.Load(),
		HighPublished:         c.HighPublished.Load(),
		MediumPublished:       c.MediumPublished.Load(),
		LowPublished:          c.LowPublished.Load(),
		HighDropped:           c.HighDropped.Load(),
		MediumDropped:         c.MediumDropped.Load(),
		LowDropped:            c.LowDropped.Load(),
		AdmissionRecheckCount: c.AdmissionRecheckCount.Load(),
		StaleCacheDepthDelta:  c.StaleCacheDepthDelta.Load(),
	}
}

// Reset zeros every counter, field by field.
func (c *Counters) Reset() {
	c.Published.Store(0)
	c.Dropped.Store(0)
	c.Processed.Store(0)
	c.Errors.Store(0)
	c.HighPublished.Store(0)
	c.MediumPublished.Store(0)
	c.LowPublished.Store(0)
	c.HighDropped.Store(0)
	c.MediumDropped.Store(0)
	c.LowDropped.Store(0)
	c.AdmissionRecheckCount.Store(0)
	c.StaleCacheDepthDelta.Store(0)
}

// Level is a coarse queue-health indicator derived from occupancy.
type Level uint8

const (
	Normal Level = iota
	Warning
	Critical
	Full
)

func (l Level) String() string {
	switch l {
	case Normal:
		return "NORMAL"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	case Full:
		return "FULL"
	default:
		return "UNKNOWN"
	}
}

// BackpressureLevel classifies depth against capacity: NORMAL below 75%,
// WARNING from 75% to below 90%, CRITICAL from 90% to below 100%, FULL at
// capacity.
func BackpressureLevel(depth, capacity uint32) Level {
	if depth >= capacity {
		return Full
	}
	if depth >= capacity*90/100 {
		return Critical
	}
	if depth >= capacity*75/100 {
		return Warning
	}
	return Normal
}
