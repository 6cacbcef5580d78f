// Package telemetry exports stats.Snapshot as JSON for out-of-process
// monitoring (a dashboard scrape, a log line shipped to a collector).
// This sits entirely outside the bus's hot path: nothing in package
// ring, admission, or subscribe imports it.
//
// Encoding goes through sugawarayuuta/sonnet, a drop-in replacement for
// encoding/json that avoids most of its reflection overhead.
package telemetry

import (
	"github.com/sugawarayuuta/sonnet"

	"mccc/stats"
)

// Report is the JSON-serializable shape of a statistics snapshot plus
// the derived backpressure level and the capacity it was computed
// against, so a consumer doesn't need a second round trip to interpret
// the counters.
type Report struct {
	Queue struct {
		Depth          uint32 `json:"depth"`
		Capacity       uint32 `json:"capacity"`
		UtilizationPct uint32 `json:"utilization_pct"`
		Backpressure   string `json:"backpressure"`
	} `json:"queue"`
	Counters stats.Snapshot `json:"counters"`
}

// BuildReport assembles a Report from a snapshot and the queue state
// it was taken alongside.
func BuildReport(snap stats.Snapshot, depth, capacity uint32) Report {
	var r Report
	r.Queue.Depth = depth
	r.Queue.Capacity = capacity
	if capacity > 0 {
		r.Queue.UtilizationPct = depth * 100 / capacity
	}
	r.Queue.Backpressure = stats.BackpressureLevel(depth, capacity).String()
	r.Counters = snap
	return r
}

// MarshalJSON encodes a Report using sonnet rather than encoding/json.
func MarshalJSON(r Report) ([]byte, error) {
	return sonnet.Marshal(r)
}
