package telemetry

import (
	"strings"
	"testing"

	"mccc/stats"
)

func TestBuildReportDerivesQueueFields(t *testing.T) {
	snap := stats.Snapshot{Published: 10, Processed: 7}
	r := BuildReport(snap, 96, 128)

	if r.Queue.Depth != 96 || r.Queue.Capacity != 128 {
		t.Fatalf("queue fields = %d/%d, want 96/128", r.Queue.Depth, r.Queue.Capacity)
	}
	if r.Queue.UtilizationPct != 75 {
		t.Fatalf("utilization = %d, want 75", r.Queue.UtilizationPct)
	}
	if r.Queue.Backpressure != "WARNING" {
		t.Fatalf("backpressure = %q, want WARNING", r.Queue.Backpressure)
	}
	if r.Counters.Published != 10 {
		t.Fatalf("counters not carried through: %+v", r.Counters)
	}
}

func TestMarshalJSONEmitsQueueAndCounters(t *testing.T) {
	r := BuildReport(stats.Snapshot{Published: 3}, 0, 128)
	out, err := MarshalJSON(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(out)
	for _, want := range []string{`"depth":0`, `"capacity":128`, `"backpressure":"NORMAL"`, `"Published":3`} {
		if !strings.Contains(s, want) {
			t.Fatalf("output %s missing %s", s, want)
		}
	}
}
