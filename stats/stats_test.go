package stats

import "testing"

func TestSnapshotReflectsCounters(t *testing.T) {
	var c Counters
	c.Published.Add(5)
	c.Dropped.Add(2)
	c.HighPublished.Add(3)

	snap := c.Snapshot()
	if snap.Published != 5 || snap.Dropped != 2 || snap.HighPublished != 3 {
		t.Fatalf("snapshot mismatch: %+v", snap)
	}
}

func TestResetZeroesEveryField(t *testing.T) {
	var c Counters
	c.Published.Add(1)
	c.Dropped.Add(1)
	c.Processed.Add(1)
	c.Errors.Add(1)
	c.AdmissionRecheckCount.Add(1)
	c.StaleCacheDepthDelta.Add(1)

	c.Reset()
	snap := c.Snapshot()
	if snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot after Reset, got %+v", snap)
	}
}

func TestBackpressureLevelThresholds(t *testing.T) {
	cases := []struct {
		depth, cap uint32
		want       Level
	}{
		{0, 100, Normal},
		{74, 100, Normal},
		{75, 100, Warning},
		{89, 100, Warning},
		{90, 100, Critical},
		{99, 100, Critical},
		{100, 100, Full},
		{101, 100, Full},
	}
	for _, c := range cases {
		if got := BackpressureLevel(c.depth, c.cap); got != c.want {
			t.Errorf("BackpressureLevel(%d, %d) = %v, want %v", c.depth, c.cap, got, c.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if Normal.String() != "NORMAL" || Full.String() != "FULL" {
		t.Fatal("unexpected Level.String() output")
	}
}
