package perfmode

import "testing"

func TestModePredicates(t *testing.T) {
	cases := []struct {
		mode                          Mode
		admission, stats, dispatchLck bool
	}{
		{FullFeatured, true, true, true},
		{NoStats, true, false, true},
		{BareMetal, false, false, false},
	}
	var s Switch
	for _, c := range cases {
		s.Set(c.mode)
		if s.Get() != c.mode {
			t.Fatalf("Get = %v after Set(%v)", s.Get(), c.mode)
		}
		if s.Admission() != c.admission || s.Stats() != c.stats || s.DispatchLock() != c.dispatchLck {
			t.Fatalf("%v: predicates = %v/%v/%v, want %v/%v/%v", c.mode,
				s.Admission(), s.Stats(), s.DispatchLock(),
				c.admission, c.stats, c.dispatchLck)
		}
	}
}

func TestModeStrings(t *testing.T) {
	if FullFeatured.String() != "full-featured" || BareMetal.String() != "bare-metal" {
		t.Fatal("unexpected Mode.String() output")
	}
}
