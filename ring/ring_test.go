package ring

import (
	"sync"
	"sync/atomic"
	"testing"

	"mccc/envelope"
)

func mkEnv(id uint64) envelope.Envelope {
	var e envelope.Envelope
	e.Header.MsgID = id
	e.Raw[0] = byte(id)
	return e
}

func TestNewPanicsOnNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non power-of-two capacity")
		}
	}()
	New(100)
}

func TestPushPopFIFO(t *testing.T) {
	r := New(8)
	for i := uint64(0); i < 5; i++ {
		e := mkEnv(i)
		if !r.TryPush(&e) {
			t.Fatalf("push %d failed unexpectedly", i)
		}
	}

	var got []uint64
	n := r.Drain(10, func(e *envelope.Envelope) {
		got = append(got, e.Header.MsgID)
	})
	if n != 5 {
		t.Fatalf("drained %d, want 5", n)
	}
	for i, id := range got {
		if id != uint64(i) {
			t.Fatalf("FIFO violated: got[%d]=%d, want %d", i, id, i)
		}
	}
}

func TestTryPushWithFillRunsOnlyOnAcceptedSlots(t *testing.T) {
	r := New(2)
	fills := 0
	fill := func(e *envelope.Envelope) {
		e.Header.MsgID = uint64(fills)
		fills++
	}
	if !r.TryPushWith(fill) || !r.TryPushWith(fill) {
		t.Fatal("pushes into an empty ring failed")
	}
	if r.TryPushWith(fill) {
		t.Fatal("push into a full ring should fail")
	}
	if fills != 2 {
		t.Fatalf("fill ran %d times, want 2 — a rejected push must not invoke it", fills)
	}

	var got []uint64
	r.Drain(2, func(e *envelope.Envelope) { got = append(got, e.Header.MsgID) })
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("drained ids %v, want [0 1]", got)
	}
}

func TestFullRingRejectsPush(t *testing.T) {
	r := New(4)
	for i := uint64(0); i < 4; i++ {
		e := mkEnv(i)
		if !r.TryPush(&e) {
			t.Fatalf("push %d should have succeeded", i)
		}
	}
	e := mkEnv(99)
	if r.TryPush(&e) {
		t.Fatal("push into full ring should fail")
	}
	if d := r.Depth(); d != 4 {
		t.Fatalf("depth = %d, want 4", d)
	}
}

func TestDrainThenReuseSlot(t *testing.T) {
	r := New(2)
	for i := uint64(0); i < 2; i++ {
		e := mkEnv(i)
		if !r.TryPush(&e) {
			t.Fatalf("push %d failed", i)
		}
	}
	n := r.Drain(1, func(*envelope.Envelope) {})
	if n != 1 {
		t.Fatalf("drained %d, want 1", n)
	}

	e := mkEnv(42)
	if !r.TryPush(&e) {
		t.Fatal("expected push to succeed after freeing one slot")
	}
}

func TestDepthBoundAcrossManyRounds(t *testing.T) {
	r := New(16)
	for round := 0; round < 1000; round++ {
		for i := 0; i < 16; i++ {
			e := mkEnv(uint64(round*16 + i))
			if !r.TryPush(&e) {
				t.Fatalf("round %d: push %d failed", round, i)
			}
		}
		if d := r.Depth(); d != 16 {
			t.Fatalf("round %d: depth = %d, want 16", round, d)
		}
		n := r.Drain(16, func(*envelope.Envelope) {})
		if n != 16 {
			t.Fatalf("round %d: drained %d, want 16", round, n)
		}
		if d := r.Depth(); d != 0 {
			t.Fatalf("round %d: depth after drain = %d, want 0", round, d)
		}
	}
}

func TestEnvelopeRoundTripByteForByte(t *testing.T) {
	r := New(4)
	want := mkEnv(7)
	want.Header.SenderID = 123
	want.Header.Priority = envelope.High
	want.Discriminant = 3
	for i := range want.Raw {
		want.Raw[i] = byte(i)
	}

	if !r.TryPush(&want) {
		t.Fatal("push failed")
	}

	var got envelope.Envelope
	r.Drain(1, func(e *envelope.Envelope) { got = *e })

	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
	if envelope.Checksum(&got) != envelope.Checksum(&want) {
		t.Fatal("checksum mismatch after round trip")
	}
}

func TestConcurrentPushDrainKeepsDepthBounded(t *testing.T) {
	if testing.Short() {
		t.Skip("multithreaded stress test")
	}

	const producers = 4
	const perProducer = 50000
	r := New(1024)

	var pushed atomic.Uint64
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(sender uint32) {
			defer wg.Done()
			for i := uint64(0); i < perProducer; i++ {
				var e envelope.Envelope
				e.Header.SenderID = sender
				e.Header.MsgID = i
				if r.TryPush(&e) {
					pushed.Add(1)
				}
			}
		}(uint32(p))
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	var drained uint64
	count := func(*envelope.Envelope) { drained++ }
	running := true
	for running {
		select {
		case <-done:
			running = false
		default:
		}
		if d := r.Depth(); d > r.Cap() {
			t.Fatalf("depth %d exceeds capacity %d", d, r.Cap())
		}
		r.Drain(256, count)
	}
	for r.Drain(256, count) > 0 {
	}

	if drained != pushed.Load() {
		t.Fatalf("drained %d, want every one of the %d pushed", drained, pushed.Load())
	}
}
