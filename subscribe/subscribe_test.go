package subscribe

import (
	"testing"

	"mccc/config"
	"mccc/envelope"
)

type pingPayload struct{ N int32 }

func (pingPayload) Discriminant() uint8 { return 0 }

type pongPayload struct{ N int32 }

func (pongPayload) Discriminant() uint8 { return 1 }

func mkEnvFor(discriminant uint8, n int32) envelope.Envelope {
	var e envelope.Envelope
	e.Discriminant = discriminant
	e.Raw[0] = byte(n)
	return e
}

func TestSubscribeDispatchInvokesCallback(t *testing.T) {
	tbl := NewTable()
	var got pingPayload
	calls := 0
	Subscribe[pingPayload](tbl, func(h envelope.Header, p pingPayload) {
		calls++
		got = p
	})

	e := mkEnvFor(0, 7)
	tbl.Dispatch(true, &e)

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if got.N != 7 {
		t.Fatalf("decoded N = %d, want 7", got.N)
	}
}

func TestDispatchToWrongDiscriminantDoesNotInvoke(t *testing.T) {
	tbl := NewTable()
	calls := 0
	Subscribe[pingPayload](tbl, func(envelope.Header, pingPayload) { calls++ })

	e := mkEnvFor(1, 0) // pong discriminant, no pong subscriber
	tbl.Dispatch(true, &e)

	if calls != 0 {
		t.Fatalf("calls = %d, want 0", calls)
	}
}

func TestUnsubscribeStopsFutureDispatch(t *testing.T) {
	tbl := NewTable()
	calls := 0
	h := Subscribe[pingPayload](tbl, func(envelope.Header, pingPayload) { calls++ })

	if !tbl.Unsubscribe(h) {
		t.Fatal("expected Unsubscribe to find the active handle")
	}
	if tbl.Unsubscribe(h) {
		t.Fatal("expected second Unsubscribe of the same handle to fail")
	}

	e := mkEnvFor(0, 0)
	tbl.Dispatch(true, &e)
	if calls != 0 {
		t.Fatalf("calls = %d after unsubscribe, want 0", calls)
	}
}

func TestSubscribeTableFullReturnsInvalidHandle(t *testing.T) {
	tbl := NewTable()
	var last Handle
	for i := 0; i <= config.CMax; i++ {
		last = Subscribe[pingPayload](tbl, func(envelope.Header, pingPayload) {})
	}
	if last.Valid() {
		t.Fatal("expected table exhaustion to return an invalid handle")
	}
}

func TestDispatchUnlockedModeStillInvokes(t *testing.T) {
	tbl := NewTable()
	calls := 0
	Subscribe[pingPayload](tbl, func(envelope.Header, pingPayload) { calls++ })

	e := mkEnvFor(0, 0)
	tbl.Dispatch(false, &e)

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
