// Package dispatch defines the visitor-dispatch path used by
// ProcessBatchWith: a caller-supplied visitor that matches on the
// envelope's discriminant without taking any lock or touching the
// subscription table at all.
//
// Go generics cannot enumerate a closed variant's member types, so the
// static match is a plain discriminant switch inside the caller's Visit
// method, decoding with payload.Decode[T] per case. The properties that
// matter operationally — no lock, no table lookup — hold regardless.
package dispatch

import (
	"mccc/envelope"
	"mccc/payload"
)

// Visitor receives each drained envelope directly from the ring, bypassing
// the subscription table. Implementations type-switch on discriminant and
// call payload.Decode[T] for the arm they care about.
type Visitor interface {
	Visit(h envelope.Header, discriminant uint8, raw *[payload.MaxSize]byte)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(h envelope.Header, discriminant uint8, raw *[payload.MaxSize]byte)

// Visit calls f.
func (f VisitorFunc) Visit(h envelope.Header, discriminant uint8, raw *[payload.MaxSize]byte) {
	f(h, discriminant, raw)
}
