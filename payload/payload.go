// Package payload defines the closed, compile-time-fixed set of message
// types a bus instance carries, and the raw fixed-size encoding used to
// store any one of them inside a ring slot without a heap allocation.
//
// Go has no closed sum type. This package's approximation: every payload
// type implements Payload by returning a small constant discriminant, and
// is copied into a fixed [MaxSize]byte array by raw memory copy. That
// constrains payload types to plain, pointer-free data — no slices, maps,
// strings, or interfaces anywhere inside a payload struct.
package payload

import "unsafe"

// MaxSize is the largest encoded payload size this bus can carry. Raise it
// if a message type needs more room; every envelope pays for MaxSize bytes
// regardless of which type it actually holds, so keep it tight.
const MaxSize = 64

// NMax is the maximum number of distinct payload types. It holds the same
// value as config.NMax.
const NMax = 8

// Payload is implemented by every message type a bus can carry. Discriminant
// must return the same small integer, in [0, NMax), for every value of a
// given concrete type — it is a type tag, not a per-value field.
type Payload interface {
	Discriminant() uint8
}

// MustFit panics if T's encoded size cannot fit in MaxSize bytes, or if T's
// discriminant is out of range. Call it from a package-level
//
//	var _ = payload.MustFit[SensorData]()
//
// next to each payload type's definition: it runs at program init, before
// main, which is as close to a build-time rejection of an oversized or
// misindexed message type as Go allows without code generation.
func MustFit[T Payload]() struct{} {
	var zero T
	if int(unsafe.Sizeof(zero)) > MaxSize {
		panic("payload: type exceeds MaxSize")
	}
	if uint32(zero.Discriminant()) >= NMax {
		panic("payload: discriminant out of range")
	}
	return struct{}{}
}

// Encode raw-copies v's bytes into dst. T must be a plain, pointer-free
// struct — this is a bitwise copy, not a deep copy.
func Encode[T Payload](dst *[MaxSize]byte, v T) {
	*(*T)(unsafe.Pointer(&dst[0])) = v
}

// Decode reconstructs a T from raw bytes previously written by Encode.
func Decode[T Payload](src *[MaxSize]byte) T {
	return *(*T)(unsafe.Pointer(&src[0]))
}

// DiscriminantOf returns the discriminant for payload type T without
// requiring a live value, using T's zero value — valid because
// Discriminant is a type tag, constant across all values of T.
func DiscriminantOf[T Payload]() uint8 {
	var zero T
	return zero.Discriminant()
}
