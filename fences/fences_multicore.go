//go:build !singlecore

package fences

// SingleCore reports whether the unsafe single-core fence downgrade is
// active in this build.
const SingleCore = false

// Acquire is a no-op: ordering comes from the acquire loads in package
// ring's atomic sequence counters.
//
//go:inline
func Acquire() {}

// Release is a no-op: ordering comes from the release stores in package
// ring's atomic sequence counters.
//
//go:inline
func Release() {}
