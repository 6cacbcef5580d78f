// Package debuglog provides allocation-light diagnostic logging for the
// bus's cold error paths: admission table exhaustion, drop callbacks,
// decode mismatches. It is never called from Publish or Drain's hot
// loop.
//
// Messages are built by plain string concatenation and written straight
// to file descriptor 2 with syscall.Write, sidestepping fmt's
// reflection and buffering; building each message still allocates.
package debuglog

import "syscall"

// DropError writes "prefix: err\n" to stderr, or just "prefix\n" when
// err is nil. Intended for cold-path error reporting only.
//
//go:nosplit
//go:inline
func DropError(prefix string, err error) {
	var msg string
	if err != nil {
		msg = prefix + ": " + err.Error() + "\n"
	} else {
		msg = prefix + "\n"
	}
	writeStderr(msg)
}

// DropMessage writes "prefix: message\n" to stderr.
//
//go:nosplit
//go:inline
func DropMessage(prefix, message string) {
	writeStderr(prefix + ": " + message + "\n")
}

//go:nosplit
//go:inline
func writeStderr(msg string) {
	syscall.Write(2, []byte(msg))
}
