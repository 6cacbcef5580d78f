package bus

import "time"

// nowMicros reads the wall clock once per Publish/PublishWithPriority
// call. There is no ecosystem alternative to time.Now in this pack for a
// microsecond timestamp source, so this one call site stays on the
// standard library.
func nowMicros() uint64 {
	return uint64(time.Now().UnixMicro())
}
