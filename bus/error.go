package bus

// BusError classifies a reported failure from the bus back to the host
// application. None of these propagate as a Go error return from
// Publish* — they reach the host only through the error callback.
type BusError uint8

const (
	// QueueFull means admission control or the ring's slot-claim step
	// rejected a Publish because the queue was at or above the
	// priority-appropriate threshold.
	QueueFull BusError = iota
	// OverflowDetected means the message id counter came within
	// config.WrapGuard of wrapping and Publish refused rather than risk
	// id reuse.
	OverflowDetected
	// InvalidMessage means a payload failed validation before it ever
	// reached the ring (reserved for future payload-level checks; the
	// core itself never rejects on this path today).
	InvalidMessage
	// ProcessingError means a subscriber callback reported failure
	// through means other than a panic (reserved; ProcessBatch itself
	// never wraps a callback panic).
	ProcessingError
)

func (e BusError) String() string {
	switch e {
	case QueueFull:
		return "QUEUE_FULL"
	case OverflowDetected:
		return "OVERFLOW_DETECTED"
	case InvalidMessage:
		return "INVALID_MESSAGE"
	case ProcessingError:
		return "PROCESSING_ERROR"
	default:
		return "UNKNOWN"
	}
}
