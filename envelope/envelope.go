// Package envelope defines the message header and the value-type envelope
// stored by value inside a ring slot: header plus the raw encoded payload
// bytes. No envelope field is ever a pointer to externally owned data.
package envelope

import "mccc/payload"

// Priority controls admission-control aggressiveness: the higher the
// priority, the deeper the queue may get before a Publish at that
// priority is refused.
type Priority uint8

const (
	Low Priority = iota
	Medium
	High
)

func (p Priority) String() string {
	switch p {
	case Low:
		return "LOW"
	case Medium:
		return "MEDIUM"
	case High:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// Header carries per-message metadata: identity, timing, origin, priority.
type Header struct {
	MsgID       uint64
	TimestampUS uint64
	SenderID    uint32
	Priority    Priority
}

// Envelope is the value stored in a ring slot: header plus the raw bytes
// of whichever payload.Payload type was published, identified by
// Discriminant. Copying an Envelope copies every byte — there is nothing
// behind a pointer to share or race on.
type Envelope struct {
	Header       Header
	Discriminant uint8
	Raw          [payload.MaxSize]byte
}
