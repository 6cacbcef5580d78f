package bus

import (
	"mccc/config"
	"mccc/fixedc"
	"mccc/payload"
	"mccc/subscribe"
)

// Component is an optional base for subscriber objects that want their
// registrations cleaned up together. Embed it, Track every Handle
// returned by Subscribe, and call Close when the component is torn down.
//
// Component only aggregates the handles a concrete subscriber collects
// itself. Handle storage is a fixed vector sized for every callback slot
// the bus could hand out, so tracking never allocates after
// construction.
type Component[V payload.Payload] struct {
	name    fixedc.String64
	handles *fixedc.Vector[subscribe.Handle]
	bus     *Bus[V]
}

// NewComponent returns a Component bound to bus b. The name is a
// diagnostic label only; it is silently truncated to 64 bytes.
func NewComponent[V payload.Payload](b *Bus[V], name string) *Component[V] {
	return &Component[V]{
		name:    fixedc.NewString64Truncate(name),
		handles: fixedc.NewVector[subscribe.Handle](config.NMax * config.CMax),
		bus:     b,
	}
}

// Name returns the component's diagnostic label.
func (c *Component[V]) Name() string { return c.name.String() }

// Track records h so Close will unsubscribe it later. Invalid handles
// (failed registrations) are not tracked. Returns false when nothing was
// recorded — h was invalid, or the tracking vector is full and the
// handle stays the caller's to release.
func (c *Component[V]) Track(h subscribe.Handle) bool {
	if !h.Valid() {
		return false
	}
	return c.handles.Push(h)
}

// Close unsubscribes every tracked handle and clears the list.
func (c *Component[V]) Close() {
	for {
		h, ok := c.handles.Pop()
		if !ok {
			break
		}
		c.bus.Unsubscribe(h)
	}
}
