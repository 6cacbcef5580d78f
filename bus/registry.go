package bus

import (
	"reflect"
	"sync"

	"mccc/payload"
)

// registry backs Instance: one Bus[V] per concrete payload type V,
// created on first request and shared by every caller after that.
//
// Go has no per-type-instantiation static the way a generic function in
// other languages gets one, so this keys a shared map by V's reflect.Type and
// guards each entry's first construction with its own sync.Once.
var registry sync.Map // reflect.Type -> *registryEntry

type registryEntry struct {
	once sync.Once
	bus  any
}

// Instance returns the process-wide Bus[V], constructing it with the
// given capacity on the first call for that V. Later calls ignore
// capacity and return the already-constructed instance: first caller
// wins.
func Instance[V payload.Payload](capacity uint32) *Bus[V] {
	var zero V
	key := reflect.TypeOf(&zero).Elem()

	entryAny, _ := registry.LoadOrStore(key, &registryEntry{})
	entry := entryAny.(*registryEntry)
	entry.once.Do(func() {
		entry.bus = New[V](capacity)
	})
	return entry.bus.(*Bus[V])
}
