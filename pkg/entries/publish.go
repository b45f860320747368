package entries

import (
	"sync"
	"sync/atomic"
)

var (
	publishOnce sync.Once
	published   atomic.Pointer[Entries]
)

// Publish stores e as the process-wide entry namespace. Only the first
// call has an effect; it reports whether this call published.
// Readers that start after Publish returns observe the complete map.
func Publish(e Entries) bool {
	done := false
	publishOnce.Do(func() {
		if e == nil {
			e = Entries{}
		}
		published.Store(&e)
		done = true
	})
	return done
}

// Published returns the process-wide entry namespace, if published
func Published() (Entries, bool) {
	p := published.Load()
	if p == nil {
		return nil, false
	}
	return *p, true
}
