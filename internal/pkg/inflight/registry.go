// Package inflight provides a per-key mutual exclusion latch used to keep at most
// one mutating request in flight per order. It is the service-side equivalent of the
// loading flag a detail screen uses to disable its buttons while a request runs.
package inflight

import (
	"errors"
	"sync"
)

// ErrBusy is returned by Acquire when another operation for the same key is
// still in flight.
var ErrBusy = errors.New("another operation for this order is still in progress")

// Registry tracks which keys currently have an operation in flight.
// The zero value is not usable; create instances with NewRegistry.
type Registry struct {
	mu   sync.Mutex
	busy map[int64]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{busy: make(map[int64]struct{})}
}

// Acquire claims the latch for key. On success it returns a release function that
// must be called exactly once when the operation finishes. If the key is already
// claimed it returns ErrBusy without blocking; the caller is expected to refuse
// the duplicate request rather than queue it.
func (r *Registry) Acquire(key int64) (func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.busy[key]; taken {
		return nil, ErrBusy
	}
	r.busy[key] = struct{}{}

	var once sync.Once
	release := func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.busy, key)
			r.mu.Unlock()
		})
	}
	return release, nil
}

// InFlight reports whether an operation is currently in flight for key.
func (r *Registry) InFlight(key int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, taken := r.busy[key]
	return taken
}
