// Package entitylock provides per-entity mutual exclusion keyed by
// canonical registry names. The coordinator holds the locks for the
// resolved personnel (and vehicle, if any) for the duration of one
// operation; operations on disjoint entities proceed in parallel.
package entitylock

import (
	"sort"
	"sync"
)

// Registry hands out exclusive holds on entity names. It keeps one
// semaphore per currently contended name and drops entries once the last
// holder releases, so the map stays bounded by live operations.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	refs int
	sem  chan struct{} // capacity 1
}

// NewRegistry creates an empty lock registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Acquire takes exclusive holds on the given names. Empty names are
// dropped and duplicates collapse to one hold. Names are always locked
// in sorted order so two operations contending on overlapping sets
// cannot deadlock. The returned keys must be passed to Release.
func (r *Registry) Acquire(names ...string) []string {
	keys := dedupeSorted(names)
	for _, key := range keys {
		r.retain(key).sem <- struct{}{}
	}
	return keys
}

// Release drops the holds taken by a prior Acquire, in reverse order.
func (r *Registry) Release(keys []string) {
	for i := len(keys) - 1; i >= 0; i-- {
		key := keys[i]

		r.mu.Lock()
		e := r.entries[key]
		r.mu.Unlock()
		if e == nil {
			continue
		}

		<-e.sem

		r.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(r.entries, key)
		}
		r.mu.Unlock()
	}
}

func (r *Registry) retain(key string) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		r.entries[key] = e
	}
	e.refs++
	return e
}

func dedupeSorted(names []string) []string {
	seen := make(map[string]bool, len(names))
	keys := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}
