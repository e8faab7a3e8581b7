// Package dedup collapses concurrent identical calls into one in-flight
// execution. It is a concurrency-collapsing layer, not a result cache: keys
// are evicted the moment their execution settles, and nothing is retained.
package dedup

import (
	"encoding/json"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Registry collapses concurrent calls that share a key. All callers that
// arrive while an execution for the key is outstanding receive that
// execution's eventual result, success or failure; callers that arrive after
// completion trigger a fresh execution.
//
// A Registry is per-process state. Construct one explicitly and inject it at
// call sites; multi-instance deployments must treat it as a per-instance
// optimization, not a correctness mechanism.
type Registry struct {
	group singleflight.Group

	mu       sync.Mutex
	inflight map[string]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		inflight: make(map[string]int),
	}
}

// Do executes fn under the given key, collapsing concurrent callers. The
// wrapped function executes at most once per outstanding window; every waiter
// receives the identical result. On settlement the key is evicted.
//
// No timeout is applied here. A stuck fn blocks all waiters on its key;
// callers needing a bound must wrap fn with their own deadline.
func (r *Registry) Do(key string, fn func() (interface{}, error)) (interface{}, error) {
	r.mu.Lock()
	r.inflight[key]++
	r.mu.Unlock()

	v, err, _ := r.group.Do(key, fn)

	r.mu.Lock()
	r.inflight[key]--
	if r.inflight[key] <= 0 {
		delete(r.inflight, key)
	}
	r.mu.Unlock()

	return v, err
}

// Len reports how many keys currently have an outstanding execution.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inflight)
}

// Reset forgets every outstanding key so that subsequent calls start fresh
// executions. Callers already waiting on a key still receive the result of
// the execution they joined. Used for logout and test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	keys := make([]string, 0, len(r.inflight))
	for k := range r.inflight {
		keys = append(keys, k)
	}
	r.inflight = make(map[string]int)
	r.mu.Unlock()

	for _, k := range keys {
		r.group.Forget(k)
	}
}

// Key derives a deterministic dedup key from a call-site identifier and its
// arguments. Arguments are JSON-serialized; anything unserializable degrades
// the key to the identifier alone.
func Key(op string, args ...interface{}) string {
	if len(args) == 0 {
		return op
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, op)
	for _, a := range args {
		b, err := json.Marshal(a)
		if err != nil {
			return op
		}
		parts = append(parts, string(b))
	}
	return strings.Join(parts, "|")
}
