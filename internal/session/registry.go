// Package session tracks live provider instances, one per derived instance
// name.
package session

import (
	"sync"

	"github.com/yagomat/supra-client-nexus-sub000/internal/provider"
)

// Registry is the single authoritative map of live provider instances. The
// single-instance-per-user invariant is enforced here: Register refuses a
// second handle under the same key.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]provider.Instance
}

func NewRegistry() *Registry {
	return &Registry{
		instances: make(map[string]provider.Instance),
	}
}

// Register stores the handle under key. Returns false when a live instance
// is already registered; the caller must treat that as "already connecting".
func (r *Registry) Register(key string, inst provider.Instance) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.instances[key]; exists {
		return false
	}
	r.instances[key] = inst
	return true
}

func (r *Registry) Get(key string) (provider.Instance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.instances[key]
	return inst, ok
}

// Remove drops the handle and returns it for teardown, if present.
func (r *Registry) Remove(key string) (provider.Instance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, ok := r.instances[key]
	if ok {
		delete(r.instances, key)
	}
	return inst, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}
