package concept

import "sync"

// Registry is the set of identifiers already emitted in one corpus run.
// The first registration of an id wins; later ones are no-ops. Register
// is a single locked check-then-insert, so partitions may share a
// registry, but reproducible output still needs a stable feed order.
type Registry struct {
	mu    sync.Mutex
	ids   map[string]struct{}
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]struct{})}
}

// Register adds id and reports whether it was new. Empty ids are never added.
func (r *Registry) Register(id string) bool {
	if id == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ids[id]; ok {
		return false
	}
	r.ids[id] = struct{}{}
	r.order = append(r.order, id)
	return true
}

// Contains reports whether id has been registered.
func (r *Registry) Contains(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ids[id]
	return ok
}

// Len returns the number of registered ids.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// IDs returns registered ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Merge registers every id of other in its registration order and returns
// how many were new. Use it to fold per-file partitions back into the run
// registry on the main goroutine.
func (r *Registry) Merge(other *Registry) int {
	added := 0
	for _, id := range other.IDs() {
		if r.Register(id) {
			added++
		}
	}
	return added
}
