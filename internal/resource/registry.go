// internal/resource/registry.go
//
// Resource registry.
//
// Components call resource.Register() in an init() function, the same way
// they register their route components.  Handlers look their resource up
// by name when building the request context.  Registration happens during
// process startup, before the listener opens; the mutex exists for the
// rare embedder that composes chains while serving.
package resource

import "sync"

var (
	mu       sync.RWMutex
	registry = map[string]*Resource{}
)

// Register is invoked from component init() functions.  A duplicate name
// overwrites the earlier entry; duplicates are logged by the caller.
func Register(r *Resource) {
	mu.Lock()
	registry[r.Name] = r
	mu.Unlock()
}

// Lookup returns the resource or nil.
func Lookup(name string) *Resource {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// All returns every registered resource in arbitrary order.
func All() []*Resource {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]*Resource, 0, len(registry))
	for _, r := range registry {
		out = append(out, r)
	}
	return out
}
