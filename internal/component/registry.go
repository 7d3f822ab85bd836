// internal/component/registry.go
//
// Component registry (cycle-free).
//
// Each concrete component lives under components/<name> and calls
// component.Register() in an init() function.  cmd/web mounts every
// component's Routes() at “/” after the wiring phase completes.

package component

import (
	"sync"

	"github.com/go-chi/chi/v5"
)

// Component contract.
//
// Routes() should mount every endpoint of the component, e.g:
//
//	r := chi.NewRouter()
//	r.Get("/albums", listAlbums)
//	r.Get("/albums/{id}", getAlbum)
//	return r
type Component interface {
	Name() string
	Routes() chi.Router
}

var (
	mu       sync.RWMutex
	registry = map[string]Component{}
)

// Register is invoked from component init() functions.
func Register(c Component) {
	mu.Lock()
	registry[c.Name()] = c
	mu.Unlock()
}

// All returns every registered component in arbitrary order.
func All() []Component {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Component, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	return out
}
