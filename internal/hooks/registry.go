package hooks

import (
	"fmt"
	"sort"
	"sync"
)

// RenderContext carries everything a hook renderer may interpolate into its
// snippet.
type RenderContext struct {
	ProductID   uint64
	ProductName string
	FormToken   string
	SubmitURL   string
}

// Renderer produces the HTML/CSS snippet for one named hook.
type Renderer func(ctx RenderContext) (string, error)

// Registry is an explicit routing table from hook names to renderers. The
// storefront asks for snippets by name; nothing is dispatched by
// convention or reflection.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

func (r *Registry) Register(name string, renderer Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[name] = renderer
}

// Render executes the named hook. Unknown names are an error, not a panic:
// the set of hooks is part of the public contract.
func (r *Registry) Render(name string, ctx RenderContext) (string, error) {
	r.mu.RLock()
	renderer, ok := r.renderers[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("unknown hook %q", name)
	}
	return renderer(ctx)
}

// Names lists the registered hooks in stable order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
