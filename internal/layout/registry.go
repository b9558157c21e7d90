package layout

import (
	"sort"

	"git.home.luguber.info/inful/pagecompose/internal/markup"
)

// Registry maps block names to override content for one render. At most one
// override per name is active; setting a name twice keeps the last content.
//
// A no-op override is an ordinary entry with empty content: it still counts
// as present and therefore suppresses the base default entirely. That is
// how a page silences the host layout's header, breadcrumb, and sidebar
// regions.
type Registry struct {
	m map[string]markup.Fragment
}

// NewRegistry returns an empty override registry.
func NewRegistry() *Registry {
	return &Registry{m: make(map[string]markup.Fragment)}
}

// Set registers content for the named block and returns the registry for
// chaining.
func (r *Registry) Set(name string, content markup.Fragment) *Registry {
	r.m[name] = content
	return r
}

// Noop registers an empty override that suppresses the base default.
func (r *Registry) Noop(name string) *Registry {
	return r.Set(name, "")
}

// Lookup returns the override for name and whether one is registered.
func (r *Registry) Lookup(name string) (markup.Fragment, bool) {
	f, ok := r.m[name]
	return f, ok
}

// Names returns the registered block names in sorted order, so validation
// reports the same offending block on every run.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.m))
	for n := range r.m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered overrides.
func (r *Registry) Len() int { return len(r.m) }
