// Package goquery provides CSS-selector based headline extraction using
// github.com/PuerkitoBio/goquery. It contains the site adapter for each
// supported source, the registry that resolves an adapter from an object
// key, and the extractor that orchestrates parsing and normalization.
package goquery

import (
	"strings"

	"github.com/dfgomezp/titulares"
)

var _ titulares.AdapterRegistry = (*Registry)(nil)

// Registry maps object keys to site adapters. Resolution is a
// case-insensitive substring match of the source identifier inside the
// object key, so both "eltiempo.html" and
// "headlines/raw/eltiempo-2024-03-05.html" resolve the eltiempo adapter.
type Registry struct {
	order    []titulares.Source
	adapters map[titulares.Source]titulares.SiteAdapter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[titulares.Source]titulares.SiteAdapter),
	}
}

// NewDefaultRegistry creates a Registry with all supported site adapters
// registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(titulares.SourceElTiempo, NewElTiempoAdapter())
	r.Register(titulares.SourcePublimetro, NewPublimetroAdapter())
	return r
}

// Register adds an adapter for a source.
// If an adapter is already registered for the source, it is replaced.
func (r *Registry) Register(source titulares.Source, adapter titulares.SiteAdapter) {
	if _, ok := r.adapters[source]; !ok {
		r.order = append(r.order, source)
	}
	r.adapters[source] = adapter
}

// Resolve returns the adapter whose source identifier occurs in the object
// key. Sources are checked in registration order, so resolution is
// deterministic. Returns EUNSUPPORTED when no identifier matches.
func (r *Registry) Resolve(objectKey string) (titulares.SiteAdapter, error) {
	key := strings.ToLower(objectKey)
	for _, source := range r.order {
		if strings.Contains(key, string(source)) {
			return r.adapters[source], nil
		}
	}
	return nil, titulares.Errorf(titulares.EUNSUPPORTED, "no adapter for object %q", objectKey)
}

// List returns all registered sources in registration order.
func (r *Registry) List() []titulares.Source {
	sources := make([]titulares.Source, len(r.order))
	copy(sources, r.order)
	return sources
}
