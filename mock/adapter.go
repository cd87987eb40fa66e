// Package mock provides function-field test doubles for the titulares
// interfaces.
package mock

import "github.com/dfgomezp/titulares"

var _ titulares.SiteAdapter = (*SiteAdapter)(nil)

// SiteAdapter is a mock implementation of titulares.SiteAdapter.
type SiteAdapter struct {
	SourceFn           func() titulares.Source
	ExtractHeadlinesFn func(html string) ([]titulares.Headline, error)
}

func (a *SiteAdapter) Source() titulares.Source {
	return a.SourceFn()
}

func (a *SiteAdapter) ExtractHeadlines(html string) ([]titulares.Headline, error) {
	return a.ExtractHeadlinesFn(html)
}

var _ titulares.AdapterRegistry = (*AdapterRegistry)(nil)

// AdapterRegistry is a mock implementation of titulares.AdapterRegistry.
type AdapterRegistry struct {
	ResolveFn  func(objectKey string) (titulares.SiteAdapter, error)
	RegisterFn func(source titulares.Source, adapter titulares.SiteAdapter)
	ListFn     func() []titulares.Source
}

func (r *AdapterRegistry) Resolve(objectKey string) (titulares.SiteAdapter, error) {
	return r.ResolveFn(objectKey)
}

func (r *AdapterRegistry) Register(source titulares.Source, adapter titulares.SiteAdapter) {
	r.RegisterFn(source, adapter)
}

func (r *AdapterRegistry) List() []titulares.Source {
	return r.ListFn()
}
