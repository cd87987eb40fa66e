// Package slog provides logging decorators for titulares interfaces using
// log/slog.
package slog

import (
	"log/slog"
	"time"

	"github.com/dfgomezp/titulares"
)

// Ensure LoggingRegistry implements titulares.AdapterRegistry.
var _ titulares.AdapterRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an AdapterRegistry with debug logging for source
// resolution.
type LoggingRegistry struct {
	next   titulares.AdapterRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next titulares.AdapterRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Resolve delegates to the wrapped registry and logs the outcome.
func (r *LoggingRegistry) Resolve(objectKey string) (titulares.SiteAdapter, error) {
	begin := time.Now()
	adapter, err := r.next.Resolve(objectKey)
	if err != nil {
		r.logger.Info("source resolution",
			"object_key", objectKey,
			"source", "(unsupported)",
			"duration", time.Since(begin),
		)
		return nil, err
	}
	r.logger.Info("source resolution",
		"object_key", objectKey,
		"source", string(adapter.Source()),
		"duration", time.Since(begin),
	)
	return adapter, nil
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(source titulares.Source, adapter titulares.SiteAdapter) {
	r.next.Register(source, adapter)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []titulares.Source {
	return r.next.List()
}
