package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/dfgomezp/titulares"
)

// Ensure LoggingStore implements titulares.ObjectStore.
var _ titulares.ObjectStore = (*LoggingStore)(nil)

// LoggingStore wraps an ObjectStore with per-operation logging.
type LoggingStore struct {
	next   titulares.ObjectStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next titulares.ObjectStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// GetObject delegates to the wrapped store and logs the read.
func (s *LoggingStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	begin := time.Now()
	data, err := s.next.GetObject(ctx, key)
	if err != nil {
		s.logger.Error("object read failed",
			"key", key,
			"error", titulares.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("object read",
		"key", key,
		"bytes", len(data),
		"duration", time.Since(begin),
	)
	return data, nil
}

// PutObject delegates to the wrapped store and logs the write.
func (s *LoggingStore) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	begin := time.Now()
	if err := s.next.PutObject(ctx, key, data, contentType); err != nil {
		s.logger.Error("object write failed",
			"key", key,
			"error", titulares.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return err
	}
	s.logger.Info("object written",
		"key", key,
		"bytes", len(data),
		"content_type", contentType,
		"duration", time.Since(begin),
	)
	return nil
}
