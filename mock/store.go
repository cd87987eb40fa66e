package mock

import (
	"context"

	"github.com/dfgomezp/titulares"
)

var _ titulares.ObjectStore = (*ObjectStore)(nil)

// ObjectStore is a mock implementation of titulares.ObjectStore.
type ObjectStore struct {
	GetObjectFn func(ctx context.Context, key string) ([]byte, error)
	PutObjectFn func(ctx context.Context, key string, data []byte, contentType string) error
}

func (s *ObjectStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	return s.GetObjectFn(ctx, key)
}

func (s *ObjectStore) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	return s.PutObjectFn(ctx, key, data, contentType)
}
