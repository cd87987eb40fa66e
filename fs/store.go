// Package fs provides a filesystem-backed object store. A directory plays
// the role of the bucket and object keys map to file paths under it.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dfgomezp/titulares"
)

// Ensure Store implements titulares.ObjectStore at compile time.
var _ titulares.ObjectStore = (*Store)(nil)

// Store reads and writes objects under a root directory.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

// GetObject returns the object's bytes.
// Returns ENOTFOUND when no object exists under the key.
func (s *Store) GetObject(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, titulares.Errorf(titulares.ENOTFOUND, "object %q not found", key)
	} else if err != nil {
		return nil, titulares.Errorf(titulares.EUNAVAILABLE, "failed to read object %q: %v", key, err)
	}
	return data, nil
}

// PutObject writes the object, creating parent directories as needed and
// overwriting any existing object under the same key. The content type is
// not persisted; the filesystem has no equivalent concept.
func (s *Store) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return titulares.Errorf(titulares.EUNAVAILABLE, "failed to create directory for %q: %v", key, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return titulares.Errorf(titulares.EUNAVAILABLE, "failed to write object %q: %v", key, err)
	}
	return nil
}
