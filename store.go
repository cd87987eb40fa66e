package titulares

import "context"

// ObjectStore reads and writes opaque objects under string keys. It stands
// in for the external object-storage service; implementations hide whether
// the backing store is a local directory or a remote bucket.
type ObjectStore interface {
	// GetObject returns the object's bytes. Returns ENOTFOUND when no
	// object exists under the key.
	GetObject(ctx context.Context, key string) ([]byte, error)

	// PutObject writes the object, overwriting any existing object under
	// the same key (last-write-wins).
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
}
