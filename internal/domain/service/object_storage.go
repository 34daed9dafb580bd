package service

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned when no object exists under the key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStorage stores tenant documents and images in a bucket. Keys are
// slash-separated paths prefixed with the owning tenant id.
type ObjectStorage interface {
	// Upload writes the object under the key, replacing any previous content.
	Upload(ctx context.Context, key, contentType string, body io.Reader) error

	// Download returns a reader over the object's content. The caller must
	// close it.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether an object is stored under the key.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
