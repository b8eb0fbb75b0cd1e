package blobstore

import (
	"context"
	"io"
)

// Storage accepts binary blobs and returns publicly readable URLs for them.
type Storage interface {
	// Upload stores the blob under the given key, makes it publicly
	// readable and returns its public URL.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}
