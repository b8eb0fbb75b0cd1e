package blobstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/campusboard/campusboard/internal/pkg/logger"
)

// publicURLPrefix is where publicly readable objects are served from.
const publicURLPrefix = "https://storage.googleapis.com"

// GCSStorage implements Storage on a Google Cloud Storage bucket.
type GCSStorage struct {
	bucket *storage.BucketHandle
	name   string
}

// NewGCSStorage creates a Storage writing into the given bucket. The bucket
// name is needed separately to build public URLs; a leading gs:// prefix on
// it is tolerated.
func NewGCSStorage(bucket *storage.BucketHandle, bucketName string) (*GCSStorage, error) {
	bucketName = strings.TrimPrefix(bucketName, "gs://")
	if bucketName == "" {
		return nil, fmt.Errorf("storage bucket name not configured")
	}

	return &GCSStorage{
		bucket: bucket,
		name:   bucketName,
	}, nil
}

// Upload writes the blob, grants public read access and returns its URL.
func (s *GCSStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	obj := s.bucket.Object(key)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("error writing object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("error finalizing object %s: %w", key, err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("error making object %s public: %w", key, err)
	}

	url := fmt.Sprintf("%s/%s/%s", publicURLPrefix, s.name, key)
	logger.Info().Str("key", key).Str("url", url).Msg("Uploaded object")
	return url, nil
}
