package blobstore

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryStorage is an in-process Storage used for tests and for running the
// API without cloud credentials. URLs point at a fake host.
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	baseURL string
}

// NewMemoryStorage creates an empty in-memory object store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		objects: map[string][]byte{},
		baseURL: "https://storage.invalid/campusboard",
	}
}

// Upload stores the blob in memory and returns a synthetic public URL.
func (s *MemoryStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading blob %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

// Object reports the stored bytes for a key, if any.
func (s *MemoryStorage) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.objects[key]
	return data, ok
}

// Len reports how many objects have been stored.
func (s *MemoryStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
