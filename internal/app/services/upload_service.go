package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campusboard/campusboard/internal/pkg/apperrors"
	"github.com/campusboard/campusboard/internal/pkg/blobstore"
	"github.com/campusboard/campusboard/internal/pkg/logger"
)

// uploadPrefix is the storage folder for announcement images.
const uploadPrefix = "announcements"

// unsafeKeyChars matches every filename character that is not kept verbatim
// in a storage key.
var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// UploadService defines the interface for image upload operations
type UploadService interface {
	// UploadImages stores the given files and returns their public URLs in
	// submission order. A single invalid or failed file fails the whole
	// batch; no partial URL list is ever returned.
	UploadImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
}

// uploadServiceImpl implements the UploadService interface
type uploadServiceImpl struct {
	storage blobstore.Storage
	now     func() time.Time
}

// NewUploadService creates a new upload service instance
func NewUploadService(storage blobstore.Storage) UploadService {
	return &uploadServiceImpl{
		storage: storage,
		now:     time.Now,
	}
}

// UploadImages validates the whole batch up front, then uploads the files
// concurrently and collects their public URLs in input order.
func (s *uploadServiceImpl) UploadImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, apperrors.ErrNoFilesProvided
	}

	// Fail fast before any upload is attempted.
	for _, fh := range files {
		if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
			return nil, apperrors.NewNotAnImageError(fh.Filename)
		}
	}

	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)

	for i, fh := range files {
		i, fh := i, fh
		key := s.storageKey(fh.Filename)

		g.Go(func() error {
			f, err := fh.Open()
			if err != nil {
				return fmt.Errorf("error opening uploaded file %s: %w", fh.Filename, err)
			}
			defer f.Close()

			url, err := s.storage.Upload(gctx, key, fh.Header.Get("Content-Type"), f)
			if err != nil {
				return fmt.Errorf("error uploading %s: %w", fh.Filename, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Int("files", len(files)).Msg("Image batch upload failed")
		return nil, err
	}
	return urls, nil
}

// storageKey derives a collision-resistant key from a millisecond timestamp
// and a sanitized version of the original filename.
func (s *uploadServiceImpl) storageKey(filename string) string {
	sanitized := unsafeKeyChars.ReplaceAllString(filename, "_")
	return fmt.Sprintf("%s/%d-%s", uploadPrefix, s.now().UnixMilli(), sanitized)
}
