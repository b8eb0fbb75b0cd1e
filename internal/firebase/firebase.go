package firebase

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/campusboard/campusboard/internal/config"
	"github.com/campusboard/campusboard/internal/pkg/logger"
)

// Clients bundles the Firebase-backed service clients the application uses.
type Clients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
	Bucket    *storage.BucketHandle
}

// NewClients initialises the Firebase app and derives the Firestore, Auth
// and Storage clients from it.
func NewClients(ctx context.Context, cfg *config.Config) (*Clients, error) {
	conf := &firebase.Config{
		ProjectID:     cfg.Firebase.ProjectID,
		StorageBucket: strings.TrimPrefix(cfg.Firebase.StorageBucket, "gs://"),
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("failed to create auth client: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("failed to resolve storage bucket: %w", err)
	}

	logger.Info().Str("projectID", cfg.Firebase.ProjectID).Msg("Firebase clients initialised")

	return &Clients{
		Firestore: fsClient,
		Auth:      authClient,
		Bucket:    bucket,
	}, nil
}

// Close releases the underlying clients.
func (c *Clients) Close() {
	if c.Firestore != nil {
		if err := c.Firestore.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing firestore client")
		}
	}
}
