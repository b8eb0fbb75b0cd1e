package docstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/campusboard/campusboard/internal/pkg/logger"
)

// FirestoreStore implements Store on top of a Cloud Firestore client.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Store backed by the given Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Collection resolves a (possibly nested) collection reference from path segments.
func (s *FirestoreStore) Collection(path ...string) Collection {
	if len(path) == 0 || len(path)%2 == 0 {
		// Collection paths always have an odd number of segments.
		logger.Error().Strs("path", path).Msg("Invalid collection path")
		return &firestoreCollection{}
	}

	ref := s.client.Collection(path[0])
	for i := 1; i+1 < len(path); i += 2 {
		ref = ref.Doc(path[i]).Collection(path[i+1])
	}
	return &firestoreCollection{ref: ref}
}

// Batch starts an atomic Firestore write batch.
func (s *FirestoreStore) Batch() Batch {
	return &firestoreBatch{batch: s.client.Batch()}
}

// Close closes the underlying Firestore client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

type firestoreCollection struct {
	ref *firestore.CollectionRef
}

func (c *firestoreCollection) Get(ctx context.Context, id string) (Document, error) {
	if c.ref == nil {
		return Document{}, fmt.Errorf("invalid collection reference")
	}

	snap, err := c.ref.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("error getting document %s: %w", id, err)
	}

	return Document{ID: snap.Ref.ID, decode: snap.DataTo}, nil
}

func (c *firestoreCollection) Add(ctx context.Context, data interface{}) (string, error) {
	if c.ref == nil {
		return "", fmt.Errorf("invalid collection reference")
	}

	ref, _, err := c.ref.Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("error adding document: %w", err)
	}
	return ref.ID, nil
}

func (c *firestoreCollection) Set(ctx context.Context, id string, data interface{}) error {
	if c.ref == nil {
		return fmt.Errorf("invalid collection reference")
	}

	if _, err := c.ref.Doc(id).Set(ctx, data); err != nil {
		return fmt.Errorf("error setting document %s: %w", id, err)
	}
	return nil
}

func (c *firestoreCollection) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if c.ref == nil {
		return fmt.Errorf("invalid collection reference")
	}

	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if _, err := c.ref.Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("error updating document %s: %w", id, err)
	}
	return nil
}

func (c *firestoreCollection) Delete(ctx context.Context, id string) error {
	if c.ref == nil {
		return fmt.Errorf("invalid collection reference")
	}

	// Firestore deletes are no-op successes for missing documents.
	if _, err := c.ref.Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("error deleting document %s: %w", id, err)
	}
	return nil
}

func (c *firestoreCollection) List(ctx context.Context) ([]Document, error) {
	if c.ref == nil {
		return nil, fmt.Errorf("invalid collection reference")
	}
	return collectDocuments(c.ref.Documents(ctx))
}

func (c *firestoreCollection) ListOrdered(ctx context.Context, field string, dir Direction) ([]Document, error) {
	if c.ref == nil {
		return nil, fmt.Errorf("invalid collection reference")
	}

	fsDir := firestore.Asc
	if dir == Desc {
		fsDir = firestore.Desc
	}
	return collectDocuments(c.ref.OrderBy(field, fsDir).Documents(ctx))
}

func collectDocuments(iter *firestore.DocumentIterator) ([]Document, error) {
	defer iter.Stop()

	docs := []Document{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating documents: %w", err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, decode: snap.DataTo})
	}
	return docs, nil
}

type firestoreBatch struct {
	batch *firestore.WriteBatch
}

func (b *firestoreBatch) Delete(col Collection, id string) {
	fc, ok := col.(*firestoreCollection)
	if !ok || fc.ref == nil {
		logger.Error().Str("id", id).Msg("Batch delete staged against a non-Firestore collection")
		return
	}
	b.batch.Delete(fc.ref.Doc(id))
}

func (b *firestoreBatch) Commit(ctx context.Context) error {
	if _, err := b.batch.Commit(ctx); err != nil {
		return fmt.Errorf("error committing batch: %w", err)
	}
	return nil
}
