package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// Direction is the sort direction for ordered listings.
type Direction int

const (
	// Asc sorts ascending by the order field
	Asc Direction = iota
	// Desc sorts descending by the order field
	Desc
)

// Document represents a stored document with its store-assigned ID.
type Document struct {
	ID     string
	decode func(v interface{}) error
}

// DataTo decodes the document fields into the given struct pointer.
func (d Document) DataTo(v interface{}) error {
	if d.decode == nil {
		return errors.New("document has no data")
	}
	return d.decode(v)
}

// Store is a hierarchical document database organised as top-level
// collections whose documents may own nested sub-collections.
type Store interface {
	// Collection resolves a collection by path segments, e.g.
	// Collection("colleges") or Collection("colleges", collegeID, "programmes").
	// The path must have an odd number of segments.
	Collection(path ...string) Collection

	// Batch starts an atomic multi-document write batch. The store applies
	// either all staged writes or none of them.
	Batch() Batch

	// Close releases the underlying client resources.
	Close() error
}

// Collection exposes document operations within one collection.
type Collection interface {
	// Get retrieves a document by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (Document, error)

	// Add creates a document with a store-assigned ID and returns that ID.
	Add(ctx context.Context, data interface{}) (string, error)

	// Set writes a document under the given ID, replacing any existing data.
	Set(ctx context.Context, id string, data interface{}) error

	// Update merges the given fields into an existing document.
	// Returns ErrNotFound if the document does not exist.
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	// Delete removes a document. Deleting a non-existent document is a no-op.
	Delete(ctx context.Context, id string) error

	// List returns all documents in the collection in no guaranteed order.
	List(ctx context.Context) ([]Document, error)

	// ListOrdered returns all documents ordered by the given field.
	ListOrdered(ctx context.Context, field string, dir Direction) ([]Document, error)
}

// Batch stages writes that commit atomically.
type Batch interface {
	// Delete stages the removal of a document in the given collection.
	Delete(col Collection, id string)

	// Commit applies all staged writes. If it fails, none are applied.
	Commit(ctx context.Context) error
}
