package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used for tests and for running the API
// without Firebase credentials. Documents are kept as JSON-encoded blobs so
// reads and writes go through the same field names the Firestore driver uses.
type MemoryStore struct {
	mu   sync.RWMutex
	root map[string]*memCollection
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{root: map[string]*memCollection{}}
}

type memCollection struct {
	docs map[string]*memDoc
	ids  []string // insertion order
}

type memDoc struct {
	data []byte // nil means the document does not exist
	subs map[string]*memCollection
}

// Collection resolves a collection by path segments.
func (s *MemoryStore) Collection(path ...string) Collection {
	return &memoryCollection{store: s, path: path}
}

// Batch starts a write batch applied under a single lock on commit.
func (s *MemoryStore) Batch() Batch {
	return &memoryBatch{store: s}
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// resolve walks the path to the target collection, optionally creating
// intermediate nodes. Callers must hold the store lock.
func (s *MemoryStore) resolve(path []string, create bool) (*memCollection, error) {
	if len(path) == 0 || len(path)%2 == 0 {
		return nil, fmt.Errorf("invalid collection path: %v", path)
	}

	col, ok := s.root[path[0]]
	if !ok {
		if !create {
			return nil, nil
		}
		col = &memCollection{docs: map[string]*memDoc{}}
		s.root[path[0]] = col
	}

	for i := 1; i+1 < len(path); i += 2 {
		doc, ok := col.docs[path[i]]
		if !ok {
			if !create {
				return nil, nil
			}
			// A sub-collection may live under a document that was never
			// written; the parent node exists without data.
			doc = &memDoc{}
			col.docs[path[i]] = doc
		}
		if doc.subs == nil {
			if !create {
				return nil, nil
			}
			doc.subs = map[string]*memCollection{}
		}
		sub, ok := doc.subs[path[i+1]]
		if !ok {
			if !create {
				return nil, nil
			}
			sub = &memCollection{docs: map[string]*memDoc{}}
			doc.subs[path[i+1]] = sub
		}
		col = sub
	}
	return col, nil
}

type memoryCollection struct {
	store *MemoryStore
	path  []string
}

func (c *memoryCollection) Get(ctx context.Context, id string) (Document, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	col, err := c.store.resolve(c.path, false)
	if err != nil {
		return Document{}, err
	}
	if col == nil {
		return Document{}, ErrNotFound
	}

	doc, ok := col.docs[id]
	if !ok || doc.data == nil {
		return Document{}, ErrNotFound
	}

	data := append([]byte(nil), doc.data...)
	return Document{ID: id, decode: func(v interface{}) error {
		return json.Unmarshal(data, v)
	}}, nil
}

func (c *memoryCollection) Add(ctx context.Context, data interface{}) (string, error) {
	id := uuid.NewString()
	if err := c.Set(ctx, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (c *memoryCollection) Set(ctx context.Context, id string, data interface{}) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	col, err := c.store.resolve(c.path, true)
	if err != nil {
		return err
	}

	doc, ok := col.docs[id]
	if !ok {
		doc = &memDoc{}
		col.docs[id] = doc
	}
	if doc.data == nil {
		col.ids = append(col.ids, id)
	}
	doc.data = encoded
	return nil
}

func (c *memoryCollection) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	col, err := c.store.resolve(c.path, false)
	if err != nil {
		return err
	}
	if col == nil {
		return ErrNotFound
	}

	doc, ok := col.docs[id]
	if !ok || doc.data == nil {
		return ErrNotFound
	}

	merged := map[string]interface{}{}
	if err := json.Unmarshal(doc.data, &merged); err != nil {
		return fmt.Errorf("error decoding document %s: %w", id, err)
	}
	for k, v := range fields {
		merged[k] = v
	}

	encoded, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("error encoding document %s: %w", id, err)
	}
	doc.data = encoded
	return nil
}

func (c *memoryCollection) Delete(ctx context.Context, id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	col, err := c.store.resolve(c.path, false)
	if err != nil {
		return err
	}
	if col == nil {
		return nil // deleting from a collection that never existed is a no-op
	}
	col.delete(id)
	return nil
}

// delete removes a document while leaving any sub-collections in place,
// matching the store semantics where children outlive their parent document.
func (col *memCollection) delete(id string) {
	doc, ok := col.docs[id]
	if !ok || doc.data == nil {
		return
	}

	doc.data = nil
	if len(doc.subs) == 0 {
		delete(col.docs, id)
	}
	for i, existing := range col.ids {
		if existing == id {
			col.ids = append(col.ids[:i], col.ids[i+1:]...)
			break
		}
	}
}

func (c *memoryCollection) List(ctx context.Context) ([]Document, error) {
	return c.list(nil, Asc)
}

func (c *memoryCollection) ListOrdered(ctx context.Context, field string, dir Direction) ([]Document, error) {
	return c.list(&field, dir)
}

func (c *memoryCollection) list(orderBy *string, dir Direction) ([]Document, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	col, err := c.store.resolve(c.path, false)
	if err != nil {
		return nil, err
	}
	if col == nil {
		return []Document{}, nil
	}

	type entry struct {
		id     string
		data   []byte
		fields map[string]interface{}
	}

	entries := []entry{}
	for _, id := range col.ids {
		doc := col.docs[id]
		if doc == nil || doc.data == nil {
			continue
		}
		e := entry{id: id, data: append([]byte(nil), doc.data...)}
		if orderBy != nil {
			if err := json.Unmarshal(e.data, &e.fields); err != nil {
				return nil, fmt.Errorf("error decoding document %s: %w", id, err)
			}
		}
		entries = append(entries, e)
	}

	if orderBy != nil {
		sort.SliceStable(entries, func(i, j int) bool {
			cmp := compareFieldValues(entries[i].fields[*orderBy], entries[j].fields[*orderBy])
			if dir == Desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	docs := make([]Document, 0, len(entries))
	for _, e := range entries {
		data := e.data
		docs = append(docs, Document{ID: e.id, decode: func(v interface{}) error {
			return json.Unmarshal(data, v)
		}})
	}
	return docs, nil
}

// compareFieldValues orders JSON-decoded field values. Timestamps arrive as
// RFC3339 strings, which order chronologically under string comparison.
func compareFieldValues(a, b interface{}) int {
	switch av := a.(type) {
	case nil:
		if b == nil {
			return 0
		}
		return -1
	case string:
		bv, ok := b.(string)
		if !ok {
			return strings.Compare(av, fmt.Sprint(b))
		}
		return strings.Compare(av, bv)
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	default:
		if b == nil {
			return 1
		}
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

type stagedDelete struct {
	path []string
	id   string
}

type memoryBatch struct {
	store   *MemoryStore
	deletes []stagedDelete
}

func (b *memoryBatch) Delete(col Collection, id string) {
	mc, ok := col.(*memoryCollection)
	if !ok {
		return
	}
	b.deletes = append(b.deletes, stagedDelete{path: mc.path, id: id})
}

func (b *memoryBatch) Commit(ctx context.Context) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	// All staged deletes are applied under one lock; readers never observe
	// a partially committed batch.
	for _, staged := range b.deletes {
		col, err := b.store.resolve(staged.path, false)
		if err != nil {
			return err
		}
		if col == nil {
			continue
		}
		col.delete(staged.id)
	}
	return nil
}
