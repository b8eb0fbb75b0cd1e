package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func TestMemoryStoreSetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	col := store.Collection("colleges")

	require.NoError(t, col.Set(ctx, "c1", testDoc{Name: "Engineering", Score: 10}))

	doc, err := col.Get(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, "c1", doc.ID)

	var got testDoc
	require.NoError(t, doc.DataTo(&got))
	require.Equal(t, "Engineering", got.Name)
	require.Equal(t, 10, got.Score)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Collection("colleges").Get(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreAddAssignsIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	col := store.Collection("colleges")

	id1, err := col.Add(ctx, testDoc{Name: "A"})
	require.NoError(t, err)
	id2, err := col.Add(ctx, testDoc{Name: "B"})
	require.NoError(t, err)
	require.NotEmpty(t, id1)
	require.NotEqual(t, id1, id2)

	docs, err := col.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
}

func TestMemoryStoreUpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	col := store.Collection("colleges")

	require.NoError(t, col.Set(ctx, "c1", testDoc{Name: "Old", Score: 7}))
	require.NoError(t, col.Update(ctx, "c1", map[string]interface{}{"name": "New"}))

	doc, err := col.Get(ctx, "c1")
	require.NoError(t, err)

	var got testDoc
	require.NoError(t, doc.DataTo(&got))
	require.Equal(t, "New", got.Name)
	require.Equal(t, 7, got.Score, "untouched fields survive the merge")
}

func TestMemoryStoreUpdateMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	err := store.Collection("colleges").Update(ctx, "nope", map[string]interface{}{"name": "X"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	col := store.Collection("colleges")

	require.NoError(t, col.Set(ctx, "c1", testDoc{Name: "A"}))
	require.NoError(t, col.Delete(ctx, "c1"))
	require.NoError(t, col.Delete(ctx, "c1"))
	require.NoError(t, col.Delete(ctx, "never-existed"))

	_, err := col.Get(ctx, "c1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListOrdered(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	col := store.Collection("colleges")

	require.NoError(t, col.Set(ctx, "b", testDoc{Name: "Beta"}))
	require.NoError(t, col.Set(ctx, "c", testDoc{Name: "Gamma"}))
	require.NoError(t, col.Set(ctx, "a", testDoc{Name: "Alpha"}))

	asc, err := col.ListOrdered(ctx, "name", Asc)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, docIDs(asc))

	desc, err := col.ListOrdered(ctx, "name", Desc)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b", "a"}, docIDs(desc))
}

func TestMemoryStoreListOrderedTimestamps(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	col := store.Collection("announcement")

	type stamped struct {
		CreatedAt string `json:"createdAt"`
	}
	require.NoError(t, col.Set(ctx, "old", stamped{CreatedAt: "2024-01-02T10:00:00Z"}))
	require.NoError(t, col.Set(ctx, "new", stamped{CreatedAt: "2025-06-01T08:30:00Z"}))
	require.NoError(t, col.Set(ctx, "mid", stamped{CreatedAt: "2024-11-20T23:59:59Z"}))

	docs, err := col.ListOrdered(ctx, "createdAt", Desc)
	require.NoError(t, err)
	require.Equal(t, []string{"new", "mid", "old"}, docIDs(docs))
}

func TestMemoryStoreSubCollections(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	colleges := store.Collection("colleges")
	programmes := store.Collection("colleges", "c1", "programmes")

	require.NoError(t, colleges.Set(ctx, "c1", testDoc{Name: "Engineering"}))
	require.NoError(t, programmes.Set(ctx, "p1", testDoc{Name: "Mechanical"}))
	require.NoError(t, programmes.Set(ctx, "p2", testDoc{Name: "Civil"}))

	docs, err := programmes.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// A sibling college has no programmes.
	other, err := store.Collection("colleges", "c2", "programmes").List(ctx)
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestMemoryStoreSubCollectionSurvivesParentDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	colleges := store.Collection("colleges")
	programmes := store.Collection("colleges", "c1", "programmes")

	require.NoError(t, colleges.Set(ctx, "c1", testDoc{Name: "Engineering"}))
	require.NoError(t, programmes.Set(ctx, "p1", testDoc{Name: "Mechanical"}))

	require.NoError(t, colleges.Delete(ctx, "c1"))

	_, err := colleges.Get(ctx, "c1")
	require.ErrorIs(t, err, ErrNotFound)

	// The programme is orphaned, not removed.
	docs, err := programmes.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "p1", docs[0].ID)
}

func TestMemoryStoreBatchDeletesAcrossCollections(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	colleges := store.Collection("colleges")
	programmes := store.Collection("colleges", "c1", "programmes")

	require.NoError(t, colleges.Set(ctx, "c1", testDoc{Name: "Engineering"}))
	require.NoError(t, programmes.Set(ctx, "p1", testDoc{Name: "Mechanical"}))
	require.NoError(t, programmes.Set(ctx, "p2", testDoc{Name: "Civil"}))

	batch := store.Batch()
	batch.Delete(programmes, "p1")
	batch.Delete(programmes, "p2")
	batch.Delete(colleges, "c1")
	require.NoError(t, batch.Commit(ctx))

	_, err := colleges.Get(ctx, "c1")
	require.ErrorIs(t, err, ErrNotFound)

	docs, err := programmes.List(ctx)
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestMemoryStoreListUnknownCollection(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	docs, err := store.Collection("nothing").List(ctx)
	require.NoError(t, err)
	require.Empty(t, docs)
}

func docIDs(docs []Document) []string {
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids
}
