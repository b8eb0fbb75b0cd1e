package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campusboard/campusboard/internal/app/models"
	"github.com/campusboard/campusboard/internal/app/repositories"
	"github.com/campusboard/campusboard/internal/pkg/docstore"
	"github.com/campusboard/campusboard/internal/pkg/identity"

	"github.com/stretchr/testify/require"
)

// testEnv wires repositories over the in-memory backends, the same stack the
// memory store driver runs in production.
type testEnv struct {
	store      docstore.Store
	repos      *repositories.Repositories
	identities *identity.MemoryService
}

func newTestEnv() *testEnv {
	store := docstore.NewMemoryStore()
	return &testEnv{
		store:      store,
		repos:      repositories.NewRepositories(store),
		identities: identity.NewMemoryService(),
	}
}

func (e *testEnv) mustCreateCollege(t *testing.T, name, abbrv string) string {
	t.Helper()
	id, err := e.repos.CollegeRepository.CreateCollege(context.Background(), &models.College{Name: name, Abbrv: abbrv})
	require.NoError(t, err)
	return id
}

func (e *testEnv) mustCreateProgramme(t *testing.T, collegeID, name string, years int) string {
	t.Helper()
	id, err := e.repos.ProgrammeRepository.CreateProgramme(context.Background(), collegeID, &models.Programme{Name: name, Years: years})
	require.NoError(t, err)
	return id
}

// faultStore delegates to an inner store and injects failures for specific
// operations, so services can be exercised against partial outages.
type faultStore struct {
	docstore.Store
	setErrOn  string // top-level collection whose Set calls fail
	setErr    error
	commitErr error
}

func (s *faultStore) Collection(path ...string) docstore.Collection {
	col := s.Store.Collection(path...)
	if s.setErr != nil && len(path) > 0 && path[0] == s.setErrOn {
		return &faultCollection{Collection: col, setErr: s.setErr}
	}
	return col
}

func (s *faultStore) Batch() docstore.Batch {
	if s.commitErr != nil {
		return &faultBatch{err: s.commitErr}
	}
	return s.Store.Batch()
}

type faultCollection struct {
	docstore.Collection
	setErr error
}

func (c *faultCollection) Set(ctx context.Context, id string, data interface{}) error {
	return c.setErr
}

// faultBatch refuses to commit, leaving every staged document in place.
type faultBatch struct {
	err error
}

func (b *faultBatch) Delete(col docstore.Collection, id string) {}

func (b *faultBatch) Commit(ctx context.Context) error {
	return b.err
}

// faultIdentity delegates to the in-memory identity service and fails
// deletes on demand.
type faultIdentity struct {
	*identity.MemoryService
	deleteErr error
}

func (s *faultIdentity) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	return s.MemoryService.Delete(ctx, id)
}

var errInjected = errors.New("injected failure")
