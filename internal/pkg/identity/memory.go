package identity

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campusboard/campusboard/internal/pkg/apperrors"
)

// MemoryService is an in-process Service used for tests and for running the
// API without Firebase credentials.
type MemoryService struct {
	mu      sync.Mutex
	byID    map[string]NewIdentity
	byEmail map[string]string
}

// NewMemoryService creates an empty in-memory identity service.
func NewMemoryService() *MemoryService {
	return &MemoryService{
		byID:    map[string]NewIdentity{},
		byEmail: map[string]string{},
	}
}

// Create registers an identity, enforcing email uniqueness.
func (s *MemoryService) Create(ctx context.Context, ident NewIdentity) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[ident.Email]; taken {
		return "", apperrors.ErrEmailAlreadyExists
	}

	id := uuid.NewString()
	s.byID[id] = ident
	s.byEmail[ident.Email] = id
	return id, nil
}

// Delete removes an identity by ID. Deleting an unknown ID is a no-op.
func (s *MemoryService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ident, ok := s.byID[id]
	if !ok {
		return nil
	}
	delete(s.byID, id)
	delete(s.byEmail, ident.Email)
	return nil
}

// Lookup reports the identity stored under the given ID, if any.
func (s *MemoryService) Lookup(id string) (NewIdentity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ident, ok := s.byID[id]
	return ident, ok
}

// LookupEmail reports the identity ID registered for the given email, if any.
func (s *MemoryService) LookupEmail(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	return id, ok
}
