package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusboard/campusboard/internal/app/models"
	"github.com/campusboard/campusboard/internal/pkg/apperrors"
	"github.com/campusboard/campusboard/internal/pkg/docstore"
	"github.com/campusboard/campusboard/internal/pkg/logger"
)

// UserRepository handles user document operations
type UserRepository struct {
	store docstore.Store
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store docstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) users() docstore.Collection {
	return r.store.Collection(collectionUsers)
}

// CreateUser writes a user document under the given ID. The ID is the auth
// identity's ID, not store-assigned; pairing the two is the caller's contract.
func (r *UserRepository) CreateUser(ctx context.Context, id string, user *models.User) error {
	doc := *user
	doc.ID = ""

	if err := r.users().Set(ctx, id, doc); err != nil {
		logger.Error().Err(err).Str("userID", id).Msg("Error creating user document")
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := r.users().Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", id).Msg("Error getting user document")
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	user := &models.User{}
	if err := doc.DataTo(user); err != nil {
		return nil, fmt.Errorf("error decoding user %s: %w", id, err)
	}
	user.ID = doc.ID
	return user, nil
}

// GetAllUsers retrieves all users ordered ascending by full name
func (r *UserRepository) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	docs, err := r.users().ListOrdered(ctx, "fullName", docstore.Asc)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing user documents")
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	users := []*models.User{}
	for _, doc := range docs {
		user := &models.User{}
		if err := doc.DataTo(user); err != nil {
			return nil, fmt.Errorf("error decoding user %s: %w", doc.ID, err)
		}
		user.ID = doc.ID
		users = append(users, user)
	}
	return users, nil
}

// DeleteUser deletes a user document. Deleting a non-existent user is a
// no-op success.
func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	if err := r.users().Delete(ctx, id); err != nil {
		logger.Error().Err(err).Str("userID", id).Msg("Error deleting user document")
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
