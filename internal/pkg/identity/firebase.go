package identity

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/campusboard/campusboard/internal/pkg/apperrors"
	"github.com/campusboard/campusboard/internal/pkg/logger"
)

// FirebaseService implements Service on top of Firebase Authentication.
type FirebaseService struct {
	client *auth.Client
}

// NewFirebaseService creates a Service backed by the given Firebase Auth client.
func NewFirebaseService(client *auth.Client) *FirebaseService {
	return &FirebaseService{client: client}
}

// Create registers a new Firebase Auth user and returns its UID.
func (s *FirebaseService) Create(ctx context.Context, ident NewIdentity) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(ident.Email).
		Password(ident.Password).
		DisplayName(ident.DisplayName).
		EmailVerified(ident.EmailVerified)

	record, err := s.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", apperrors.ErrEmailAlreadyExists
		}
		return "", fmt.Errorf("error creating auth user: %w", err)
	}

	logger.Info().Str("email", ident.Email).Str("uid", record.UID).Msg("Created auth user")
	return record.UID, nil
}

// Delete removes a Firebase Auth user by UID.
func (s *FirebaseService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("error deleting auth user %s: %w", id, err)
	}
	return nil
}
