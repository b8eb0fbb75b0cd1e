package identity

import "context"

// NewIdentity carries the fields required to create a login identity.
type NewIdentity struct {
	Email         string
	Password      string
	DisplayName   string
	EmailVerified bool
}

// Service manages login identities in the external auth system. Identities
// are independent of the document store; the workflow layer is responsible
// for keeping the two consistent.
type Service interface {
	// Create registers a new identity and returns its ID.
	// Returns apperrors.ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, ident NewIdentity) (string, error)

	// Delete removes an identity by ID. Used both for the compensating
	// action after a failed user write and for user deletion.
	Delete(ctx context.Context, id string) error
}
