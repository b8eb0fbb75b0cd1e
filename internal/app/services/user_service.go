package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusboard/campusboard/internal/app/models"
	"github.com/campusboard/campusboard/internal/app/models/dto"
	"github.com/campusboard/campusboard/internal/app/repositories"
	"github.com/campusboard/campusboard/internal/pkg/apperrors"
	"github.com/campusboard/campusboard/internal/pkg/helpers"
	"github.com/campusboard/campusboard/internal/pkg/identity"
	"github.com/campusboard/campusboard/internal/pkg/logger"
)

// CredentialPolicy decides the login credentials issued to admin-created
// accounts. The email is always derived from the registration number.
type CredentialPolicy struct {
	EmailDomain     string
	InitialPassword string
}

// Email derives the deterministic login email for a registration number.
func (p CredentialPolicy) Email(regNo string) string {
	return fmt.Sprintf("%s@%s", regNo, p.EmailDomain)
}

// UserService defines the interface for user-related operations
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (string, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo      *repositories.UserRepository
	collegeRepo   *repositories.CollegeRepository
	programmeRepo *repositories.ProgrammeRepository
	identities    identity.Service
	credentials   CredentialPolicy
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo *repositories.UserRepository,
	collegeRepo *repositories.CollegeRepository,
	programmeRepo *repositories.ProgrammeRepository,
	identities identity.Service,
	credentials CredentialPolicy,
) UserService {
	return &userServiceImpl{
		userRepo:      userRepo,
		collegeRepo:   collegeRepo,
		programmeRepo: programmeRepo,
		identities:    identities,
		credentials:   credentials,
	}
}

// CreateUser creates an auth identity and a user document as a single
// logical unit: afterwards either both exist, sharing one ID, or neither
// does. The identity is created first because it is the step most likely
// to fail (duplicate email) and its ID becomes the document ID; a failed
// document write triggers a compensating identity delete.
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (string, error) {
	if req.RegNo == "" {
		return "", fmt.Errorf("%w: registration number is required", apperrors.ErrValidationFailed)
	}

	college, err := s.collegeRepo.GetCollegeByID(ctx, req.CollegeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCollegeNotFound) {
			return "", apperrors.ErrCollegeNotFound
		}
		return "", fmt.Errorf("error resolving college: %w", err)
	}

	// The programme reference is soft: an unknown programme ID is treated
	// as "no programme", not an error.
	var programme models.ProgrammeSnapshot
	if req.ProgrammeID != "" {
		p, err := s.programmeRepo.GetProgrammeByID(ctx, req.CollegeID, req.ProgrammeID)
		switch {
		case err == nil:
			programme = p.Snapshot()
		case errors.Is(err, apperrors.ErrProgrammeNotFound):
			// Left empty.
		default:
			return "", fmt.Errorf("error resolving programme: %w", err)
		}
	}

	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	email := s.credentials.Email(req.RegNo)
	id, err := s.identities.Create(ctx, identity.NewIdentity{
		Email:       email,
		Password:    s.credentials.InitialPassword,
		DisplayName: req.FullName,
		// Admin-created accounts are marked verified up front.
		EmailVerified: true,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return "", apperrors.ErrEmailAlreadyExists
		}
		return "", fmt.Errorf("%w: %v", apperrors.ErrIdentityCreation, err)
	}

	user := &models.User{
		FullName:      req.FullName,
		RegNo:         req.RegNo,
		College:       college.Snapshot(),
		Programme:     programme,
		StartDate:     startDate,
		EndDate:       endDate,
		Roles:         helpers.ParseCommaList(req.Roles),
		ProfilePicURL: req.ProfilePicURL,
	}

	if err := s.userRepo.CreateUser(ctx, id, user); err != nil {
		// Compensate: remove the identity so no half-created account
		// remains. If the compensation itself fails we accept a rare
		// orphaned identity and still surface the original error.
		if delErr := s.identities.Delete(ctx, id); delErr != nil {
			logger.Error().Err(delErr).Str("userID", id).Str("email", email).
				Msg("Failed to delete auth identity after user write failure")
		}
		return "", fmt.Errorf("error persisting user: %w", err)
	}

	logger.Info().Str("userID", id).Str("email", email).Msg("User and auth identity created")
	return id, nil
}

// GetAllUsers retrieves all users ascending by full name
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// DeleteUser removes the user document and then its paired auth identity.
// The identity delete is best-effort: a failure is logged and the document
// delete still counts, leaving an identity an operator can clean up.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: user ID is required", apperrors.ErrValidationFailed)
	}

	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if err := s.identities.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Str("userID", id).Msg("Failed to delete auth identity for deleted user")
	}
	return nil
}
