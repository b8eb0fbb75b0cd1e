package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/campusboard/campusboard/internal/app/models"
	"github.com/campusboard/campusboard/internal/app/repositories"
	"github.com/campusboard/campusboard/internal/pkg/apperrors"
)

// ProgrammeService defines the interface for programme-related operations
type ProgrammeService interface {
	CreateProgramme(ctx context.Context, collegeID string, programme *models.Programme) (string, error)
	GetProgrammesByCollege(ctx context.Context, collegeID string) ([]*models.Programme, error)
	UpdateProgramme(ctx context.Context, collegeID string, programme *models.Programme) error
	DeleteProgramme(ctx context.Context, collegeID, programmeID string) error
}

// programmeServiceImpl implements the ProgrammeService interface
type programmeServiceImpl struct {
	programmeRepo *repositories.ProgrammeRepository
	collegeRepo   *repositories.CollegeRepository
}

// NewProgrammeService creates a new programme service instance
func NewProgrammeService(programmeRepo *repositories.ProgrammeRepository, collegeRepo *repositories.CollegeRepository) ProgrammeService {
	return &programmeServiceImpl{
		programmeRepo: programmeRepo,
		collegeRepo:   collegeRepo,
	}
}

// CreateProgramme creates a programme under the given college
func (s *programmeServiceImpl) CreateProgramme(ctx context.Context, collegeID string, programme *models.Programme) (string, error) {
	if collegeID == "" {
		return "", fmt.Errorf("%w: college ID is required", apperrors.ErrValidationFailed)
	}
	if programme.Years < 0 {
		return "", fmt.Errorf("%w: years cannot be negative", apperrors.ErrValidationFailed)
	}

	id, err := s.programmeRepo.CreateProgramme(ctx, collegeID, programme)
	if err != nil {
		return "", fmt.Errorf("error creating programme: %w", err)
	}
	return id, nil
}

// GetProgrammesByCollege lists the programmes of a college ascending by
// name. The store gives no order for sub-collections, so the sort happens
// here; a missing name compares as the empty string.
func (s *programmeServiceImpl) GetProgrammesByCollege(ctx context.Context, collegeID string) ([]*models.Programme, error) {
	if _, err := s.collegeRepo.GetCollegeByID(ctx, collegeID); err != nil {
		if errors.Is(err, apperrors.ErrCollegeNotFound) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error checking college: %w", err)
	}

	programmes, err := s.programmeRepo.GetProgrammesByCollege(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programmes: %w", err)
	}

	sort.SliceStable(programmes, func(i, j int) bool {
		return programmes[i].Name < programmes[j].Name
	})
	return programmes, nil
}

// UpdateProgramme updates an existing programme
func (s *programmeServiceImpl) UpdateProgramme(ctx context.Context, collegeID string, programme *models.Programme) error {
	if collegeID == "" || programme.ID == "" {
		return fmt.Errorf("%w: college and programme IDs are required", apperrors.ErrValidationFailed)
	}
	if programme.Years < 0 {
		return fmt.Errorf("%w: years cannot be negative", apperrors.ErrValidationFailed)
	}

	if err := s.programmeRepo.UpdateProgramme(ctx, collegeID, programme); err != nil {
		if errors.Is(err, apperrors.ErrProgrammeNotFound) {
			return apperrors.ErrProgrammeNotFound
		}
		return fmt.Errorf("error updating programme: %w", err)
	}
	return nil
}

// DeleteProgramme deletes a programme by ID
func (s *programmeServiceImpl) DeleteProgramme(ctx context.Context, collegeID, programmeID string) error {
	if collegeID == "" || programmeID == "" {
		return fmt.Errorf("%w: college and programme IDs are required", apperrors.ErrValidationFailed)
	}

	if err := s.programmeRepo.DeleteProgramme(ctx, collegeID, programmeID); err != nil {
		return fmt.Errorf("error deleting programme: %w", err)
	}
	return nil
}
