package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/campusboard/campusboard/internal/app/models"
	"github.com/campusboard/campusboard/internal/app/models/dto"
	"github.com/campusboard/campusboard/internal/app/repositories"
	"github.com/campusboard/campusboard/internal/pkg/apperrors"
)

// CollegeService defines the interface for college-related operations
type CollegeService interface {
	CreateCollege(ctx context.Context, college *models.College) (string, error)
	GetAllColleges(ctx context.Context) ([]*models.College, error)
	InspectCollege(ctx context.Context, id string) (*dto.CollegeInspection, error)
	UpdateCollege(ctx context.Context, college *models.College) error
	DeleteCollege(ctx context.Context, id string) error
}

// collegeServiceImpl implements the CollegeService interface
type collegeServiceImpl struct {
	collegeRepo   *repositories.CollegeRepository
	programmeRepo *repositories.ProgrammeRepository
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeRepo *repositories.CollegeRepository, programmeRepo *repositories.ProgrammeRepository) CollegeService {
	return &collegeServiceImpl{
		collegeRepo:   collegeRepo,
		programmeRepo: programmeRepo,
	}
}

// CreateCollege creates a new college
func (s *collegeServiceImpl) CreateCollege(ctx context.Context, college *models.College) (string, error) {
	id, err := s.collegeRepo.CreateCollege(ctx, college)
	if err != nil {
		return "", fmt.Errorf("error creating college: %w", err)
	}
	return id, nil
}

// GetAllColleges retrieves all colleges ascending by name
func (s *collegeServiceImpl) GetAllColleges(ctx context.Context) ([]*models.College, error) {
	colleges, err := s.collegeRepo.GetAllColleges(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving colleges: %w", err)
	}
	return colleges, nil
}

// InspectCollege reports the state of a college and its programmes, even
// when the college document itself is gone. Useful for chasing orphaned
// programme sub-collections.
func (s *collegeServiceImpl) InspectCollege(ctx context.Context, id string) (*dto.CollegeInspection, error) {
	inspection := &dto.CollegeInspection{CollegeID: id}

	college, err := s.collegeRepo.GetCollegeByID(ctx, id)
	switch {
	case err == nil:
		inspection.CollegeExists = true
		inspection.CollegeData = college
	case errors.Is(err, apperrors.ErrCollegeNotFound):
		// Reported in the payload, not as a failure.
	default:
		return nil, fmt.Errorf("error inspecting college: %w", err)
	}

	programmes, err := s.programmeRepo.GetProgrammesByCollege(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error inspecting programmes: %w", err)
	}

	inspection.Programmes = make([]models.Programme, 0, len(programmes))
	for _, p := range programmes {
		inspection.Programmes = append(inspection.Programmes, *p)
	}
	inspection.ProgrammesCount = len(inspection.Programmes)
	sortProgrammesByName(inspection.Programmes)
	return inspection, nil
}

// UpdateCollege updates an existing college
func (s *collegeServiceImpl) UpdateCollege(ctx context.Context, college *models.College) error {
	if college.ID == "" {
		return fmt.Errorf("%w: college ID is required", apperrors.ErrValidationFailed)
	}

	if err := s.collegeRepo.UpdateCollege(ctx, college); err != nil {
		if errors.Is(err, apperrors.ErrCollegeNotFound) {
			return apperrors.ErrCollegeNotFound
		}
		return fmt.Errorf("error updating college: %w", err)
	}
	return nil
}

// DeleteCollege deletes a college and all its programmes as one atomic unit.
// Users referencing the college keep their denormalized snapshot; there is
// deliberately no cascade to user documents.
func (s *collegeServiceImpl) DeleteCollege(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: college ID is required", apperrors.ErrValidationFailed)
	}

	if err := s.collegeRepo.DeleteCollegeCascade(ctx, id); err != nil {
		return fmt.Errorf("error deleting college: %w", err)
	}
	return nil
}

// sortProgrammesByName orders programmes ascending by name with a plain
// byte-wise compare, treating a missing name as the empty string.
func sortProgrammesByName(programmes []models.Programme) {
	sort.SliceStable(programmes, func(i, j int) bool {
		return programmes[i].Name < programmes[j].Name
	})
}
