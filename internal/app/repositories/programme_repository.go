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

// ProgrammeRepository handles programme document operations. Programmes
// live in a sub-collection under their owning college.
type ProgrammeRepository struct {
	store docstore.Store
}

// NewProgrammeRepository creates a new ProgrammeRepository
func NewProgrammeRepository(store docstore.Store) *ProgrammeRepository {
	return &ProgrammeRepository{store: store}
}

func (r *ProgrammeRepository) programmes(collegeID string) docstore.Collection {
	return r.store.Collection(collectionColleges, collegeID, collectionProgrammes)
}

// CreateProgramme creates a programme under the given college
func (r *ProgrammeRepository) CreateProgramme(ctx context.Context, collegeID string, programme *models.Programme) (string, error) {
	doc := *programme
	doc.ID = ""
	doc.CollegeID = "" // carried by the document path

	id, err := r.programmes(collegeID).Add(ctx, doc)
	if err != nil {
		logger.Error().Err(err).Str("collegeID", collegeID).Msg("Error creating programme document")
		return "", fmt.Errorf("error creating programme: %w", err)
	}
	return id, nil
}

// GetProgrammeByID retrieves a programme under the given college
func (r *ProgrammeRepository) GetProgrammeByID(ctx context.Context, collegeID, programmeID string) (*models.Programme, error) {
	doc, err := r.programmes(collegeID).Get(ctx, programmeID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperrors.ErrProgrammeNotFound
		}
		logger.Error().Err(err).Str("collegeID", collegeID).Str("programmeID", programmeID).Msg("Error getting programme document")
		return nil, fmt.Errorf("error getting programme: %w", err)
	}

	programme := &models.Programme{}
	if err := doc.DataTo(programme); err != nil {
		return nil, fmt.Errorf("error decoding programme %s: %w", programmeID, err)
	}
	programme.ID = doc.ID
	programme.CollegeID = collegeID
	return programme, nil
}

// GetProgrammesByCollege retrieves all programmes under a college. The store
// guarantees no order; callers sort as needed.
func (r *ProgrammeRepository) GetProgrammesByCollege(ctx context.Context, collegeID string) ([]*models.Programme, error) {
	docs, err := r.programmes(collegeID).List(ctx)
	if err != nil {
		logger.Error().Err(err).Str("collegeID", collegeID).Msg("Error listing programme documents")
		return nil, fmt.Errorf("error listing programmes: %w", err)
	}

	programmes := []*models.Programme{}
	for _, doc := range docs {
		programme := &models.Programme{}
		if err := doc.DataTo(programme); err != nil {
			return nil, fmt.Errorf("error decoding programme %s: %w", doc.ID, err)
		}
		programme.ID = doc.ID
		programme.CollegeID = collegeID
		programmes = append(programmes, programme)
	}
	return programmes, nil
}

// UpdateProgramme merges the programme fields into an existing document
func (r *ProgrammeRepository) UpdateProgramme(ctx context.Context, collegeID string, programme *models.Programme) error {
	fields := map[string]interface{}{
		"abbrv":       programme.Abbrv,
		"name":        programme.Name,
		"years":       programme.Years,
		"duration":    programme.Duration,
		"description": programme.Description,
	}

	if err := r.programmes(collegeID).Update(ctx, programme.ID, fields); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperrors.ErrProgrammeNotFound
		}
		logger.Error().Err(err).Str("collegeID", collegeID).Str("programmeID", programme.ID).Msg("Error updating programme document")
		return fmt.Errorf("error updating programme: %w", err)
	}
	return nil
}

// DeleteProgramme deletes a programme. Deleting a non-existent programme is
// a no-op success.
func (r *ProgrammeRepository) DeleteProgramme(ctx context.Context, collegeID, programmeID string) error {
	if err := r.programmes(collegeID).Delete(ctx, programmeID); err != nil {
		logger.Error().Err(err).Str("collegeID", collegeID).Str("programmeID", programmeID).Msg("Error deleting programme document")
		return fmt.Errorf("error deleting programme: %w", err)
	}
	return nil
}
