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

// CollegeRepository handles college document operations
type CollegeRepository struct {
	store docstore.Store
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(store docstore.Store) *CollegeRepository {
	return &CollegeRepository{store: store}
}

func (r *CollegeRepository) colleges() docstore.Collection {
	return r.store.Collection(collectionColleges)
}

func (r *CollegeRepository) programmes(collegeID string) docstore.Collection {
	return r.store.Collection(collectionColleges, collegeID, collectionProgrammes)
}

// CreateCollege creates a new college and returns its store-assigned ID
func (r *CollegeRepository) CreateCollege(ctx context.Context, college *models.College) (string, error) {
	doc := *college
	doc.ID = "" // the ID lives on the document reference, never in the body

	id, err := r.colleges().Add(ctx, doc)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating college document")
		return "", fmt.Errorf("error creating college: %w", err)
	}
	return id, nil
}

// GetCollegeByID retrieves a college by ID
func (r *CollegeRepository) GetCollegeByID(ctx context.Context, id string) (*models.College, error) {
	doc, err := r.colleges().Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperrors.ErrCollegeNotFound
		}
		logger.Error().Err(err).Str("collegeID", id).Msg("Error getting college document")
		return nil, fmt.Errorf("error getting college: %w", err)
	}

	college := &models.College{}
	if err := doc.DataTo(college); err != nil {
		return nil, fmt.Errorf("error decoding college %s: %w", id, err)
	}
	college.ID = doc.ID
	return college, nil
}

// GetAllColleges retrieves all colleges ordered ascending by name
func (r *CollegeRepository) GetAllColleges(ctx context.Context) ([]*models.College, error) {
	docs, err := r.colleges().ListOrdered(ctx, "name", docstore.Asc)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing college documents")
		return nil, fmt.Errorf("error listing colleges: %w", err)
	}

	colleges := []*models.College{}
	for _, doc := range docs {
		college := &models.College{}
		if err := doc.DataTo(college); err != nil {
			return nil, fmt.Errorf("error decoding college %s: %w", doc.ID, err)
		}
		college.ID = doc.ID
		colleges = append(colleges, college)
	}
	return colleges, nil
}

// UpdateCollege merges the name and abbreviation into an existing college
func (r *CollegeRepository) UpdateCollege(ctx context.Context, college *models.College) error {
	fields := map[string]interface{}{
		"name":  college.Name,
		"abbrv": college.Abbrv,
	}

	if err := r.colleges().Update(ctx, college.ID, fields); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperrors.ErrCollegeNotFound
		}
		logger.Error().Err(err).Str("collegeID", college.ID).Msg("Error updating college document")
		return fmt.Errorf("error updating college: %w", err)
	}
	return nil
}

// DeleteCollegeCascade deletes a college and every programme nested under it
// in a single atomic batch. Either all documents disappear or none do.
// Deleting a non-existent college is a no-op success.
func (r *CollegeRepository) DeleteCollegeCascade(ctx context.Context, id string) error {
	programmes := r.programmes(id)

	// If listing fails, abort before any delete is staged.
	docs, err := programmes.List(ctx)
	if err != nil {
		logger.Error().Err(err).Str("collegeID", id).Msg("Error listing programmes for cascade delete")
		return fmt.Errorf("error listing programmes: %w", err)
	}

	batch := r.store.Batch()
	for _, doc := range docs {
		batch.Delete(programmes, doc.ID)
	}
	batch.Delete(r.colleges(), id)

	if err := batch.Commit(ctx); err != nil {
		logger.Error().Err(err).Str("collegeID", id).Int("programmes", len(docs)).Msg("Error committing cascade delete batch")
		return fmt.Errorf("error deleting college: %w", err)
	}

	logger.Info().Str("collegeID", id).Int("programmes", len(docs)).Msg("College deleted with programmes")
	return nil
}
