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

// AnnouncementRepository handles announcement document operations
type AnnouncementRepository struct {
	store docstore.Store
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(store docstore.Store) *AnnouncementRepository {
	return &AnnouncementRepository{store: store}
}

func (r *AnnouncementRepository) announcements() docstore.Collection {
	return r.store.Collection(collectionAnnouncements)
}

// CreateAnnouncement creates an announcement and returns its store-assigned ID
func (r *AnnouncementRepository) CreateAnnouncement(ctx context.Context, announcement *models.Announcement) (string, error) {
	doc := *announcement
	doc.ID = ""

	id, err := r.announcements().Add(ctx, doc)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating announcement document")
		return "", fmt.Errorf("error creating announcement: %w", err)
	}
	return id, nil
}

// GetAllAnnouncements retrieves all announcements, newest first
func (r *AnnouncementRepository) GetAllAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	docs, err := r.announcements().ListOrdered(ctx, "createdAt", docstore.Desc)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing announcement documents")
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}

	announcements := []*models.Announcement{}
	for _, doc := range docs {
		announcement := &models.Announcement{}
		if err := doc.DataTo(announcement); err != nil {
			return nil, fmt.Errorf("error decoding announcement %s: %w", doc.ID, err)
		}
		announcement.ID = doc.ID
		announcements = append(announcements, announcement)
	}
	return announcements, nil
}

// GetAnnouncementByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetAnnouncementByID(ctx context.Context, id string) (*models.Announcement, error) {
	doc, err := r.announcements().Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		logger.Error().Err(err).Str("announcementID", id).Msg("Error getting announcement document")
		return nil, fmt.Errorf("error getting announcement: %w", err)
	}

	announcement := &models.Announcement{}
	if err := doc.DataTo(announcement); err != nil {
		return nil, fmt.Errorf("error decoding announcement %s: %w", id, err)
	}
	announcement.ID = doc.ID
	return announcement, nil
}

// UpdateAnnouncement merges the editable fields into an existing
// announcement. The creation timestamp is never rewritten.
func (r *AnnouncementRepository) UpdateAnnouncement(ctx context.Context, announcement *models.Announcement) error {
	fields := map[string]interface{}{
		"title":      announcement.Title,
		"body":       announcement.Body,
		"department": announcement.Department,
		"visibility": announcement.Visibility,
		"imageUrls":  announcement.ImageURLs,
		"author":     announcement.Author,
	}

	if err := r.announcements().Update(ctx, announcement.ID, fields); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperrors.ErrAnnouncementNotFound
		}
		logger.Error().Err(err).Str("announcementID", announcement.ID).Msg("Error updating announcement document")
		return fmt.Errorf("error updating announcement: %w", err)
	}
	return nil
}

// DeleteAnnouncement deletes an announcement. Deleting a non-existent
// announcement is a no-op success.
func (r *AnnouncementRepository) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := r.announcements().Delete(ctx, id); err != nil {
		logger.Error().Err(err).Str("announcementID", id).Msg("Error deleting announcement document")
		return fmt.Errorf("error deleting announcement: %w", err)
	}
	return nil
}
