package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusboard/campusboard/internal/app/models"
	"github.com/campusboard/campusboard/internal/app/models/dto"
	"github.com/campusboard/campusboard/internal/app/repositories"
	"github.com/campusboard/campusboard/internal/pkg/apperrors"
	"github.com/campusboard/campusboard/internal/pkg/helpers"
)

// AnnouncementService defines the interface for announcement-related operations
type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, req *dto.AnnouncementRequest) (string, error)
	GetAllAnnouncements(ctx context.Context) ([]*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id string, req *dto.AnnouncementRequest) error
	DeleteAnnouncement(ctx context.Context, id string) error
}

// announcementServiceImpl implements the AnnouncementService interface
type announcementServiceImpl struct {
	announcementRepo *repositories.AnnouncementRepository
	now              func() time.Time
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
		now:              time.Now,
	}
}

// buildAnnouncement assembles an announcement from the flat request fields.
// The author block is a snapshot of the submitting user at this moment; it
// is never re-synced afterwards.
func buildAnnouncement(req *dto.AnnouncementRequest) *models.Announcement {
	imageURLs := req.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return &models.Announcement{
		Title:      req.Title,
		Body:       req.Body,
		Department: req.Department,
		Visibility: helpers.ParseCommaList(req.Visibility),
		ImageURLs:  imageURLs,
		Author: models.Author{
			ID:    req.AuthorID,
			Name:  req.AuthorName,
			Roles: helpers.ParseCommaList(req.Roles),
			College: models.CollegeSnapshot{
				ID:    req.CollegeID,
				Abbrv: req.CollegeAbbrv,
				Name:  req.CollegeName,
			},
		},
	}
}

// CreateAnnouncement creates an announcement with a server-assigned
// creation timestamp
func (s *announcementServiceImpl) CreateAnnouncement(ctx context.Context, req *dto.AnnouncementRequest) (string, error) {
	announcement := buildAnnouncement(req)
	announcement.CreatedAt = s.now().UTC()

	id, err := s.announcementRepo.CreateAnnouncement(ctx, announcement)
	if err != nil {
		return "", fmt.Errorf("error creating announcement: %w", err)
	}
	return id, nil
}

// GetAllAnnouncements retrieves all announcements, newest first
func (s *announcementServiceImpl) GetAllAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	announcements, err := s.announcementRepo.GetAllAnnouncements(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving announcements: %w", err)
	}
	return announcements, nil
}

// UpdateAnnouncement updates an existing announcement, leaving its creation
// timestamp untouched
func (s *announcementServiceImpl) UpdateAnnouncement(ctx context.Context, id string, req *dto.AnnouncementRequest) error {
	if id == "" {
		return fmt.Errorf("%w: announcement ID is required", apperrors.ErrValidationFailed)
	}

	announcement := buildAnnouncement(req)
	announcement.ID = id

	if err := s.announcementRepo.UpdateAnnouncement(ctx, announcement); err != nil {
		if errors.Is(err, apperrors.ErrAnnouncementNotFound) {
			return apperrors.ErrAnnouncementNotFound
		}
		return fmt.Errorf("error updating announcement: %w", err)
	}
	return nil
}

// DeleteAnnouncement deletes an announcement by ID
func (s *announcementServiceImpl) DeleteAnnouncement(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: announcement ID is required", apperrors.ErrValidationFailed)
	}

	if err := s.announcementRepo.DeleteAnnouncement(ctx, id); err != nil {
		return fmt.Errorf("error deleting announcement: %w", err)
	}
	return nil
}
