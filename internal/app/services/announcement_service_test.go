package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusboard/campusboard/internal/app/models/dto"
	"github.com/campusboard/campusboard/internal/pkg/apperrors"
)

func newAnnouncementService(env *testEnv) AnnouncementService {
	return NewAnnouncementService(env.repos.AnnouncementRepository)
}

func TestAnnouncementServiceCreateSetsTimestamp(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newAnnouncementService(env)

	frozen := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.(*announcementServiceImpl).now = func() time.Time { return frozen }

	id, err := svc.CreateAnnouncement(ctx, &dto.AnnouncementRequest{
		Title:      "Exam timetable",
		Body:       "Final exams start on June 2nd.",
		Department: "Registry",
		Visibility: "students, staff",
		AuthorID:   "u1",
		AuthorName: "Dean of Studies",
		Roles:      "admin",
	})
	require.NoError(t, err)

	announcement, err := env.repos.AnnouncementRepository.GetAnnouncementByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, frozen, announcement.CreatedAt)
	require.Equal(t, "Exam timetable", announcement.Title)
	require.Equal(t, []string{"students", "staff"}, announcement.Visibility)
	require.Equal(t, "Dean of Studies", announcement.Author.Name)
	require.Equal(t, []string{"admin"}, announcement.Author.Roles)
	require.NotNil(t, announcement.ImageURLs)
	require.Empty(t, announcement.ImageURLs, "no images serialises as an empty list")
}

func TestAnnouncementServiceListNewestFirst(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newAnnouncementService(env)

	impl := svc.(*announcementServiceImpl)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	titles := []string{"First", "Second", "Third"}
	for i, title := range titles {
		tick := base.Add(time.Duration(i) * time.Hour)
		impl.now = func() time.Time { return tick }
		_, err := svc.CreateAnnouncement(ctx, &dto.AnnouncementRequest{Title: title})
		require.NoError(t, err)
	}

	announcements, err := svc.GetAllAnnouncements(ctx)
	require.NoError(t, err)
	require.Len(t, announcements, 3)
	require.Equal(t, "Third", announcements[0].Title)
	require.Equal(t, "Second", announcements[1].Title)
	require.Equal(t, "First", announcements[2].Title)
}

func TestAnnouncementServiceUpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newAnnouncementService(env)

	frozen := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.(*announcementServiceImpl).now = func() time.Time { return frozen }

	id, err := svc.CreateAnnouncement(ctx, &dto.AnnouncementRequest{Title: "Draft", Body: "v1"})
	require.NoError(t, err)

	err = svc.UpdateAnnouncement(ctx, id, &dto.AnnouncementRequest{
		Title:     "Published",
		Body:      "v2",
		ImageURLs: []string{"https://cdn.example.com/a.png"},
	})
	require.NoError(t, err)

	announcement, err := env.repos.AnnouncementRepository.GetAnnouncementByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Published", announcement.Title)
	require.Equal(t, "v2", announcement.Body)
	require.Equal(t, []string{"https://cdn.example.com/a.png"}, announcement.ImageURLs)
	require.Equal(t, frozen, announcement.CreatedAt, "editing never touches the creation time")
}

func TestAnnouncementServiceUpdateMissing(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newAnnouncementService(env)

	err := svc.UpdateAnnouncement(ctx, "ghost", &dto.AnnouncementRequest{Title: "X"})
	require.ErrorIs(t, err, apperrors.ErrAnnouncementNotFound)
}

func TestAnnouncementServiceDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newAnnouncementService(env)

	id, err := svc.CreateAnnouncement(ctx, &dto.AnnouncementRequest{Title: "Gone soon"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAnnouncement(ctx, id))
	require.NoError(t, svc.DeleteAnnouncement(ctx, id), "repeat delete is a no-op")

	announcements, err := svc.GetAllAnnouncements(ctx)
	require.NoError(t, err)
	require.Empty(t, announcements)
}
