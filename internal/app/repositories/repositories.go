package repositories

import (
	"github.com/campusboard/campusboard/internal/pkg/docstore"
)

// Collection names in the document store. The announcement collection name
// is singular for historical reasons; existing data lives there.
const (
	collectionColleges      = "colleges"
	collectionProgrammes    = "programmes"
	collectionUsers         = "users"
	collectionAnnouncements = "announcement"
)

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository      *CollegeRepository
	ProgrammeRepository    *ProgrammeRepository
	UserRepository         *UserRepository
	AnnouncementRepository *AnnouncementRepository
}

// NewRepositories initializes all repositories over the given store
func NewRepositories(store docstore.Store) *Repositories {
	return &Repositories{
		CollegeRepository:      NewCollegeRepository(store),
		ProgrammeRepository:    NewProgrammeRepository(store),
		UserRepository:         NewUserRepository(store),
		AnnouncementRepository: NewAnnouncementRepository(store),
	}
}
