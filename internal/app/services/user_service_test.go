package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusboard/campusboard/internal/app/models/dto"
	"github.com/campusboard/campusboard/internal/app/repositories"
	"github.com/campusboard/campusboard/internal/pkg/apperrors"
	"github.com/campusboard/campusboard/internal/pkg/identity"
)

var testPolicy = CredentialPolicy{EmailDomain: "college.edu", InitialPassword: "campus"}

func newUserService(env *testEnv) UserService {
	return NewUserService(
		env.repos.UserRepository,
		env.repos.CollegeRepository,
		env.repos.ProgrammeRepository,
		env.identities,
		testPolicy,
	)
}

func TestCredentialPolicyEmail(t *testing.T) {
	require.Equal(t, "ENG2024001@college.edu", testPolicy.Email("ENG2024001"))
}

func TestUserServiceCreatePairsIdentityAndDocument(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newUserService(env)

	collegeID := env.mustCreateCollege(t, "College of Engineering", "ENG")
	programmeID := env.mustCreateProgramme(t, collegeID, "Mechanical Engineering", 5)

	id, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		FullName:    "Ada Lovelace",
		RegNo:       "ENG2024001",
		CollegeID:   collegeID,
		ProgrammeID: programmeID,
		StartDate:   "2024-09-01",
		EndDate:     "2029-06-30",
		Roles:       "student, class-rep",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// The identity carries the derived credentials.
	ident, ok := env.identities.Lookup(id)
	require.True(t, ok)
	require.Equal(t, "ENG2024001@college.edu", ident.Email)
	require.Equal(t, "campus", ident.Password)
	require.Equal(t, "Ada Lovelace", ident.DisplayName)
	require.True(t, ident.EmailVerified)

	// The document lives under the identity's ID with the snapshots filled in.
	user, err := env.repos.UserRepository.GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", user.FullName)
	require.Equal(t, collegeID, user.College.ID)
	require.Equal(t, "ENG", user.College.Abbrv)
	require.Equal(t, "Mechanical Engineering", user.Programme.Name)
	require.Equal(t, 5, user.Programme.Years)
	require.Equal(t, []string{"student", "class-rep"}, user.Roles)
	require.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), user.StartDate)
}

func TestUserServiceCreateUnknownProgrammeIsSoft(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newUserService(env)

	collegeID := env.mustCreateCollege(t, "College of Engineering", "ENG")

	id, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		FullName:    "Grace Hopper",
		RegNo:       "ENG2024002",
		CollegeID:   collegeID,
		ProgrammeID: "no-such-programme",
	})
	require.NoError(t, err)

	user, err := env.repos.UserRepository.GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Empty(t, user.Programme.Name)
	require.Zero(t, user.Programme.Years)
}

func TestUserServiceCreateMissingCollege(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newUserService(env)

	_, err := svc.CreateUser(ctx, &dto.CreateUserRequest{RegNo: "ENG2024003", CollegeID: "ghost"})
	require.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
	_, taken := env.identities.LookupEmail("ENG2024003@college.edu")
	require.False(t, taken, "no identity is created when validation fails")
}

func TestUserServiceCreateMissingRegNo(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newUserService(env)

	_, err := svc.CreateUser(ctx, &dto.CreateUserRequest{CollegeID: "whatever"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUserServiceCreateBadDate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newUserService(env)

	collegeID := env.mustCreateCollege(t, "College of Engineering", "ENG")

	_, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		RegNo:     "ENG2024004",
		CollegeID: collegeID,
		StartDate: "not-a-date",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	_, taken := env.identities.LookupEmail("ENG2024004@college.edu")
	require.False(t, taken)
}

func TestUserServiceCreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newUserService(env)

	collegeID := env.mustCreateCollege(t, "College of Engineering", "ENG")

	req := &dto.CreateUserRequest{FullName: "First", RegNo: "ENG2024005", CollegeID: collegeID}
	_, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)

	req.FullName = "Second"
	_, err = svc.CreateUser(ctx, req)
	require.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "First", users[0].FullName)
}

func TestUserServiceCreateCompensatesFailedWrite(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	collegeID := env.mustCreateCollege(t, "College of Engineering", "ENG")

	broken := &faultStore{Store: env.store, setErrOn: "users", setErr: errInjected}
	repos := repositories.NewRepositories(broken)
	svc := NewUserService(repos.UserRepository, repos.CollegeRepository, repos.ProgrammeRepository, env.identities, testPolicy)

	_, err := svc.CreateUser(ctx, &dto.CreateUserRequest{RegNo: "ENG2024006", CollegeID: collegeID})
	require.ErrorIs(t, err, errInjected)

	// The compensating delete removed the identity; neither half exists.
	_, taken := env.identities.LookupEmail("ENG2024006@college.edu")
	require.False(t, taken)
	users, err := env.repos.UserRepository.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestUserServiceCreateSurfacesWriteErrorWhenCompensationFails(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	collegeID := env.mustCreateCollege(t, "College of Engineering", "ENG")

	broken := &faultStore{Store: env.store, setErrOn: "users", setErr: errInjected}
	repos := repositories.NewRepositories(broken)
	identities := &faultIdentity{MemoryService: env.identities, deleteErr: errInjected}
	svc := NewUserService(repos.UserRepository, repos.CollegeRepository, repos.ProgrammeRepository, identities, testPolicy)

	_, err := svc.CreateUser(ctx, &dto.CreateUserRequest{RegNo: "ENG2024007", CollegeID: collegeID})
	require.ErrorIs(t, err, errInjected, "the original write error wins over the compensation error")

	// The orphaned identity is accepted and left for operator cleanup.
	_, taken := env.identities.LookupEmail("ENG2024007@college.edu")
	require.True(t, taken)
}

func TestUserServiceGetAllOrdersByFullName(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newUserService(env)

	collegeID := env.mustCreateCollege(t, "College of Engineering", "ENG")

	for _, u := range []struct{ name, regNo string }{
		{"Charlie Chaplin", "ENG2024010"},
		{"Ada Lovelace", "ENG2024011"},
		{"Blaise Pascal", "ENG2024012"},
	} {
		_, err := svc.CreateUser(ctx, &dto.CreateUserRequest{FullName: u.name, RegNo: u.regNo, CollegeID: collegeID})
		require.NoError(t, err)
	}

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "Ada Lovelace", users[0].FullName)
	require.Equal(t, "Blaise Pascal", users[1].FullName)
	require.Equal(t, "Charlie Chaplin", users[2].FullName)
}

func TestUserServiceDeleteRemovesBothHalves(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newUserService(env)

	collegeID := env.mustCreateCollege(t, "College of Engineering", "ENG")
	id, err := svc.CreateUser(ctx, &dto.CreateUserRequest{FullName: "Ada", RegNo: "ENG2024020", CollegeID: collegeID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, id))

	_, err = env.repos.UserRepository.GetUserByID(ctx, id)
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
	_, ok := env.identities.Lookup(id)
	require.False(t, ok)
}

func TestUserServiceDeleteIdentityFailureIsBestEffort(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	collegeID := env.mustCreateCollege(t, "College of Engineering", "ENG")
	setup := newUserService(env)
	id, err := setup.CreateUser(ctx, &dto.CreateUserRequest{FullName: "Ada", RegNo: "ENG2024021", CollegeID: collegeID})
	require.NoError(t, err)

	identities := &faultIdentity{MemoryService: env.identities, deleteErr: errInjected}
	svc := NewUserService(env.repos.UserRepository, env.repos.CollegeRepository, env.repos.ProgrammeRepository, identities, testPolicy)

	require.NoError(t, svc.DeleteUser(ctx, id), "document delete counts even when the identity delete fails")

	_, err = env.repos.UserRepository.GetUserByID(ctx, id)
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

var _ identity.Service = (*faultIdentity)(nil)
