package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campusboard/campusboard/internal/app/controllers"
	appRepos "github.com/campusboard/campusboard/internal/app/repositories"
	appRoutes "github.com/campusboard/campusboard/internal/app/routes"
	appServices "github.com/campusboard/campusboard/internal/app/services"
	"github.com/campusboard/campusboard/internal/config"
	"github.com/campusboard/campusboard/internal/firebase"
	"github.com/campusboard/campusboard/internal/middleware"
	"github.com/campusboard/campusboard/internal/pkg/blobstore"
	"github.com/campusboard/campusboard/internal/pkg/docstore"
	"github.com/campusboard/campusboard/internal/pkg/identity"
	"github.com/campusboard/campusboard/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CollegeService         appServices.CollegeService
	ProgrammeService       appServices.ProgrammeService
	UserService            appServices.UserService
	AnnouncementService    appServices.AnnouncementService
	UploadService          appServices.UploadService
	CollegeController      *appControllers.CollegeController
	ProgrammeController    *appControllers.ProgrammeController
	UserController         *appControllers.UserController
	AnnouncementController *appControllers.AnnouncementController
	UploadController       *appControllers.UploadController
	Repos                  *appRepos.Repositories
	Store                  docstore.Store
	Identities             identity.Service
	BlobStorage            blobstore.Storage
	Clients                *firebase.Clients
	Logger                 zerolog.Logger
}

// Close releases the store backends held by the dependency container.
func (d *Dependencies) Close() {
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error().Err(err).Msg("Failed to close document store")
		}
	}
	if d.Clients != nil {
		d.Clients.Close()
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStores connects the configured store backends.
//
// The firebase driver talks to Firestore, Firebase Auth and Cloud Storage.
// The memory driver keeps everything in process, which is what local
// development and the test suite run against.
func SetupStores(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if cfg.UseMemoryStores() {
		lgr.Info().Msg("Using in-memory store backends")
		deps.Store = docstore.NewMemoryStore()
		deps.Identities = identity.NewMemoryService()
		deps.BlobStorage = blobstore.NewMemoryStorage()
		return deps, nil
	}

	lgr.Info().Str("projectId", cfg.Firebase.ProjectID).Msg("Connecting to Firebase")
	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize Firebase clients")
		return nil, fmt.Errorf("failed to initialize firebase clients: %w", err)
	}
	deps.Clients = clients
	deps.Store = docstore.NewFirestoreStore(clients.Firestore)
	deps.Identities = identity.NewFirebaseService(clients.Auth)

	bucketName := strings.TrimPrefix(cfg.Firebase.StorageBucket, "gs://")
	deps.BlobStorage, err = blobstore.NewGCSStorage(clients.Bucket, bucketName)
	if err != nil {
		clients.Close()
		lgr.Error().Err(err).Msg("Failed to initialize Cloud Storage bucket")
		return nil, fmt.Errorf("failed to initialize storage bucket: %w", err)
	}

	lgr.Info().Msg("Firebase connections established")
	return deps, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, deps *Dependencies) (*Dependencies, error) {
	deps.Repos = appRepos.NewRepositories(deps.Store)

	deps.CollegeService = appServices.NewCollegeService(deps.Repos.CollegeRepository, deps.Repos.ProgrammeRepository)
	deps.ProgrammeService = appServices.NewProgrammeService(deps.Repos.ProgrammeRepository, deps.Repos.CollegeRepository)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.CollegeRepository,
		deps.Repos.ProgrammeRepository,
		deps.Identities,
		appServices.CredentialPolicy{
			EmailDomain:     cfg.Auth.EmailDomain,
			InitialPassword: cfg.Auth.InitialPassword,
		},
	)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository)
	deps.UploadService = appServices.NewUploadService(deps.BlobStorage)

	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService)
	deps.ProgrammeController = appControllers.NewProgrammeController(deps.ProgrammeService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)
	deps.UploadController = appControllers.NewUploadController(deps.UploadService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.CollegeController,
		deps.ProgrammeController,
		deps.UserController,
		deps.AnnouncementController,
		deps.UploadController,
	)

	return router
}
