package main

import (
	"os"

	"github.com/campusboard/campusboard/internal/pkg/logger"
	"github.com/campusboard/campusboard/internal/server"
)

// @title CampusBoard Admin API
// @version 1.0
// @description Administration API for campus colleges, programmes, users and announcements

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
