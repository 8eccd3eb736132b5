package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/eduverify/internship-portal/internal/pkg/logger"
	"github.com/eduverify/internship-portal/internal/server"
)

// @title Internship Portal API
// @version 1.0
// @description Self-service verification and document download API for internship students

// @contact.name API Support
// @contact.email support@eduverify.org

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

func main() {
	// Local development keeps its settings in a .env file; a missing
	// file is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
