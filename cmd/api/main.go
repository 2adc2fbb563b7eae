package main

import (
	"os"

	"github.com/oguzk/learnhub/internal/pkg/logger" // Still needed for initial error logging
	"github.com/oguzk/learnhub/internal/server"
)

// @title LearnHub API
// @version 1.0
// @description API for the LearnHub online learning platform
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@learnhub.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3001
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		// Use the default logger setup by the logger package's init
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
