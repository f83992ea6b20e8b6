// Package main implements the entry point for the ShareIt API server, a
// small item-sharing backend where users register, list items they own, and
// search items by keyword.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/practicum/shareit-api/internal/config"
	"github.com/practicum/shareit-api/internal/platform/logger"
)

// main initializes configuration, sets up logging, wires the in-memory
// stores and services, and starts the HTTP server.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"identity_header", cfg.Server.IdentityHeader)

	return newApplication(cfg, appLogger)
}
