// Package main implements the entry point for the contacts API server,
// a REST backend for per-user contact and address management.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/contactsapp/contacts-api/internal/config"
	"github.com/contactsapp/contacts-api/internal/platform/logger"
	"github.com/contactsapp/contacts-api/internal/platform/postgres"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to the
// database and applies pending migrations.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logObj, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, logObj)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	slog.Info("Database migrations applied")

	return newApplication(cfg, logObj, db), nil
}
