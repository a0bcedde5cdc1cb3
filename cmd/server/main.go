package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gatherhq/gather-api/internal/config"
	"github.com/gatherhq/gather-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration and wires the application. Any failure here
// (missing JWT secret, unreachable database, duplicate handler registration)
// refuses startup rather than limping along.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	db, err := setupDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, log); err != nil {
		return err
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		return err
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
