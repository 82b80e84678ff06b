// Package main implements the entry point for the TaskVault server,
// a task management API with cookie-based session authentication
// backed by Postgres and a Redis session cache.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/pmendes/taskvault/internal/config"
	"github.com/pmendes/taskvault/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run loads configuration, wires the application and hands control to the
// server loop. Kept separate from main so initialization failures surface
// as ordinary errors.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx := context.Background()

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(ctx, db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := setupRedis(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up redis: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db, redisClient)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
