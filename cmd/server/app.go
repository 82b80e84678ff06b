package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pmendes/taskvault/internal/config"
	"github.com/pmendes/taskvault/internal/platform/cache"
	"github.com/pmendes/taskvault/internal/platform/postgres"
	"github.com/pmendes/taskvault/internal/service"
	"github.com/pmendes/taskvault/internal/service/auth"
	"github.com/pmendes/taskvault/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	redis  *redis.Client

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	taskStore    store.TaskStore
	sessionStore store.SessionStore

	// Services
	tokenService auth.TokenService
	authService  *auth.Service
	taskService  *service.TaskService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// the database and redis connections that must be established beforehand.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	redisClient *redis.Client,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	app.userStore = postgres.NewPostgresUserStore(db)
	app.taskStore = postgres.NewPostgresTaskStore(db)
	app.sessionStore = cache.NewRedisSessionStore(redisClient)

	verifier := auth.NewBcryptVerifier()
	sessionTTL := time.Duration(cfg.Auth.SessionTTLSeconds) * time.Second

	app.authService = auth.NewService(
		app.userStore,
		app.sessionStore,
		app.tokenService,
		verifier,
		verifier,
		sessionTTL,
	)

	app.taskService = service.NewTaskService(app.taskStore)

	logger.Info("Application initialized successfully",
		"session_ttl_seconds", cfg.Auth.SessionTTLSeconds)
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("Error closing redis connection", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
