package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pmendes/taskvault/internal/api"
	apiMiddleware "github.com/pmendes/taskvault/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	sessionTTL := time.Duration(app.config.Auth.SessionTTLSeconds) * time.Second

	authHandler := api.NewAuthHandler(app.authService, app.config.Server.CookieSecure, sessionTTL)
	taskHandler := api.NewTaskHandler(app.taskService)
	sessionMiddleware := apiMiddleware.NewSessionMiddleware(app.tokenService, app.authService)

	// Authentication endpoints (public). Logout is deliberately outside the
	// session gate so an expired session can still clear its cookie.
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	// Logout is a GET like the clients expect; POST is accepted as well.
	r.Get("/auth/logout", authHandler.Logout)
	r.Post("/auth/logout", authHandler.Logout)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware.Authenticate)

		r.Get("/tasks", taskHandler.List)
		r.Post("/tasks", taskHandler.Create)
		r.Get("/tasks/{id}", taskHandler.Get)
		r.Put("/tasks/{id}", taskHandler.Update)
		r.Delete("/tasks/{id}", taskHandler.Delete)
	})

	// Health check endpoint
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
