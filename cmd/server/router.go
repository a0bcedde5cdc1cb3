package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gatherhq/gather-api/internal/api"
	apiMiddleware "github.com/gatherhq/gather-api/internal/api/middleware"
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

	accountHandler := api.NewAccountHandler(app.dispatcher, app.logger)
	activityHandler := api.NewActivityHandler(app.dispatcher, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/account/login", accountHandler.Login)
		r.Post("/account/register", accountHandler.Register)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/account/me", accountHandler.CurrentUser)

			r.Get("/activities", activityHandler.List)
			r.Get("/activities/{id}", activityHandler.Get)
			r.Post("/activities", activityHandler.Create)
			r.Put("/activities/{id}", activityHandler.Edit)
			r.Delete("/activities/{id}", activityHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
