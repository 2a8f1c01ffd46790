package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mwhitby/signup-api/internal/api"
	apiMiddleware "github.com/mwhitby/signup-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	// Create API handlers using the application's services
	signupHandler := api.NewSignupHandler(app.registration)
	userHandler := api.NewUserHandler(app.lookup)

	// Register routes
	r.Post("/signup", signupHandler.Signup)
	r.Get("/user/badapproach", userHandler.GetUserBadApproach)
	r.Get("/user/goodapproach", userHandler.GetUserGoodApproach)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
