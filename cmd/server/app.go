package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mwhitby/signup-api/internal/config"
	"github.com/mwhitby/signup-api/internal/platform/postgres"
	"github.com/mwhitby/signup-api/internal/service"
	"github.com/mwhitby/signup-api/internal/service/auth"
	"github.com/mwhitby/signup-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	addressStore store.AddressStore

	// Service interfaces
	hasher       auth.PasswordHasher
	registration service.RegistrationService
	lookup       service.LookupService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if db == nil {
		return nil, fmt.Errorf("nil database handle")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize password hasher with the configured work factor
	app.hasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db)
	app.addressStore = postgres.NewPostgresAddressStore(db)

	// Initialize services
	app.registration = service.NewRegistrationService(
		db,
		app.userStore,
		app.addressStore,
		app.hasher,
		logger,
	)
	app.lookup = service.NewLookupService(app.userStore, app.addressStore, logger)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
