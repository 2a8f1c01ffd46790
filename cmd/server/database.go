package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/mwhitby/signup-api/internal/config"
	"github.com/mwhitby/signup-api/internal/platform/postgres"
)

// setupAppDatabase establishes a connection to the database, configures the
// connection pool, verifies connectivity, and bootstraps the schema.
// Returns the database connection if successful, or an error if any step fails.
func setupAppDatabase(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	dsn, err := databaseDSN(cfg.Database)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool with reasonable defaults
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Idempotent bootstrap: create the tables when they are absent.
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("database connection established and schema ensured")
	return db, nil
}

// databaseDSN derives the effective connection string. When TLS certificate
// verification is disabled by configuration, the sslmode parameter is forced
// to "require", which encrypts the connection without verifying the server
// certificate.
func databaseDSN(cfg config.DatabaseConfig) (string, error) {
	if !cfg.InsecureSkipTLSVerify {
		return cfg.URL, nil
	}

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return "", fmt.Errorf("failed to parse database URL: %w", err)
	}

	q := u.Query()
	q.Set("sslmode", "require")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
