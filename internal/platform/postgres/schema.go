package postgres

import (
	"context"
	"fmt"

	"github.com/mwhitby/signup-api/internal/store"
)

// schemaStatements is the idempotent bootstrap DDL. Both statements are
// create-if-absent so running them on every startup is safe.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL CONSTRAINT users_username_key UNIQUE,
		email TEXT NOT NULL CONSTRAINT users_email_key UNIQUE,
		hashed_password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		city TEXT NOT NULL,
		country TEXT NOT NULL,
		street TEXT NOT NULL,
		pincode TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS addresses_user_id_idx ON addresses (user_id)`,
}

// EnsureSchema creates the users and addresses tables if they do not exist.
// It runs outside request handling, once at startup, before the server
// accepts traffic.
func EnsureSchema(ctx context.Context, db store.DBTX) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to bootstrap schema: %w", err)
		}
	}
	return nil
}
