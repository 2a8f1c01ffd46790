package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mwhitby/signup-api/internal/domain"
)

// UserWithAddress is the projection produced by the joined lookup: one user
// row combined with one of its address rows.
type UserWithAddress struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	City     string    `json:"city"`
	Country  string    `json:"country"`
	Street   string    `json:"street"`
	Pincode  *string   `json:"pincode,omitempty"`
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password.
	// Returns ErrUsernameExists or ErrEmailExists on a unique violation.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user never contains the plaintext password.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetJoined retrieves a user joined with its addresses in a single
	// round-trip, returning only the first joined row. Because the join is
	// an inner join, a user with zero addresses yields ErrUserNotFound.
	GetJoined(ctx context.Context, id uuid.UUID) (*UserWithAddress, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
