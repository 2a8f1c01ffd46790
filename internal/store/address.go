package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mwhitby/signup-api/internal/domain"
)

// AddressStore defines the interface for address data persistence.
type AddressStore interface {
	// Create saves a new address to the store. The owning user must exist;
	// a missing owner surfaces as ErrInvalidEntity (foreign key violation).
	Create(ctx context.Context, address *domain.Address) error

	// ListByUserID retrieves all addresses owned by the given user,
	// oldest first. A user with no addresses yields an empty slice, not an
	// error.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Address, error)

	// WithTx returns a new AddressStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AddressStore
}
