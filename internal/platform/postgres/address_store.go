package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/mwhitby/signup-api/internal/domain"
	"github.com/mwhitby/signup-api/internal/store"
)

// PostgresAddressStore implements the store.AddressStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAddressStore struct {
	db store.DBTX
}

// NewPostgresAddressStore creates a new PostgreSQL implementation of the AddressStore interface.
func NewPostgresAddressStore(db store.DBTX) *PostgresAddressStore {
	return &PostgresAddressStore{db: db}
}

// Ensure PostgresAddressStore implements store.AddressStore interface
var _ store.AddressStore = (*PostgresAddressStore)(nil)

// WithTx implements store.AddressStore.WithTx
func (s *PostgresAddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	return &PostgresAddressStore{db: tx}
}

// Create implements store.AddressStore.Create
func (s *PostgresAddressStore) Create(ctx context.Context, address *domain.Address) error {
	if err := address.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO addresses (id, user_id, city, country, street, pincode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		address.ID, address.UserID, address.City, address.Country,
		address.Street, address.Pincode, address.CreatedAt)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// ListByUserID implements store.AddressStore.ListByUserID
func (s *PostgresAddressStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Address, error) {
	query := `
		SELECT id, user_id, city, country, street, pincode, created_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var addresses []domain.Address
	for rows.Next() {
		var addr domain.Address
		if err := rows.Scan(
			&addr.ID, &addr.UserID, &addr.City, &addr.Country,
			&addr.Street, &addr.Pincode, &addr.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		addresses = append(addresses, addr)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return addresses, nil
}
