package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mwhitby/signup-api/internal/domain"
	"github.com/mwhitby/signup-api/internal/store"
)

// MockAddressStore implements store.AddressStore for testing
type MockAddressStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, address *domain.Address) error
	ListByUserIDFn func(ctx context.Context, userID uuid.UUID) ([]domain.Address, error)

	// Data for default implementation
	Addresses   []domain.Address
	CreateError error
}

// NewMockAddressStore creates a new mock store with initialized defaults
func NewMockAddressStore() *MockAddressStore {
	return &MockAddressStore{}
}

// Create implements the AddressStore interface
func (m *MockAddressStore) Create(ctx context.Context, address *domain.Address) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, address)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Addresses = append(m.Addresses, *address)
	return nil
}

// ListByUserID implements the AddressStore interface
func (m *MockAddressStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Address, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}

	var out []domain.Address
	for _, addr := range m.Addresses {
		if addr.UserID == userID {
			out = append(out, addr)
		}
	}
	return out, nil
}

// WithTx implements the AddressStore interface for transaction support
func (m *MockAddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	return m
}
