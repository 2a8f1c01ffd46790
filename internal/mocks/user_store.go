package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mwhitby/signup-api/internal/domain"
	"github.com/mwhitby/signup-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn    func(ctx context.Context, user *domain.User) error
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetJoinedFn func(ctx context.Context, id uuid.UUID) (*store.UserWithAddress, error)

	// Data for default implementation
	Users       map[uuid.UUID]*domain.User
	CreateError error
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[uuid.UUID]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	for _, existing := range m.Users {
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	m.Users[user.ID] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, exists := m.Users[id]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetJoined implements the UserStore interface
func (m *MockUserStore) GetJoined(ctx context.Context, id uuid.UUID) (*store.UserWithAddress, error) {
	if m.GetJoinedFn != nil {
		return m.GetJoinedFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

// WithTx implements the UserStore interface for transaction support
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	// Mocks have no real transaction; the same instance is reused
	return m
}
