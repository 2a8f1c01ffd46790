package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitby/signup-api/internal/domain"
	"github.com/mwhitby/signup-api/internal/mocks"
	"github.com/mwhitby/signup-api/internal/store"
)

func seedUser(users *mocks.MockUserStore) *domain.User {
	user := &domain.User{
		ID:             uuid.New(),
		Username:       "al",
		Email:          "a@b.com",
		HashedPassword: "hashed:x",
	}
	users.Users[user.ID] = user
	return user
}

func TestGetUserWithAddresses(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	addresses := mocks.NewMockAddressStore()
	user := seedUser(users)

	for _, city := range []string{"NY", "Boston"} {
		addresses.Addresses = append(addresses.Addresses, domain.Address{
			ID:      uuid.New(),
			UserID:  user.ID,
			City:    city,
			Country: "US",
			Street:  "Main",
		})
	}
	// Another user's address must not leak into the result.
	addresses.Addresses = append(addresses.Addresses, domain.Address{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		City:    "Paris",
		Country: "FR",
		Street:  "Rue",
	})

	svc := NewLookupService(users, addresses, testLogger())

	got, addrs, err := svc.GetUserWithAddresses(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Len(t, addrs, 2)
}

func TestGetUserWithAddressesZeroAddresses(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	addresses := mocks.NewMockAddressStore()
	user := seedUser(users)

	svc := NewLookupService(users, addresses, testLogger())

	// The two-query variant still finds the user when it has no addresses.
	got, addrs, err := svc.GetUserWithAddresses(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Empty(t, addrs)
}

func TestGetUserWithAddressesNotFound(t *testing.T) {
	t.Parallel()

	svc := NewLookupService(mocks.NewMockUserStore(), mocks.NewMockAddressStore(), testLogger())

	_, _, err := svc.GetUserWithAddresses(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserWithAddressesStoreFailure(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	users.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
		return nil, errors.New("connection reset")
	}
	svc := NewLookupService(users, mocks.NewMockAddressStore(), testLogger())

	_, _, err := svc.GetUserWithAddresses(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestGetUserJoined(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	id := uuid.New()
	pin := "10001"
	users.GetJoinedFn = func(ctx context.Context, got uuid.UUID) (*store.UserWithAddress, error) {
		if got != id {
			return nil, store.ErrUserNotFound
		}
		return &store.UserWithAddress{
			ID:       id,
			Username: "al",
			Email:    "a@b.com",
			City:     "NY",
			Country:  "US",
			Street:   "Main",
			Pincode:  &pin,
		}, nil
	}

	svc := NewLookupService(users, mocks.NewMockAddressStore(), testLogger())

	row, err := svc.GetUserJoined(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "NY", row.City)

	// Unknown id maps to the not-found kind.
	_, err = svc.GetUserJoined(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserJoinedZeroAddressesMisreportsNotFound(t *testing.T) {
	t.Parallel()

	// An existing user with zero addresses produces no joined rows; the
	// inner join cannot tell that apart from a missing user.
	users := mocks.NewMockUserStore()
	seedUser(users)

	svc := NewLookupService(users, mocks.NewMockAddressStore(), testLogger())

	_, err := svc.GetUserJoined(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
