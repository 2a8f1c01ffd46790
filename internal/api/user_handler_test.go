package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitby/signup-api/internal/domain"
	"github.com/mwhitby/signup-api/internal/service"
	"github.com/mwhitby/signup-api/internal/store"
)

// mockLookupService implements service.LookupService for testing
type mockLookupService struct {
	GetUserWithAddressesFn func(ctx context.Context, id uuid.UUID) (*domain.User, []domain.Address, error)
	GetUserJoinedFn        func(ctx context.Context, id uuid.UUID) (*store.UserWithAddress, error)
}

func (m *mockLookupService) GetUserWithAddresses(
	ctx context.Context,
	id uuid.UUID,
) (*domain.User, []domain.Address, error) {
	return m.GetUserWithAddressesFn(ctx, id)
}

func (m *mockLookupService) GetUserJoined(
	ctx context.Context,
	id uuid.UUID,
) (*store.UserWithAddress, error) {
	return m.GetUserJoinedFn(ctx, id)
}

func lookupRequest(t *testing.T, handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("GET", target, nil)
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestGetUserBadApproach(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	user := &domain.User{ID: userID, Username: "al", Email: "a@b.com"}

	t.Run("returns user with all addresses", func(t *testing.T) {
		t.Parallel()

		svc := &mockLookupService{
			GetUserWithAddressesFn: func(ctx context.Context, id uuid.UUID) (*domain.User, []domain.Address, error) {
				require.Equal(t, userID, id)
				return user, []domain.Address{
					{ID: uuid.New(), UserID: userID, City: "NY", Country: "US", Street: "Main"},
					{ID: uuid.New(), UserID: userID, City: "Boston", Country: "US", Street: "Elm"},
				}, nil
			},
		}
		handler := NewUserHandler(svc)

		recorder := lookupRequest(t, handler.GetUserBadApproach, "/user/badapproach?id="+userID.String())
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp UserWithAddressesResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, userID, resp.User.ID)
		assert.Len(t, resp.Addresses, 2)
	})

	t.Run("returns empty array for user without addresses", func(t *testing.T) {
		t.Parallel()

		svc := &mockLookupService{
			GetUserWithAddressesFn: func(ctx context.Context, id uuid.UUID) (*domain.User, []domain.Address, error) {
				return user, nil, nil
			},
		}
		handler := NewUserHandler(svc)

		recorder := lookupRequest(t, handler.GetUserBadApproach, "/user/badapproach?id="+userID.String())
		assert.Equal(t, http.StatusOK, recorder.Code)
		// The addresses field serializes as [], not null.
		assert.Contains(t, recorder.Body.String(), `"addresses":[]`)
	})

	t.Run("unknown user returns 404", func(t *testing.T) {
		t.Parallel()

		svc := &mockLookupService{
			GetUserWithAddressesFn: func(ctx context.Context, id uuid.UUID) (*domain.User, []domain.Address, error) {
				return nil, nil, fmt.Errorf("%w: no row", service.ErrNotFound)
			},
		}
		handler := NewUserHandler(svc)

		recorder := lookupRequest(t, handler.GetUserBadApproach, "/user/badapproach?id="+uuid.NewString())
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, MsgUserNotFound, resp["message"])
	})

	t.Run("store failure returns 500 without detail", func(t *testing.T) {
		t.Parallel()

		svc := &mockLookupService{
			GetUserWithAddressesFn: func(ctx context.Context, id uuid.UUID) (*domain.User, []domain.Address, error) {
				return nil, nil, fmt.Errorf("%w: connection refused", service.ErrPersistence)
			},
		}
		handler := NewUserHandler(svc)

		recorder := lookupRequest(t, handler.GetUserBadApproach, "/user/badapproach?id="+uuid.NewString())
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "connection refused")
	})
}

func TestGetUserGoodApproach(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	pin := "10001"

	t.Run("returns first joined row", func(t *testing.T) {
		t.Parallel()

		svc := &mockLookupService{
			GetUserJoinedFn: func(ctx context.Context, id uuid.UUID) (*store.UserWithAddress, error) {
				require.Equal(t, userID, id)
				return &store.UserWithAddress{
					ID:       userID,
					Username: "al",
					Email:    "a@b.com",
					City:     "NY",
					Country:  "US",
					Street:   "Main",
					Pincode:  &pin,
				}, nil
			},
		}
		handler := NewUserHandler(svc)

		recorder := lookupRequest(t, handler.GetUserGoodApproach, "/user/goodapproach?id="+userID.String())
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp store.UserWithAddress
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "NY", resp.City)
		assert.Equal(t, "al", resp.Username)
	})

	t.Run("no joined row returns 404", func(t *testing.T) {
		t.Parallel()

		svc := &mockLookupService{
			GetUserJoinedFn: func(ctx context.Context, id uuid.UUID) (*store.UserWithAddress, error) {
				return nil, fmt.Errorf("%w: no row", service.ErrNotFound)
			},
		}
		handler := NewUserHandler(svc)

		recorder := lookupRequest(t, handler.GetUserGoodApproach, "/user/goodapproach?id="+uuid.NewString())
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestLookupQueryParamHandling(t *testing.T) {
	t.Parallel()

	svc := &mockLookupService{
		GetUserWithAddressesFn: func(ctx context.Context, id uuid.UUID) (*domain.User, []domain.Address, error) {
			t.Fatal("lookup must not run for a bad id")
			return nil, nil, nil
		},
		GetUserJoinedFn: func(ctx context.Context, id uuid.UUID) (*store.UserWithAddress, error) {
			t.Fatal("lookup must not run for a bad id")
			return nil, nil
		},
	}
	handler := NewUserHandler(svc)

	tests := []struct {
		name   string
		target string
	}{
		{"missing id", "/user/badapproach"},
		{"empty id", "/user/badapproach?id="},
		{"non-parseable id", "/user/badapproach?id=banana"},
		{"numeric but not a uuid", "/user/badapproach?id=42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recorder := lookupRequest(t, handler.GetUserBadApproach, tt.target)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			recorder = lookupRequest(t, handler.GetUserGoodApproach, tt.target)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}
