package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mwhitby/signup-api/internal/domain"
	"github.com/mwhitby/signup-api/internal/store"
)

// LookupService reads a user and its addresses back out of the store.
//
// Two variants exist on purpose. GetUserWithAddresses issues two sequential
// queries and returns every address; GetUserJoined issues a single joined
// query but returns at most one address row and cannot distinguish a missing
// user from a user without addresses. The two-query shape costs an extra
// round-trip and is only acceptable at low request volume.
type LookupService interface {
	// GetUserWithAddresses fetches the user by id, then all of its
	// addresses (possibly zero). Returns ErrNotFound when no user exists.
	GetUserWithAddresses(ctx context.Context, id uuid.UUID) (*domain.User, []domain.Address, error)

	// GetUserJoined fetches the user inner-joined with its addresses and
	// returns the first joined row only. Returns ErrNotFound when the join
	// produces no rows, which includes existing users with zero addresses.
	GetUserJoined(ctx context.Context, id uuid.UUID) (*store.UserWithAddress, error)
}

// LookupServiceImpl implements the LookupService interface.
type LookupServiceImpl struct {
	users     store.UserStore
	addresses store.AddressStore
	logger    *slog.Logger
}

// NewLookupService creates a new LookupService.
func NewLookupService(
	users store.UserStore,
	addresses store.AddressStore,
	logger *slog.Logger,
) *LookupServiceImpl {
	return &LookupServiceImpl{
		users:     users,
		addresses: addresses,
		logger:    logger.With("component", "lookup_service"),
	}
}

// GetUserWithAddresses implements the LookupService interface.
func (s *LookupServiceImpl) GetUserWithAddresses(
	ctx context.Context,
	id uuid.UUID,
) (*domain.User, []domain.Address, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", id)
			return nil, nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		s.logger.Error("failed to fetch user",
			"error", err,
			"user_id", id)
		return nil, nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	addresses, err := s.addresses.ListByUserID(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch addresses",
			"error", err,
			"user_id", id)
		return nil, nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return user, addresses, nil
}

// GetUserJoined implements the LookupService interface.
func (s *LookupServiceImpl) GetUserJoined(
	ctx context.Context,
	id uuid.UUID,
) (*store.UserWithAddress, error) {
	row, err := s.users.GetJoined(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("no joined row for user", "user_id", id)
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		s.logger.Error("failed to fetch joined user",
			"error", err,
			"user_id", id)
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return row, nil
}
