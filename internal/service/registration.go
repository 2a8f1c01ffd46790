package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mwhitby/signup-api/internal/domain"
	"github.com/mwhitby/signup-api/internal/service/auth"
	"github.com/mwhitby/signup-api/internal/store"
)

// RegistrationInput carries the seven raw signup fields.
type RegistrationInput struct {
	Username string
	Email    string
	Password string
	City     string
	Country  string
	Street   string
	Pincode  *string
}

// RegistrationService registers a new user together with its first address.
type RegistrationService interface {
	// Register validates the input, hashes the password, and persists the
	// user and address atomically. Either both rows exist afterwards or
	// neither does.
	//
	// Returns ErrValidationFailed when any field violates its rule (no
	// write is attempted), ErrDuplicate when the username or email is
	// taken, and ErrPersistence for any other storage failure. In both
	// failure cases inside the transaction the store is left unchanged.
	Register(ctx context.Context, input RegistrationInput) (*domain.User, error)
}

// RegistrationServiceImpl implements the RegistrationService interface.
type RegistrationServiceImpl struct {
	db        *sql.DB
	users     store.UserStore
	addresses store.AddressStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger

	// runTx wraps the dual insert in a transaction; swapped in tests.
	runTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	db *sql.DB,
	users store.UserStore,
	addresses store.AddressStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{
		db:        db,
		users:     users,
		addresses: addresses,
		hasher:    hasher,
		logger:    logger.With("component", "registration_service"),
		runTx:     store.RunInTransaction,
	}
}

// Register implements the RegistrationService interface.
func (s *RegistrationServiceImpl) Register(
	ctx context.Context,
	input RegistrationInput,
) (*domain.User, error) {
	user, err := domain.NewUser(input.Username, input.Email, input.Password)
	if err != nil {
		s.logger.Debug("registration rejected by user validation",
			"error", err,
			"username", input.Username)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	address, err := domain.NewAddress(
		user.ID,
		input.City,
		input.Country,
		input.Street,
		input.Pincode,
	)
	if err != nil {
		s.logger.Debug("registration rejected by address validation",
			"error", err,
			"username", input.Username)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	// Hash only after validation has passed; hashing a doomed request is
	// wasted work.
	user.HashedPassword, err = s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"username", input.Username)
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	user.Password = ""

	// Both inserts run on the same transaction: the user row's id is
	// visible to the address insert, and neither row is visible to other
	// sessions until commit.
	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txUsers := s.users.WithTx(tx)
		txAddresses := s.addresses.WithTx(tx)

		if err := txUsers.Create(ctx, user); err != nil {
			return err
		}
		return txAddresses.Create(ctx, address)
	})

	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Warn("registration collided with existing user",
				"error", err,
				"username", input.Username)
			return nil, fmt.Errorf("%w: %w", ErrDuplicate, err)
		}
		s.logger.Error("failed to persist registration",
			"error", err,
			"username", input.Username)
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.logger.Info("user registered successfully",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}
