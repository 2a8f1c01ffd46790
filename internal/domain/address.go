package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Address validation errors
var (
	ErrEmptyAddressID = errors.New("address ID cannot be empty")
	ErrEmptyOwnerID   = errors.New("address must reference an owning user")
	ErrEmptyCity      = errors.New("city cannot be empty")
	ErrEmptyCountry   = errors.New("country cannot be empty")
	ErrEmptyStreet    = errors.New("street cannot be empty")
)

// Address is a postal address owned by a User. Every address belongs to
// exactly one user; the schema cascades deletion from the owning user.
type Address struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Street    string    `json:"street"`
	Pincode   *string   `json:"pincode,omitempty"` // optional postal code
	CreatedAt time.Time `json:"created_at"`
}

// NewAddress creates a new Address owned by the given user.
// pincode may be nil; all other fields are required.
func NewAddress(userID uuid.UUID, city, country, street string, pincode *string) (*Address, error) {
	addr := &Address{
		ID:        uuid.New(),
		UserID:    userID,
		City:      city,
		Country:   country,
		Street:    street,
		Pincode:   pincode,
		CreatedAt: time.Now().UTC(),
	}

	if err := addr.Validate(); err != nil {
		return nil, err
	}

	return addr, nil
}

// Validate checks if the Address has valid data.
func (a *Address) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAddressID
	}
	if a.UserID == uuid.Nil {
		return ErrEmptyOwnerID
	}
	if a.City == "" {
		return ErrEmptyCity
	}
	if a.Country == "" {
		return ErrEmptyCountry
	}
	if a.Street == "" {
		return ErrEmptyStreet
	}
	return nil
}
