package api

import (
	"github.com/google/uuid"

	"github.com/mwhitby/signup-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user registration endpoint.
// The username tag is registered in NewSignupHandler and enforces the
// 2-20 letters/digits/spaces rule. validator.Struct evaluates every field
// before reporting, so a failing request carries the full verdict set.
type SignupRequest struct {
	Username string  `json:"username" validate:"required,username"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required"`
	City     string  `json:"city"     validate:"required"`
	Country  string  `json:"country"  validate:"required"`
	Street   string  `json:"street"   validate:"required"`
	Pincode  *string `json:"pincode"` // optional
}

// SignupResponse defines the successful response for the registration endpoint.
type SignupResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// UserWithAddressesResponse defines the successful response for the
// two-query lookup: the user plus all of its addresses (possibly none).
type UserWithAddressesResponse struct {
	User      *domain.User     `json:"user"`
	Addresses []domain.Address `json:"addresses"`
}
