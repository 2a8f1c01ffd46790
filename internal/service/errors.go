package service

import "errors"

// Common service errors - sentinel error kinds used across service implementations.
// These represent the conditions callers are expected to check with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped with context via fmt.Errorf("%w")
// 3. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrValidationFailed indicates that one or more registration fields
	// violated their rules. No write was attempted.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotFound indicates that a lookup targeted a user that does not
	// exist. API layer maps this to HTTP 404 Not Found.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicate indicates that the registration collided with an
	// existing username or email. The transaction was rolled back; the
	// store is unchanged.
	ErrDuplicate = errors.New("username or email already exists")

	// ErrPersistence indicates that the relational store failed or was
	// unreachable. API layer maps this to HTTP 500 with a generic message.
	ErrPersistence = errors.New("persistence failure")
)
