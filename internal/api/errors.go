package api

import (
	"errors"
	"net/http"

	"github.com/mwhitby/signup-api/internal/api/shared"
	"github.com/mwhitby/signup-api/internal/service"
)

// Client-facing messages. Validation failures keep the historical
// 401/"Invalid Entry" wire contract; everything persistence-shaped
// collapses into one generic message so no internal detail leaks.
const (
	MsgInvalidEntry  = "Invalid Entry"
	MsgUserNotFound  = "User Not Found"
	MsgServerFailure = "Something went wrong, please try again"
)

// MapErrorToStatusCode maps service error kinds to HTTP status codes.
// This prevents leaking internal error types or messages to clients.
//
// Validation maps to 401 rather than 400: the original wire contract used
// authentication semantics for rejected input and clients depend on it.
// Duplicates map to 500 for the same reason; the distinct kind still
// reaches the log.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrDuplicate),
		errors.Is(err, service.ErrPersistence):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error kind. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		return MsgInvalidEntry

	case errors.Is(err, service.ErrNotFound):
		return MsgUserNotFound

	default:
		return MsgServerFailure
	}
}

// HandleServiceError writes the mapped status and safe message for a service
// error, logging the full detail server-side.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
