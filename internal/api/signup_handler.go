package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mwhitby/signup-api/internal/api/shared"
	"github.com/mwhitby/signup-api/internal/domain"
	"github.com/mwhitby/signup-api/internal/service"
)

// SignupHandler handles the registration API request.
type SignupHandler struct {
	registration service.RegistrationService
	validator    *validator.Validate
}

// NewSignupHandler creates a new SignupHandler with the given dependencies.
func NewSignupHandler(registration service.RegistrationService) *SignupHandler {
	v := validator.New()

	// The username rule is shared with the domain layer.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return domain.IsValidUsername(fl.Field().String())
	})

	return &SignupHandler{
		registration: registration,
		validator:    v,
	}
}

// Signup handles the POST /signup endpoint.
func (h *SignupHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request. Struct validation produces a verdict for every
	// field before failing; any violation rejects the whole request with
	// no write attempted.
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgInvalidEntry, err)
		return
	}

	// Register user and address atomically
	user, err := h.registration.Register(r.Context(), service.RegistrationInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		City:     req.City,
		Country:  req.Country,
		Street:   req.Street,
		Pincode:  req.Pincode,
	})
	if err != nil {
		// Defense in depth: the request validator and the domain rules
		// enforce the same constraints, so this branch is unreachable from
		// well-formed handler input.
		if errors.Is(err, service.ErrValidationFailed) {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgInvalidEntry, err)
			return
		}
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SignupResponse{
		Message: "User registered successfully",
		ID:      user.ID,
	})
}
