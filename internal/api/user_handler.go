package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mwhitby/signup-api/internal/api/shared"
	"github.com/mwhitby/signup-api/internal/domain"
	"github.com/mwhitby/signup-api/internal/service"
)

// UserHandler handles the user lookup API requests.
type UserHandler struct {
	lookup service.LookupService
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(lookup service.LookupService) *UserHandler {
	return &UserHandler{lookup: lookup}
}

// queryUserID extracts and parses the id query parameter. The parameter is
// client-controlled and may be absent or malformed; both cases answer 400
// instead of reaching the store.
func queryUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing user id")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user id")
		return uuid.Nil, false
	}

	return id, true
}

// GetUserBadApproach handles GET /user/badapproach. It issues two sequential
// queries: one for the user, one for all of its addresses. The extra
// round-trip makes this the inferior variant, tolerable only at low volume.
func (h *UserHandler) GetUserBadApproach(w http.ResponseWriter, r *http.Request) {
	id, ok := queryUserID(w, r)
	if !ok {
		return
	}

	user, addresses, err := h.lookup.GetUserWithAddresses(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	if addresses == nil {
		addresses = []domain.Address{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserWithAddressesResponse{
		User:      user,
		Addresses: addresses,
	})
}

// GetUserGoodApproach handles GET /user/goodapproach. A single joined query
// fetches user and address together; only the first joined row is returned,
// and a user with zero addresses is indistinguishable from a missing user.
func (h *UserHandler) GetUserGoodApproach(w http.ResponseWriter, r *http.Request) {
	id, ok := queryUserID(w, r)
	if !ok {
		return
	}

	row, err := h.lookup.GetUserJoined(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, row)
}
