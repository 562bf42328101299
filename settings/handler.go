package settings

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/auth"
	"github.com/xy-planning-network/waypoint/http/resp"
)

const (
	msgClaimsIncomplete = "User email or ID not found in authentication token."
	msgFetchFailed      = "Internal server error while fetching settings."
	msgUserNotFound     = "Cal.com user with email %s not found."
)

// A Handler responds to requests for a user's settings.
type Handler struct {
	d     *resp.Responder
	users UserFinder
}

// NewHandler constructs a *Handler looking up users with users.
func NewHandler(d *resp.Responder, users UserFinder) *Handler {
	return &Handler{d: d, users: users}
}

// Get responds with the settings of the user identified by the request's claims.
//
// Get expects to run behind middleware.Authenticate.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok || claims.Complete() != nil {
		h.d.Json(w, r, resp.Code(http.StatusBadRequest), resp.Msg(msgClaimsIncomplete))
		return
	}

	u, err := h.users.FindUserByEmail(r.Context(), claims.Email)
	if errors.Is(err, waypoint.ErrNotFound) {
		h.d.Json(w, r, resp.Code(http.StatusNotFound), resp.Msg(fmt.Sprintf(msgUserNotFound, claims.Email)))
		return
	}

	if err != nil {
		h.d.Err(w, r, fmt.Errorf("can't fetch settings: %w", err), resp.Msg(msgFetchFailed), resp.User(claims))
		return
	}

	h.d.Json(w, r, resp.Data(NewResponse(u, claims)))
}
