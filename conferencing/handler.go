package conferencing

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/auth"
	"github.com/xy-planning-network/waypoint/http/req"
	"github.com/xy-planning-network/waypoint/http/resp"
)

const (
	msgClaimsIncomplete = "User email or ID not found in authentication token."
	msgBadParams        = "Invalid query parameters."
	msgFetchFailed      = "Internal server error while fetching conferencing apps."
	msgUserNotFound     = "Cal.com user with email %s not found."
)

// A UserIDFinder resolves the id of the User with the given email.
type UserIDFinder interface {
	FindUserIDByEmail(ctx context.Context, email string) (int64, error)
}

// An AppFinder looks up the conferencing app Credentials of a user.
type AppFinder interface {
	FindConferencingApps(ctx context.Context, userID int64) ([]waypoint.Credential, error)
	FindConferencingApp(ctx context.Context, userID int64, app string) (*waypoint.Credential, error)
}

// An App is the public shape of a conferencing app Credential.
type App struct {
	ID      int64   `json:"id"`
	Type    string  `json:"type"`
	AppID   *string `json:"appId"`
	Invalid bool    `json:"invalid"`
}

// NewApp maps c into its public shape, leaving out its key.
func NewApp(c waypoint.Credential) App {
	return App{ID: c.ID, Type: c.Type, AppID: c.AppID, Invalid: c.Invalid}
}

type listParams struct {
	App string `schema:"app" validate:"omitempty,max=64,appid"`
}

type listResponse struct {
	ConferencingApps []App `json:"conferencingApps"`
}

// A Handler responds to requests for a user's conferencing apps.
type Handler struct {
	apps  AppFinder
	d     *resp.Responder
	p     *req.Parser
	users UserIDFinder
}

// NewHandler constructs a *Handler.
func NewHandler(d *resp.Responder, users UserIDFinder, apps AppFinder) *Handler {
	return &Handler{apps: apps, d: d, p: req.NewParser(), users: users}
}

// List responds with the conferencing apps of the user identified by the request's claims.
//
// The "app" query param narrows the list to the user's Credential for that app, if any.
//
// List expects to run behind middleware.Authenticate.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok || claims.Complete() != nil {
		h.d.Json(w, r, resp.Code(http.StatusBadRequest), resp.Msg(msgClaimsIncomplete))
		return
	}

	var params listParams
	if err := h.p.ParseQueryParams(r.URL.Query(), &params); err != nil {
		var errs req.ValidationErrors
		if !errors.As(err, &errs) {
			h.d.Err(w, r, err, resp.Code(http.StatusBadRequest), resp.Msg(msgBadParams))
			return
		}

		h.d.Json(w, r, resp.Code(http.StatusBadRequest), resp.Data(struct {
			Message          string                `json:"message"`
			ValidationErrors []req.ValidationError `json:"validationErrors"`
		}{msgBadParams, errs}))
		return
	}

	userID, err := h.users.FindUserIDByEmail(r.Context(), claims.Email)
	if errors.Is(err, waypoint.ErrNotFound) {
		h.d.Json(w, r, resp.Code(http.StatusNotFound), resp.Msg(fmt.Sprintf(msgUserNotFound, claims.Email)))
		return
	}

	if err != nil {
		h.d.Err(w, r, fmt.Errorf("can't resolve user: %w", err), resp.Msg(msgFetchFailed), resp.User(claims))
		return
	}

	creds, err := h.find(r.Context(), userID, params)
	if err != nil {
		h.d.Err(
			w, r,
			fmt.Errorf("can't fetch conferencing apps: %w", err),
			resp.Msg(msgFetchFailed),
			resp.User(claims),
			resp.LogData(map[string]any{"userId": userID}),
		)
		return
	}

	apps := make([]App, len(creds))
	for i, c := range creds {
		apps[i] = NewApp(c)
	}

	h.d.Json(w, r, resp.Data(listResponse{ConferencingApps: apps}))
}

// find fetches the Credentials params narrow the user's apps to.
func (h *Handler) find(ctx context.Context, userID int64, params listParams) ([]waypoint.Credential, error) {
	if params.App == "" {
		return h.apps.FindConferencingApps(ctx, userID)
	}

	cred, err := h.apps.FindConferencingApp(ctx, userID, params.App)
	if err != nil {
		return nil, err
	}

	if cred == nil || !cred.IsVideo() {
		return []waypoint.Credential{}, nil
	}

	return []waypoint.Credential{*cred}, nil
}
