package middleware

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/waypoint/auth"
	"github.com/xy-planning-network/waypoint/http/resp"
)

const (
	MsgMalformedToken = "Unauthorized: Missing or malformed token"
	MsgInvalidToken   = "Unauthorized: Invalid token"
	MsgMisconfigured  = "Internal Server Error: JWT secret not configured."
)

// Authenticate requires requests to carry an "Authorization: Bearer <token>" header
// the auth.Verifier accepts.
//
// Authenticate stores the verified auth.Claims in the request context
// and passes the request to the next handler in the middleware stack.
// Retrieve them with auth.ClaimsFromContext.
//
// Otherwise, Authenticate does not pass the request along and instead:
//   - responds 401 when the token is missing, malformed, or invalid
//   - responds 500 and logs when the auth.Verifier is misconfigured
//
// If either d or v is nil, Authenticate rejects every request with 500.
func Authenticate(d *resp.Responder, v auth.Verifier) Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if d == nil || v == nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			token, err := auth.ParseBearer(r.Header.Get("Authorization"))
			if err != nil {
				d.Json(w, r, resp.Code(http.StatusUnauthorized), resp.Msg(MsgMalformedToken))
				return
			}

			claims, err := v.Verify(r.Context(), token)
			switch {
			case errors.Is(err, auth.ErrMisconfigured):
				d.Err(w, r, err, resp.Msg(MsgMisconfigured))
				return
			case err != nil:
				d.Json(w, r, resp.Code(http.StatusUnauthorized), resp.Msg(MsgInvalidToken))
				return
			}

			handler.ServeHTTP(w, r.Clone(auth.NewClaimsContext(r.Context(), claims)))
		})
	}
}
