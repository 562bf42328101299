package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/xy-planning-network/waypoint/http/resp"
)

// AllowMethods passes requests made with one of methods
// to the next handler in the middleware stack.
//
// Requests made with any other method receive 405
// with the permitted methods listed in the "Allow" header.
// Place AllowMethods before Authenticate so the method is checked first.
//
// CORS preflight requests are handled earlier by CORS and never reach AllowMethods.
func AllowMethods(d *resp.Responder, methods ...string) Adapter {
	if len(methods) == 0 {
		return NoopAdapter
	}

	allow := strings.Join(methods, ", ")
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, m := range methods {
				if r.Method == m {
					handler.ServeHTTP(w, r)
					return
				}
			}

			d.Json(
				w,
				r,
				resp.Code(http.StatusMethodNotAllowed),
				resp.Header("Allow", allow),
				resp.Msg(fmt.Sprintf("Method %s Not Allowed", r.Method)),
			)
		})
	}
}
