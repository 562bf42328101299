package middleware

import (
	"net/http"
	"net/url"

	"github.com/xy-planning-network/waypoint"
)

// ForceHTTPS redirects HTTP requests to HTTPS if the environment is not "DEVELOPMENT".
//
// A request served over TLS passes through.
// Behind a proxy terminating TLS, "X-Forwarded-Proto" reports the scheme the client used.
//
// Requests for any path in exempt pass through over either scheme,
// so load balancer probes can reach them.
func ForceHTTPS(env waypoint.Environment, exempt ...string) Adapter {
	skip := make(map[string]bool, len(exempt))
	for _, p := range exempt {
		skip[p] = true
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if env.IsDevelopment() || isHTTPS(r) || skip[r.URL.Path] {
				handler.ServeHTTP(w, r)
				return
			}

			u := new(url.URL)
			*u = *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}

func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
