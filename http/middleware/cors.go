package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS sets "Access-Control-Allowed" style headers on a response
// for requests from origin.
//
// Only preflight requests, OPTIONS requests carrying both "Origin" and
// "Access-Control-Request-Method", are answered here.
// Any other OPTIONS request continues down the middleware stack,
// where AllowMethods rejects it like any other unsupported method.
//
// If origin is "", NoopAdapter returns and this middleware does nothing.
func CORS(origin string) Adapter {
	if origin == "" {
		return NoopAdapter
	}

	cors := handlers.CORS(
		handlers.AllowedHeaders([]string{
			"Authorization",
			"Content-Type",
			"Apikey",
		}),
		handlers.AllowedOrigins([]string{origin}),
		handlers.AllowedMethods([]string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		}),
		handlers.ExposedHeaders([]string{requestIDHeader}),
	)

	return func(h http.Handler) http.Handler {
		withCORS := cors(h)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions && !isPreflight(r) {
				h.ServeHTTP(w, r)
				return
			}

			withCORS.ServeHTTP(w, r)
		})
	}
}

func isPreflight(r *http.Request) bool {
	return r.Header.Get("Origin") != "" && r.Header.Get("Access-Control-Request-Method") != ""
}
