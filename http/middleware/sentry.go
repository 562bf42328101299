package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/waypoint"
)

// ReportPanic recovers panics in the handler it wraps,
// reporting them to Sentry and responding with 500.
//
// In development, panics are left for the http.Server to handle
// and NoopAdapter returns.
func ReportPanic(env waypoint.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         true,
		WaitForDelivery: true,
	})

	return func(handler http.Handler) http.Handler {
		reported := sh.Handle(handler)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					w.Header().Set("Content-Type", "application/json; charset=UTF-8")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"message":"Internal Server Error"}` + "\n"))
				}
			}()

			reported.ServeHTTP(w, r)
		})
	}
}
