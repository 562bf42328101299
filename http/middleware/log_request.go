package middleware

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
)

// LogRequest logs the request's method, requested URL, and originating IP address
// using the enclosed implementation of logger.Logger.
//
// Credentials sent as query params, such as access_token, are masked
// with waypoint.MaskCredentials.
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.Path
			query := waypoint.MaskCredentials(r.URL.Query()).Encode()
			if query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method, uri}
			if val, ok := r.Context().Value(waypoint.IpAddrKey).(string); ok {
				strs = append([]string{val}, strs...)
			}

			if val, ok := r.Context().Value(waypoint.RequestIDKey).(string); ok {
				strs = append(strs, val)
			}

			ls.Info(strings.Join(strs, " "), nil)
			h.ServeHTTP(w, r)
		})
	}
}
