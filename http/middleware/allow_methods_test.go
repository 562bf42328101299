package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/resp"
)

func TestAllowMethods(t *testing.T) {
	// Arrange + Act
	actual := middleware.AllowMethods(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	d := resp.NewResponder(resp.WithLogger(newLogger()))
	for _, method := range []string{
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	} {
		t.Run(method, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(method, "https://example.com/api/v1/custom/settings", nil)
			r.Header.Set("Authorization", "Bearer abc.def.ghi")

			// Act
			middleware.Chain(
				teapotHandler(),
				middleware.AllowMethods(d, http.MethodGet),
				middleware.Authenticate(d, testVerifier{}),
			).ServeHTTP(w, r)

			// Assert
			require.Equal(t, http.StatusMethodNotAllowed, w.Code)
			require.Equal(t, http.MethodGet, w.Header().Get("Allow"))
			require.JSONEq(t, fmt.Sprintf(`{"message":"Method %s Not Allowed"}`, method), w.Body.String())
		})
	}

	t.Run(http.MethodGet, func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com/api/v1/custom/settings", nil)

		// Act
		middleware.AllowMethods(d, http.MethodGet)(teapotHandler()).ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusTeapot, w.Code)
	})
}
