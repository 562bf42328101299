package settings_test

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/auth"
	"github.com/xy-planning-network/waypoint/http/resp"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/mocks"
	"github.com/xy-planning-network/waypoint/settings"
)

const endpoint = "https://example.com/api/v1/custom/settings"

var claims = auth.Claims{
	RegisteredClaims: jwt.RegisteredClaims{Subject: "8a7b7c3e-5d6f-4e21-9a0b-1c2d3e4f5a6b"},
	Email:            "husserl@example.com",
}

func newResponder(b *bytes.Buffer) *resp.Responder {
	l := logger.NewLogger(logger.WithLogger(log.New(b, "", 0)))
	return resp.NewResponder(resp.WithLogger(l))
}

func newRequest(c *auth.Claims) *http.Request {
	r := httptest.NewRequest(http.MethodGet, endpoint, nil)
	if c != nil {
		r = r.WithContext(auth.NewClaimsContext(r.Context(), *c))
	}

	return r
}

func TestHandlerGet(t *testing.T) {
	t.Run("No-Claims", func(t *testing.T) {
		// Arrange
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserFinder(ctrl)
		h := settings.NewHandler(newResponder(new(bytes.Buffer)), users)
		w := httptest.NewRecorder()

		// Act
		h.Get(w, newRequest(nil))

		// Assert
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.JSONEq(t, `{"message":"User email or ID not found in authentication token."}`, w.Body.String())
	})

	for _, c := range []auth.Claims{
		{RegisteredClaims: jwt.RegisteredClaims{Subject: claims.Subject}},
		{Email: claims.Email},
	} {
		c := c
		t.Run(fmt.Sprintf("Incomplete-Claims-%s%s", c.Subject, c.Email), func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			users := mocks.NewMockUserFinder(ctrl)
			h := settings.NewHandler(newResponder(new(bytes.Buffer)), users)
			w := httptest.NewRecorder()

			// Act
			h.Get(w, newRequest(&c))

			// Assert
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.JSONEq(t, `{"message":"User email or ID not found in authentication token."}`, w.Body.String())
		})
	}

	t.Run("Not-Found", func(t *testing.T) {
		// Arrange
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserFinder(ctrl)
		users.EXPECT().
			FindUserByEmail(gomock.Any(), claims.Email).
			Return(nil, fmt.Errorf("%w: *waypoint.User", waypoint.ErrNotFound))

		h := settings.NewHandler(newResponder(new(bytes.Buffer)), users)
		w := httptest.NewRecorder()

		// Act
		h.Get(w, newRequest(&claims))

		// Assert
		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"message":"Cal.com user with email husserl@example.com not found."}`, w.Body.String())
	})

	t.Run("Unexpected", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserFinder(ctrl)
		users.EXPECT().
			FindUserByEmail(gomock.Any(), claims.Email).
			Return(nil, fmt.Errorf("%w: connection refused", waypoint.ErrUnexpected))

		h := settings.NewHandler(newResponder(b), users)
		w := httptest.NewRecorder()

		// Act
		h.Get(w, newRequest(&claims))

		// Assert
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.JSONEq(t, `{"message":"Internal server error while fetching settings."}`, w.Body.String())
		require.Contains(t, b.String(), "connection refused")
		require.Contains(t, b.String(), claims.Email)
		require.Contains(t, b.String(), claims.Subject)
		require.Contains(t, b.String(), "/api/v1/custom/settings")
	})

	t.Run("Found", func(t *testing.T) {
		// Arrange
		username := "ehusserl"
		name := "Edmund Husserl"
		tz := "America/New_York"
		timeFormat := 24
		start, err := waypoint.NewTimeOfDay("09:00:00")
		require.Nil(t, err)
		end, err := waypoint.NewTimeOfDay("17:00:00")
		require.Nil(t, err)

		u := &waypoint.User{
			ID:         1,
			Username:   &username,
			Email:      claims.Email,
			Name:       &name,
			TimeZone:   "Europe/Berlin",
			WeekStart:  "Monday",
			TimeFormat: &timeFormat,
			Schedules: []waypoint.Schedule{
				{
					ID:       2,
					UserID:   1,
					Name:     "Working Hours",
					TimeZone: &tz,
					Availability: []waypoint.Availability{
						{ID: 3, Days: pq.Int64Array{1, 2, 3, 4, 5}, StartTime: start, EndTime: end},
					},
				},
				{ID: 4, UserID: 1, Name: "Empty"},
			},
		}

		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserFinder(ctrl)
		users.EXPECT().FindUserByEmail(gomock.Any(), claims.Email).Return(u, nil)

		h := settings.NewHandler(newResponder(new(bytes.Buffer)), users)
		w := httptest.NewRecorder()

		expected := `{
			"calcomUserId": 1,
			"supabaseUserId": "8a7b7c3e-5d6f-4e21-9a0b-1c2d3e4f5a6b",
			"username": "ehusserl",
			"email": "husserl@example.com",
			"name": "Edmund Husserl",
			"timeZone": "Europe/Berlin",
			"weekStart": "Monday",
			"timeFormat": 24,
			"hideBranding": false,
			"schedules": [
				{
					"id": 2,
					"name": "Working Hours",
					"timeZone": "America/New_York",
					"availability": [
						{"id": 3, "days": [1,2,3,4,5], "startTime": "1970-01-01T09:00:00.000Z", "endTime": "1970-01-01T17:00:00.000Z"}
					]
				},
				{"id": 4, "name": "Empty", "timeZone": null, "availability": []}
			]
		}`

		// Act
		h.Get(w, newRequest(&claims))

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/json; charset=UTF-8", w.Header().Get("Content-Type"))
		require.JSONEq(t, expected, w.Body.String())
	})
}
