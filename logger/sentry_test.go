package logger

import (
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/require"
)

func TestScrubEvent(t *testing.T) {
	// Arrange
	event := &sentry.Event{
		Request: &sentry.Request{
			URL:         "https://waypoint.example.com/api/v1/custom/settings",
			Method:      "GET",
			QueryString: "app=zoom&access_token=abc",
			Cookies:     "sb-access-token=abc",
			Headers: map[string]string{
				"Authorization": "Bearer abc.def.ghi",
				"apikey":        "anon",
				"Accept":        "application/json",
			},
		},
	}

	// Act
	actual := scrubEvent(event, nil)

	// Assert
	require.Equal(t, "", actual.Request.Cookies)
	require.Equal(t, logMaskVal, actual.Request.Headers["Authorization"])
	require.Equal(t, logMaskVal, actual.Request.Headers["apikey"])
	require.Equal(t, "application/json", actual.Request.Headers["Accept"])
	require.Contains(t, actual.Request.QueryString, "app=zoom")
	require.NotContains(t, actual.Request.QueryString, "abc")

	// Act
	require.Nil(t, scrubEvent(nil, nil))
	require.Equal(t, new(sentry.Event), scrubEvent(new(sentry.Event), nil))
}
