package waypoint_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
)

func TestEnvironmentValid(t *testing.T) {
	require.Nil(t, waypoint.Production.Valid())
	require.ErrorIs(t, waypoint.Environment("MOON").Valid(), waypoint.ErrNotValid)
}

func TestEnvironmentOwnsSchema(t *testing.T) {
	for _, tc := range []struct {
		env      waypoint.Environment
		expected bool
	}{
		{waypoint.Development, true},
		{waypoint.Testing, true},
		{waypoint.Review, false},
		{waypoint.Staging, false},
		{waypoint.Production, false},
	} {
		t.Run(tc.env.String(), func(t *testing.T) {
			require.Equal(t, tc.expected, tc.env.OwnsSchema())
		})
	}
}

func TestEnvVarOrEnv(t *testing.T) {
	key := "WAYPOINT_TEST_ENV"

	require.Equal(t, waypoint.Development, waypoint.EnvVarOrEnv(key, waypoint.Development))

	t.Setenv(key, "staging")
	require.Equal(t, waypoint.Staging, waypoint.EnvVarOrEnv(key, waypoint.Development))

	t.Setenv(key, "moon")
	require.Equal(t, waypoint.Development, waypoint.EnvVarOrEnv(key, waypoint.Development))
}

func TestEnvVarOrHelpers(t *testing.T) {
	key := "WAYPOINT_TEST_VAL"

	require.True(t, waypoint.EnvVarOrBool(key, true))
	require.Equal(t, 3, waypoint.EnvVarOrInt(key, 3))
	require.Equal(t, time.Second, waypoint.EnvVarOrDuration(key, time.Second))
	require.Equal(t, "def", waypoint.EnvVarOrString(key, "def"))
	require.Equal(t, logger.LogLevelInfo, waypoint.EnvVarOrLogLevel(key, logger.LogLevelInfo))

	t.Setenv(key, "FALSE")
	require.False(t, waypoint.EnvVarOrBool(key, true))

	t.Setenv(key, "12")
	require.Equal(t, 12, waypoint.EnvVarOrInt(key, 3))

	t.Setenv(key, "250ms")
	require.Equal(t, 250*time.Millisecond, waypoint.EnvVarOrDuration(key, time.Second))

	t.Setenv(key, "debug")
	require.Equal(t, logger.LogLevelDebug, waypoint.EnvVarOrLogLevel(key, logger.LogLevelInfo))

	t.Setenv(key, "https://example.com/path")
	require.Equal(t, "https://example.com/path", waypoint.EnvVarOrURL(key, "http://localhost:3000").String())

	t.Setenv(key, "")
	require.Equal(t, "http://localhost:3000/", waypoint.EnvVarOrURL(key, "http://localhost:3000").String())
}
