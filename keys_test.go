package waypoint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
)

func TestKeyString(t *testing.T) {
	require.Equal(t, "waypoint context key: ClaimsKey", waypoint.ClaimsKey.String())
	require.Equal(t, "waypoint context key: ", waypoint.Key("").String())
}

func TestKeyCollision(t *testing.T) {
	// Arrange
	ctx := context.WithValue(context.Background(), waypoint.RequestIDKey, "id")

	// Act + Assert
	require.Equal(t, "id", ctx.Value(waypoint.RequestIDKey))
	require.Nil(t, ctx.Value("RequestIDKey"))
}
