package migrations_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint/migrations"
)

func TestAllOrdered(t *testing.T) {
	seen := make(map[string]bool)
	for i, m := range migrations.All {
		require.NotNil(t, m.Executor, m.Key)
		require.False(t, seen[m.Key], "duplicate key %s", m.Key)
		seen[m.Key] = true

		if i > 0 {
			require.Negative(t, strings.Compare(migrations.All[i-1].Key, m.Key))
		}
	}
}
