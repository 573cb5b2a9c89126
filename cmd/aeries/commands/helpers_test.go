package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyJQ(t *testing.T) {
	t.Parallel()

	data := []map[string]any{
		{"SchoolCode": 990, "Name": "Screaming Eagle High School"},
		{"SchoolCode": 994, "Name": "Eagle Flight Continuation"},
	}

	t.Run("empty expression passes data through", func(t *testing.T) {
		t.Parallel()

		result, err := applyJQ(data, "")
		require.NoError(t, err)
		assert.Equal(t, data, result)
	})

	t.Run("selects a field", func(t *testing.T) {
		t.Parallel()

		result, err := applyJQ(data, ".[0].Name")
		require.NoError(t, err)
		assert.Equal(t, "Screaming Eagle High School", result)
	})

	t.Run("multiple results collect into a slice", func(t *testing.T) {
		t.Parallel()

		result, err := applyJQ(data, ".[].Name")
		require.NoError(t, err)
		assert.Equal(t, []any{"Screaming Eagle High School", "Eagle Flight Continuation"}, result)
	})

	t.Run("zsh escaped bang is repaired", func(t *testing.T) {
		t.Parallel()

		result, err := applyJQ(data, `.[] | select(.SchoolCode \!= 990) | .Name`)
		require.NoError(t, err)
		assert.Equal(t, "Eagle Flight Continuation", result)
	})

	t.Run("invalid expression", func(t *testing.T) {
		t.Parallel()

		_, err := applyJQ(data, ".[")
		require.Error(t, err)
	})
}
