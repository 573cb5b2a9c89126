package client

import (
	"testing"

	internalhttp "github.com/aeries-io/aeries/internal/http"
	"github.com/aeries-io/aeries/pkg/aeries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDecodeResponse(t *testing.T) {
	t.Parallel()

	t.Run("valid JSON is decoded", func(t *testing.T) {
		t.Parallel()

		var school aeries.School

		resp := &internalhttp.Response{StatusCode: 200, Body: []byte(`{"SchoolCode":990,"Name":"Eagle High"}`)}
		err := decodeResponse(resp, &school)
		require.NoError(t, err)
		assert.Equal(t, 990, school.SchoolCode)
		assert.Equal(t, "Eagle High", school.Name)
	})

	t.Run("empty body leaves target untouched", func(t *testing.T) {
		t.Parallel()

		school := aeries.School{SchoolCode: 1}

		resp := &internalhttp.Response{StatusCode: 200}
		err := decodeResponse(resp, &school)
		require.NoError(t, err)
		assert.Equal(t, 1, school.SchoolCode)
	})

	t.Run("non-JSON body keeps raw text", func(t *testing.T) {
		t.Parallel()

		var school aeries.School

		resp := &internalhttp.Response{StatusCode: 200, Body: []byte("<html>maintenance</html>")}
		err := decodeResponse(resp, &school)
		require.Error(t, err)

		parseErr := &aeries.ParseError{}
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 200, parseErr.StatusCode)
		assert.Equal(t, "<html>maintenance</html>", parseErr.Raw)
	})

	t.Run("error status with Aeries payload", func(t *testing.T) {
		t.Parallel()

		resp := &internalhttp.Response{
			StatusCode: 401,
			Body:       []byte(`{"Message":"Authorization has been denied for this request."}`),
		}
		err := decodeResponse(resp, nil)
		require.Error(t, err)

		apiErr := &aeries.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.StatusCode)
		assert.Equal(t, "Authorization has been denied for this request.", apiErr.Message)
		assert.True(t, aeries.IsUnauthorized(err))
	})

	t.Run("error status with non-JSON body", func(t *testing.T) {
		t.Parallel()

		resp := &internalhttp.Response{StatusCode: 502, Body: []byte("Bad Gateway")}
		err := decodeResponse(resp, nil)
		require.Error(t, err)

		apiErr := &aeries.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 502, apiErr.StatusCode)
		assert.Equal(t, "Bad Gateway", apiErr.Message)
	})

	t.Run("error status with no body", func(t *testing.T) {
		t.Parallel()

		resp := &internalhttp.Response{StatusCode: 404}
		err := decodeResponse(resp, nil)
		require.Error(t, err)
		assert.True(t, aeries.IsNotFound(err))
	})
}
