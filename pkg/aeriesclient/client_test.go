package aeriesclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aeries-io/aeries/pkg/aeries"
	"github.com/aeries-io/aeries/pkg/aeriesclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &aeries.Config{
			BaseURL:     "https://demo.aeries.net/aeries",
			Certificate: "test-cert",
		}

		client, err := aeriesclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := aeriesclient.New(nil)
		require.ErrorIs(t, err, aeries.ErrConfigRequired)
	})

	t.Run("missing base URL", func(t *testing.T) {
		t.Parallel()

		_, err := aeriesclient.New(&aeries.Config{Certificate: "test-cert"})
		require.ErrorIs(t, err, aeries.ErrBaseURLRequired)
	})
}

func TestNewWithCertificate(t *testing.T) {
	t.Parallel()

	client, err := aeriesclient.NewWithCertificate("https://demo.aeries.net/aeries", "test-cert")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNew_NormalizesBaseURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/aeries/api/v5/systeminfo/", r.URL.Path)

		info := aeries.SystemInfo{AeriesVersion: "16.0.1.20"}

		_ = json.NewEncoder(w).Encode(info)
	}))
	defer server.Close()

	// No trailing slash on the configured endpoint.
	client, err := aeriesclient.NewWithCertificate(server.URL+"/aeries", "test-cert")
	require.NoError(t, err)

	info, err := client.SystemInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "16.0.1.20", info.AeriesVersion)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v5/schools/":
			schools := []aeries.School{
				{SchoolCode: 990, Name: "Screaming Eagle High School"},
			}
			_ = json.NewEncoder(w).Encode(schools)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := aeriesclient.NewWithCertificate(server.URL, "test-cert")
	require.NoError(t, err)

	schools, err := client.Schools().List(context.Background())
	require.NoError(t, err)
	require.Len(t, schools, 1)
	assert.Equal(t, "Screaming Eagle High School", schools[0].Name)
}
