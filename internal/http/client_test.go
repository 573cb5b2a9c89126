package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	aerieshttp "github.com/aeries-io/aeries/internal/http"
	"github.com/aeries-io/aeries/pkg/aeries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v5/schools/990/", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-cert", request.Header.Get("AERIES-CERT"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]interface{}{"SchoolCode": 990, "Name": "Screaming Eagle High"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := aerieshttp.NewClient(server.URL, "test-cert")

		resp, err := client.Get(context.Background(), "v5", nil, aeries.Seg("schools"), aeries.SegInt(990))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]interface{}

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "Screaming Eagle High", result["Name"])
	})

	t.Run("empty certificate still sends the header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			values, ok := request.Header["Aeries-Cert"]
			assert.True(t, ok)
			assert.Equal(t, []string{""}, values)
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := aerieshttp.NewClient(server.URL, "")

		resp, err := client.Get(context.Background(), "", nil, aeries.Seg("schools"))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v5/schools/990/students/", request.URL.Path)
			assert.Equal(t, "1", request.URL.Query().Get("StartingRecord"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := aerieshttp.NewClient(server.URL, "test-cert")

		resp, err := client.Get(context.Background(), "v5",
			url.Values{"StartingRecord": []string{"1"}},
			aeries.Seg("schools"), aeries.SegInt(990), aeries.Seg("students"))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("non-2xx status is not an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := aerieshttp.NewClient(server.URL, "test-cert")

		resp, err := client.Get(context.Background(), "v5", nil, aeries.Seg("schools"), aeries.SegInt(12))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.Nil(t, resp.Body)
	})

	t.Run("empty body yields nil body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := aerieshttp.NewClient(server.URL, "test-cert")

		resp, err := client.Get(context.Background(), "v5", nil, aeries.Seg("systeminfo"))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Nil(t, resp.Body)
	})

	t.Run("transport failure reports status 500", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close() // connection refused from here on

		client := aerieshttp.NewClient(server.URL, "test-cert")

		resp, err := client.Get(context.Background(), "v5", nil, aeries.Seg("schools"))
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Nil(t, resp.Body)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := aerieshttp.NewClient(server.URL, "test-cert")

		resp, err := client.Do(context.Background(), &aerieshttp.Request{
			Segments: []aeries.Segment{aeries.Seg("schools")},
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := aerieshttp.NewClient(server.URL, "test-cert", aerieshttp.WithLogger(logger), aerieshttp.WithDebug(true))

		_, err := client.Get(context.Background(), "v5", nil, aeries.Seg("schools"))
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("user agent override", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "district-sync/2.1", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := aerieshttp.NewClient(server.URL, "test-cert", aerieshttp.WithUserAgent("district-sync/2.1"))

		_, err := client.Get(context.Background(), "v5", nil, aeries.Seg("schools"))
		require.NoError(t, err)
	})
}

func TestClient_RetryConfig(t *testing.T) {
	t.Parallel()
	t.Run("no retries by default", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := aerieshttp.NewClient(server.URL, "test-cert")

		resp, err := client.Get(context.Background(), "v5", nil, aeries.Seg("schools"))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries on 5xx when configured", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := aerieshttp.NewClient(server.URL, "test-cert",
			aerieshttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "v5", nil, aeries.Seg("schools"))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})
}
