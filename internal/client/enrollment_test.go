package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aeries-io/aeries/pkg/aeries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentClient_History(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/enrollment/99400001/year/2024/", r.URL.Path)

		history := []aeries.Enrollment{
			{PermanentID: 99400001, SchoolCode: 990, AcademicYear: 2024, Grade: 9, EntryDate: "2024-08-12"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(history)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	history, err := client.Enrollment().History(context.Background(), 99400001, 2024)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 2024, history[0].AcademicYear)
}

func TestEnrollmentClient_History_InvalidYear(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Enrollment().History(context.Background(), 99400001, 1975)
	require.ErrorIs(t, err, aeries.ErrInvalidYear)
	// The year is rejected before any network round trip.
	assert.Equal(t, 0, requests)
}

func TestEnrollmentClient_History_MinimumYearAccepted(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/enrollment/99400001/year/1990/", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	history, err := client.Enrollment().History(context.Background(), 99400001, 1990)
	require.NoError(t, err)
	assert.Empty(t, history)
}
