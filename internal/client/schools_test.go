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

func TestSchoolsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The absent trailing identifier must not leave an empty segment.
		assert.Equal(t, "/api/v5/schools/", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "test-cert", r.Header.Get("AERIES-CERT"))

		schools := []aeries.School{
			{SchoolCode: 990, Name: "Screaming Eagle High School"},
			{SchoolCode: 994, Name: "Golden Eagle Elementary"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(schools)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	schools, err := client.Schools().List(context.Background())
	require.NoError(t, err)
	require.Len(t, schools, 2)
	assert.Equal(t, 990, schools[0].SchoolCode)
	assert.Equal(t, "Golden Eagle Elementary", schools[1].Name)
}

func TestSchoolsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/schools/990/", r.URL.Path)

		school := aeries.School{
			SchoolCode:     990,
			Name:           "Screaming Eagle High School",
			LowGradeLevel:  9,
			HighGradeLevel: 12,
			Terms: []aeries.Term{
				{SchoolCode: 990, TermCode: "F", TermDescription: "Fall"},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(school)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	school, err := client.Schools().Get(context.Background(), 990)
	require.NoError(t, err)
	assert.Equal(t, 990, school.SchoolCode)
	assert.Equal(t, 12, school.HighGradeLevel)
	require.Len(t, school.Terms, 1)
	assert.Equal(t, "F", school.Terms[0].TermCode)
}

func TestSchoolsClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"Message":"School not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Schools().Get(context.Background(), 12)
	require.Error(t, err)
	assert.True(t, aeries.IsNotFound(err))
}

func TestSchoolsClient_Terms(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/schools/990/terms/", r.URL.Path)

		terms := []aeries.Term{
			{SchoolCode: 990, TermCode: "F", TermDescription: "Fall", StartDate: "2025-08-11", EndDate: "2025-12-19"},
			{SchoolCode: 990, TermCode: "S", TermDescription: "Spring", StartDate: "2026-01-06", EndDate: "2026-06-04"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(terms)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	terms, err := client.Schools().Terms(context.Background(), 990)
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.Equal(t, "Spring", terms[1].TermDescription)
}

func TestSchoolsClient_BellSchedule(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/schools/990/BellSchedule/", r.URL.Path)

		periods := []aeries.BellSchedulePeriod{
			{SchoolCode: 990, Period: 1, StartTime: "08:00", EndTime: "08:52"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(periods)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	periods, err := client.Schools().BellSchedule(context.Background(), 990)
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, 1, periods[0].Period)
}

func TestSchoolsClient_AbsenceCodes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/schools/990/AbsenceCodes/", r.URL.Path)

		codes := []aeries.AbsenceCode{
			{SchoolCode: 990, Code: "I", Abbreviation: "ILL", Description: "Illness", Type: "Excused"},
			{SchoolCode: 990, Code: "U", Abbreviation: "UNX", Description: "Unexcused", Type: "Unexcused"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(codes)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	codes, err := client.Schools().AbsenceCodes(context.Background(), 990)
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, "Illness", codes[0].Description)
}
