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

func TestGradesClient_Gradebooks(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/schools/990/sections/44/gradebooks/", r.URL.Path)

		gradebooks := []aeries.Gradebook{
			{GradebookNumber: 4406570, Name: "Biology P2", SchoolCode: 990, SectionNumber: 44, Period: 2},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gradebooks)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	gradebooks, err := client.Grades().Gradebooks(context.Background(), 990, 44)
	require.NoError(t, err)
	require.Len(t, gradebooks, 1)
	assert.Equal(t, "Biology P2", gradebooks[0].Name)
}

func TestGradesClient_Gradebook(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/gradebooks/4406570/", r.URL.Path)

		gradebook := aeries.Gradebook{GradebookNumber: 4406570, Name: "Biology P2", TermCode: "F"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gradebook)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	gradebook, err := client.Grades().Gradebook(context.Background(), 4406570)
	require.NoError(t, err)
	assert.Equal(t, 4406570, gradebook.GradebookNumber)
	assert.Equal(t, "F", gradebook.TermCode)
}

func TestGradesClient_Assignments(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/gradebooks/4406570/assignments/", r.URL.Path)

		assignments := []aeries.Assignment{
			{GradebookNumber: 4406570, AssignmentNumber: 1, Description: "Cell structure lab", NumberCorrectPossible: 25},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(assignments)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	assignments, err := client.Grades().Assignments(context.Background(), 4406570)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "Cell structure lab", assignments[0].Description)
}

func TestGradesClient_FinalMarks(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/gradebooks/4406570/FinalMarks/", r.URL.Path)

		marks := []aeries.FinalMark{
			{GradebookNumber: 4406570, Mark: "A", LowPercentage: 90, HighPercentage: 100},
			{GradebookNumber: 4406570, Mark: "B", LowPercentage: 80, HighPercentage: 89.9},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(marks)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	marks, err := client.Grades().FinalMarks(context.Background(), 4406570)
	require.NoError(t, err)
	require.Len(t, marks, 2)
	assert.Equal(t, "A", marks[0].Mark)
}

func TestGradesClient_GPAs(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/schools/990/gpas/99400001/", r.URL.Path)

		gpas := []aeries.GPA{
			{PermanentID: 99400001, SchoolCode: 990, CumulativeWeightedGPA: 3.82, ClassRank: 14, ClassSize: 402},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gpas)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	gpas, err := client.Grades().GPAs(context.Background(), 990, 99400001)
	require.NoError(t, err)
	require.Len(t, gpas, 1)
	assert.InEpsilon(t, 3.82, gpas[0].CumulativeWeightedGPA, 0.001)
}
