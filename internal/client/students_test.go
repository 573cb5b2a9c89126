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

func TestStudentsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/schools/990/students/", r.URL.Path)

		students := []aeries.Student{
			{PermanentID: 99400001, SchoolCode: 990, FirstName: "Allan", LastName: "Abbott", Grade: 10},
			{PermanentID: 99400002, SchoolCode: 990, FirstName: "Brenda", LastName: "Baker", Grade: 11},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(students)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	students, err := client.Students().List(context.Background(), 990)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Abbott", students[0].LastName)
}

func TestStudentsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Same template as List with the trailing identifier present.
		assert.Equal(t, "/api/v5/schools/990/students/99400001/", r.URL.Path)

		students := []aeries.Student{
			{PermanentID: 99400001, SchoolCode: 990, FirstName: "Allan", LastName: "Abbott", Grade: 10},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(students)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	students, err := client.Students().Get(context.Background(), 990, 99400001)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, 99400001, students[0].PermanentID)
}

func TestStudentsClient_ByGrade(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/schools/990/students/grade/12/", r.URL.Path)

		students := []aeries.Student{
			{PermanentID: 99400003, SchoolCode: 990, Grade: 12},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(students)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	students, err := client.Students().ByGrade(context.Background(), 990, 12)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, 12, students[0].Grade)
}

func TestStudentsClient_Contacts(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/schools/990/students/99400001/contacts/", r.URL.Path)

		contacts := []aeries.Contact{
			{PermanentID: 99400001, SequenceNumber: 1, FirstName: "Carol", LastName: "Abbott", RelationshipToStudentCode: "M"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(contacts)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	contacts, err := client.Students().Contacts(context.Background(), 990, 99400001)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "M", contacts[0].RelationshipToStudentCode)
}

func TestStudentsClient_TestScores(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/schools/990/students/99400001/tests/", r.URL.Path)

		scores := []aeries.TestScore{
			{
				PermanentID:     99400001,
				TestID:          "SBAC",
				TestDescription: "Smarter Balanced",
				Parts: []aeries.TestPart{
					{PartNumber: 1, PartDescription: "ELA", Scores: []aeries.TestValue{{Type: "ScaleScore", Score: 2540}}},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(scores)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	scores, err := client.Students().TestScores(context.Background(), 990, 99400001)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	require.Len(t, scores[0].Parts, 1)
	assert.InEpsilon(t, 2540.0, scores[0].Parts[0].Scores[0].Score, 0.001)
}

func TestStudentsClient_Fees(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/schools/990/students/99400001/fees/", r.URL.Path)

		fees := []aeries.Fee{
			{PermanentID: 99400001, FeeCode: "LIB", Description: "Lost library book", AmountCharged: 12.50},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(fees)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	fees, err := client.Students().Fees(context.Background(), 990, 99400001)
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.InEpsilon(t, 12.50, fees[0].AmountCharged, 0.001)
}

func TestStudentsClient_ClassSchedule(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/schools/990/students/99400001/classes/", r.URL.Path)

		schedule := []aeries.ClassAssignment{
			{PermanentID: 99400001, SectionNumber: 44, Period: 2, CourseID: "0254", CourseTitle: "Biology"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(schedule)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	schedule, err := client.Students().ClassSchedule(context.Background(), 990, 99400001)
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, "Biology", schedule[0].CourseTitle)
}

func TestStudentsClient_Groups(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/schools/990/StudentGroups/", r.URL.Path)

		groups := []aeries.StudentGroup{
			{SchoolCode: 990, GroupCode: "AVID", Description: "AVID Program", StudentIDs: []int{99400001}},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(groups)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	groups, err := client.Students().Groups(context.Background(), 990)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "AVID", groups[0].GroupCode)
}
