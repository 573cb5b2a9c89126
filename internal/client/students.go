package client

import (
	"context"
	"fmt"

	"github.com/aeries-io/aeries/internal/http"
	"github.com/aeries-io/aeries/pkg/aeries"
)

// StudentsClient implements aeries.StudentsClient.
type StudentsClient struct {
	httpClient *http.Client
	version    string
}

// NewStudentsClient creates a new students client.
func NewStudentsClient(httpClient *http.Client, version string) *StudentsClient {
	return &StudentsClient{
		httpClient: httpClient,
		version:    version,
	}
}

// getStudents fetches the students endpoint with an optional trailing
// identifier. List and Get share the template; the identifier is simply
// absent for List.
func (c *StudentsClient) getStudents(ctx context.Context, schoolCode int, studentID aeries.Segment) ([]aeries.Student, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode), aeries.Seg("students"), studentID)
	if err != nil {
		return nil, fmt.Errorf("getting students: %w", err)
	}

	var students []aeries.Student

	err = decodeResponse(resp, &students)
	if err != nil {
		return nil, err
	}

	return students, nil
}

// List implements aeries.StudentsClient.List.
func (c *StudentsClient) List(ctx context.Context, schoolCode int) ([]aeries.Student, error) {
	return c.getStudents(ctx, schoolCode, aeries.Absent)
}

// Get implements aeries.StudentsClient.Get.
func (c *StudentsClient) Get(ctx context.Context, schoolCode, studentID int) ([]aeries.Student, error) {
	return c.getStudents(ctx, schoolCode, aeries.SegInt(studentID))
}

// ByGrade implements aeries.StudentsClient.ByGrade.
func (c *StudentsClient) ByGrade(ctx context.Context, schoolCode, grade int) ([]aeries.Student, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode), aeries.Seg("students"),
		aeries.Seg("grade"), aeries.SegInt(grade))
	if err != nil {
		return nil, fmt.Errorf("getting students by grade: %w", err)
	}

	var students []aeries.Student

	err = decodeResponse(resp, &students)
	if err != nil {
		return nil, err
	}

	return students, nil
}

// studentRecords fetches one per-student supporting record collection
// (contacts, programs, tests, ...) into target.
func (c *StudentsClient) studentRecords(ctx context.Context, schoolCode, studentID int, record string, target any) error {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode), aeries.Seg("students"),
		aeries.SegInt(studentID), aeries.Seg(record))
	if err != nil {
		return fmt.Errorf("getting student %s: %w", record, err)
	}

	return decodeResponse(resp, target)
}

// Contacts implements aeries.StudentsClient.Contacts.
func (c *StudentsClient) Contacts(ctx context.Context, schoolCode, studentID int) ([]aeries.Contact, error) {
	var contacts []aeries.Contact

	err := c.studentRecords(ctx, schoolCode, studentID, "contacts", &contacts)
	if err != nil {
		return nil, err
	}

	return contacts, nil
}

// Programs implements aeries.StudentsClient.Programs.
func (c *StudentsClient) Programs(ctx context.Context, schoolCode, studentID int) ([]aeries.StudentProgram, error) {
	var programs []aeries.StudentProgram

	err := c.studentRecords(ctx, schoolCode, studentID, "programs", &programs)
	if err != nil {
		return nil, err
	}

	return programs, nil
}

// TestScores implements aeries.StudentsClient.TestScores.
func (c *StudentsClient) TestScores(ctx context.Context, schoolCode, studentID int) ([]aeries.TestScore, error) {
	var scores []aeries.TestScore

	err := c.studentRecords(ctx, schoolCode, studentID, "tests", &scores)
	if err != nil {
		return nil, err
	}

	return scores, nil
}

// Discipline implements aeries.StudentsClient.Discipline.
func (c *StudentsClient) Discipline(ctx context.Context, schoolCode, studentID int) ([]aeries.DisciplineIncident, error) {
	var incidents []aeries.DisciplineIncident

	err := c.studentRecords(ctx, schoolCode, studentID, "discipline", &incidents)
	if err != nil {
		return nil, err
	}

	return incidents, nil
}

// Fees implements aeries.StudentsClient.Fees.
func (c *StudentsClient) Fees(ctx context.Context, schoolCode, studentID int) ([]aeries.Fee, error) {
	var fees []aeries.Fee

	err := c.studentRecords(ctx, schoolCode, studentID, "fees", &fees)
	if err != nil {
		return nil, err
	}

	return fees, nil
}

// Picture implements aeries.StudentsClient.Picture.
func (c *StudentsClient) Picture(ctx context.Context, schoolCode, studentID int) ([]aeries.StudentPicture, error) {
	var pictures []aeries.StudentPicture

	err := c.studentRecords(ctx, schoolCode, studentID, "StudentPictures", &pictures)
	if err != nil {
		return nil, err
	}

	return pictures, nil
}

// Groups implements aeries.StudentsClient.Groups.
func (c *StudentsClient) Groups(ctx context.Context, schoolCode int) ([]aeries.StudentGroup, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode), aeries.Seg("StudentGroups"))
	if err != nil {
		return nil, fmt.Errorf("listing student groups: %w", err)
	}

	var groups []aeries.StudentGroup

	err = decodeResponse(resp, &groups)
	if err != nil {
		return nil, err
	}

	return groups, nil
}

// ClassSchedule implements aeries.StudentsClient.ClassSchedule.
func (c *StudentsClient) ClassSchedule(ctx context.Context, schoolCode, studentID int) ([]aeries.ClassAssignment, error) {
	var schedule []aeries.ClassAssignment

	err := c.studentRecords(ctx, schoolCode, studentID, "classes", &schedule)
	if err != nil {
		return nil, err
	}

	return schedule, nil
}
