package aeries

import (
	"context"
	"encoding/json"
	"net/url"
	"time"
)

// DefaultAPIVersion is the Aeries API version used when a caller does not
// supply one.
const DefaultAPIVersion = "v5"

// CertificateHeader is the header that carries the API certificate on every
// request. An empty certificate still sends the header with an empty value;
// rejecting it is the upstream API's job.
const CertificateHeader = "AERIES-CERT"

// SchoolsClient provides access to school-level resources.
type SchoolsClient interface {
	List(ctx context.Context) ([]School, error)
	Get(ctx context.Context, schoolCode int) (*School, error)
	Terms(ctx context.Context, schoolCode int) ([]Term, error)
	Calendar(ctx context.Context, schoolCode int) ([]CalendarDay, error)
	BellSchedule(ctx context.Context, schoolCode int) ([]BellSchedulePeriod, error)
	AbsenceCodes(ctx context.Context, schoolCode int) ([]AbsenceCode, error)
}

// StudentsClient provides access to student demographics and per-student
// supporting records.
type StudentsClient interface {
	List(ctx context.Context, schoolCode int) ([]Student, error)
	// Get returns a slice even for a single ID: a student concurrently
	// enrolled in more than one school has one record per school.
	Get(ctx context.Context, schoolCode, studentID int) ([]Student, error)
	ByGrade(ctx context.Context, schoolCode, grade int) ([]Student, error)
	Contacts(ctx context.Context, schoolCode, studentID int) ([]Contact, error)
	Programs(ctx context.Context, schoolCode, studentID int) ([]StudentProgram, error)
	TestScores(ctx context.Context, schoolCode, studentID int) ([]TestScore, error)
	Discipline(ctx context.Context, schoolCode, studentID int) ([]DisciplineIncident, error)
	Fees(ctx context.Context, schoolCode, studentID int) ([]Fee, error)
	Picture(ctx context.Context, schoolCode, studentID int) ([]StudentPicture, error)
	Groups(ctx context.Context, schoolCode int) ([]StudentGroup, error)
	ClassSchedule(ctx context.Context, schoolCode, studentID int) ([]ClassAssignment, error)
}

// AttendanceClient provides access to attendance history.
type AttendanceClient interface {
	Summary(ctx context.Context, schoolCode, studentID int) ([]AttendanceSummary, error)
	Details(ctx context.Context, schoolCode, studentID int) ([]AttendanceDetail, error)
}

// EnrollmentClient provides access to enrollment history.
type EnrollmentClient interface {
	History(ctx context.Context, studentID, year int) ([]Enrollment, error)
}

// GradesClient provides access to gradebooks, assignments, and GPAs.
type GradesClient interface {
	Gradebooks(ctx context.Context, schoolCode, sectionNumber int) ([]Gradebook, error)
	Gradebook(ctx context.Context, gradebookNumber int) (*Gradebook, error)
	Assignments(ctx context.Context, gradebookNumber int) ([]Assignment, error)
	FinalMarks(ctx context.Context, gradebookNumber int) ([]FinalMark, error)
	GPAs(ctx context.Context, schoolCode, studentID int) ([]GPA, error)
}

// StaffClient provides access to district staff records.
type StaffClient interface {
	List(ctx context.Context) ([]Staff, error)
	Get(ctx context.Context, staffID int) (*Staff, error)
}

// TeachersClient provides access to school teacher records.
type TeachersClient interface {
	BySchool(ctx context.Context, schoolCode int) ([]Teacher, error)
	Get(ctx context.Context, schoolCode, teacherNumber int) (*Teacher, error)
}

// SectionsClient provides access to course sections and rosters.
type SectionsClient interface {
	List(ctx context.Context, schoolCode int) ([]Section, error)
	Get(ctx context.Context, schoolCode, sectionNumber int) (*Section, error)
	Roster(ctx context.Context, schoolCode, sectionNumber int) ([]RosterEntry, error)
}

// CoursesClient provides access to the district course catalogue.
type CoursesClient interface {
	List(ctx context.Context) ([]Course, error)
	Get(ctx context.Context, courseID string) (*Course, error)
}

// Client is the top-level Aeries API client.
type Client interface {
	SystemInfo(ctx context.Context) (*SystemInfo, error)

	Schools() SchoolsClient
	Students() StudentsClient
	Attendance() AttendanceClient
	Enrollment() EnrollmentClient
	Grades() GradesClient
	Staff() StaffClient
	Teachers() TeachersClient
	Sections() SectionsClient
	Courses() CoursesClient

	// Raw issues a GET against an endpoint assembled from version and
	// segments, with query applied to the built URL, and returns the
	// uninterpreted result. It is the escape hatch for endpoints that have
	// no typed accessor.
	Raw(ctx context.Context, version string, query url.Values, segments ...Segment) (*Result, error)
}

// Result is the uninterpreted outcome of one Raw call. Exactly one of Body
// and Raw is set when the response carried a body: Body holds valid JSON,
// Raw holds the unparsed text when JSON decoding failed. Both are empty for
// a bodyless response.
type Result struct {
	StatusCode int             `json:"status_code"    yaml:"status_code"`
	Body       json.RawMessage `json:"body,omitempty" yaml:"body,omitempty"`
	Raw        string          `json:"raw,omitempty"  yaml:"raw,omitempty"`
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an aeries.Client.
//
// # Credential
//
// Certificate is the static AERIES-CERT header value issued by the district's
// Aeries installation. It is sent on every request; when unset the header is
// sent with an empty value and the upstream API rejects the call.
//
// # TLS
//
// SkipTLSVerify disables certificate verification on this client's transport
// only. It is scoped to the client instance, never to the process; two
// clients in one process can hold different settings.
//
// # Timeouts and retries
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods. The client issues exactly one request per call unless
// RetryMax is set above zero.
type Config struct {
	// BaseURL: base URL of the Aeries installation, conventionally with a
	// trailing slash (e.g., "https://demo.aeries.net/aeries/").
	// aeriesclient.New normalizes this value by ensuring a trailing slash
	// and adding "https://" if no scheme is present.
	BaseURL string

	// Certificate: static API certificate sent in the AERIES-CERT header.
	Certificate string

	// APIVersion: endpoint version segment. Defaults to DefaultAPIVersion.
	APIVersion string

	// SkipTLSVerify: disable TLS certificate verification for this client's
	// transport. Intended for self-hosted installations with self-signed
	// certificates; do not use against hosted districts.
	SkipTLSVerify bool

	// HTTPTimeout: optional transport-level timeout. Zero means the
	// transport default.
	HTTPTimeout time.Duration

	// RetryMax: maximum number of retries for transient failures. Zero
	// (the default) disables retries entirely.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
