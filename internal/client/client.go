// Package client implements the aeries.Client interface on top of the shared
// HTTP core.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/aeries-io/aeries/internal/constants"
	"github.com/aeries-io/aeries/internal/http"
	"github.com/aeries-io/aeries/pkg/aeries"
)

// Client implements the aeries.Client interface.
type Client struct {
	httpClient *http.Client
	version    string

	// Resource clients
	schools    aeries.SchoolsClient
	students   aeries.StudentsClient
	attendance aeries.AttendanceClient
	enrollment aeries.EnrollmentClient
	grades     aeries.GradesClient
	staff      aeries.StaffClient
	teachers   aeries.TeachersClient
	sections   aeries.SectionsClient
	courses    aeries.CoursesClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *aeries.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.SkipTLSVerify {
		httpOpts = append(httpOpts, http.WithSkipTLSVerify(true))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := config.RetryWaitMin
		if retryWaitMin <= 0 {
			retryWaitMin = constants.DefaultRetryWaitMin
		}

		retryWaitMax := config.RetryWaitMax
		if retryWaitMax <= 0 {
			retryWaitMax = constants.DefaultRetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Aeries API client.
func New(config *aeries.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, aeries.ErrBaseURLRequired
	}

	httpClient := http.NewClient(config.BaseURL, config.Certificate, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		version:    config.APIVersion,
	}

	client.initializeResourceClients()

	return client, nil
}

// SystemInfo implements aeries.Client.SystemInfo.
func (c *Client) SystemInfo(ctx context.Context) (*aeries.SystemInfo, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil, aeries.Seg("systeminfo"))
	if err != nil {
		return nil, fmt.Errorf("getting system info: %w", err)
	}

	var info aeries.SystemInfo

	err = decodeResponse(resp, &info)
	if err != nil {
		return nil, err
	}

	return &info, nil
}

// Raw implements aeries.Client.Raw. The result carries the status code
// unchanged; a body that is not valid JSON is handed back as raw text
// alongside a *aeries.ParseError rather than discarded.
func (c *Client) Raw(ctx context.Context, version string, query url.Values, segments ...aeries.Segment) (*aeries.Result, error) {
	if version == "" {
		version = c.version
	}

	resp, err := c.httpClient.Get(ctx, version, query, segments...)
	if err != nil {
		return &aeries.Result{StatusCode: resp.StatusCode}, err
	}

	result := &aeries.Result{StatusCode: resp.StatusCode}
	if resp.Body == nil {
		return result, nil
	}

	var body json.RawMessage
	if jsonErr := json.Unmarshal(resp.Body, &body); jsonErr != nil {
		result.Raw = string(resp.Body)

		return result, &aeries.ParseError{StatusCode: resp.StatusCode, Raw: result.Raw, Err: jsonErr}
	}

	result.Body = body

	return result, nil
}

// Resource client accessors

// Schools implements aeries.Client.Schools.
func (c *Client) Schools() aeries.SchoolsClient {
	return c.schools
}

// Students implements aeries.Client.Students.
func (c *Client) Students() aeries.StudentsClient {
	return c.students
}

// Attendance implements aeries.Client.Attendance.
func (c *Client) Attendance() aeries.AttendanceClient {
	return c.attendance
}

// Enrollment implements aeries.Client.Enrollment.
func (c *Client) Enrollment() aeries.EnrollmentClient {
	return c.enrollment
}

// Grades implements aeries.Client.Grades.
func (c *Client) Grades() aeries.GradesClient {
	return c.grades
}

// Staff implements aeries.Client.Staff.
func (c *Client) Staff() aeries.StaffClient {
	return c.staff
}

// Teachers implements aeries.Client.Teachers.
func (c *Client) Teachers() aeries.TeachersClient {
	return c.teachers
}

// Sections implements aeries.Client.Sections.
func (c *Client) Sections() aeries.SectionsClient {
	return c.sections
}

// Courses implements aeries.Client.Courses.
func (c *Client) Courses() aeries.CoursesClient {
	return c.courses
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.schools = NewSchoolsClient(c.httpClient, c.version)
	c.students = NewStudentsClient(c.httpClient, c.version)
	c.attendance = NewAttendanceClient(c.httpClient, c.version)
	c.enrollment = NewEnrollmentClient(c.httpClient, c.version)
	c.grades = NewGradesClient(c.httpClient, c.version)
	c.staff = NewStaffClient(c.httpClient, c.version)
	c.teachers = NewTeachersClient(c.httpClient, c.version)
	c.sections = NewSectionsClient(c.httpClient, c.version)
	c.courses = NewCoursesClient(c.httpClient, c.version)
}

// loggerAdapter adapts aeries.Logger to http.Logger.
type loggerAdapter struct {
	logger aeries.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
