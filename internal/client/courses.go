package client

import (
	"context"
	"fmt"

	"github.com/aeries-io/aeries/internal/http"
	"github.com/aeries-io/aeries/pkg/aeries"
)

// CoursesClient implements aeries.CoursesClient.
type CoursesClient struct {
	httpClient *http.Client
	version    string
}

// NewCoursesClient creates a new courses client.
func NewCoursesClient(httpClient *http.Client, version string) *CoursesClient {
	return &CoursesClient{
		httpClient: httpClient,
		version:    version,
	}
}

// List implements aeries.CoursesClient.List.
func (c *CoursesClient) List(ctx context.Context) ([]aeries.Course, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil, aeries.Seg("courses"), aeries.Absent)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}

	var courses []aeries.Course

	err = decodeResponse(resp, &courses)
	if err != nil {
		return nil, err
	}

	return courses, nil
}

// Get implements aeries.CoursesClient.Get.
func (c *CoursesClient) Get(ctx context.Context, courseID string) (*aeries.Course, error) {
	if courseID == "" {
		return nil, aeries.ErrCourseIDRequired
	}

	resp, err := c.httpClient.Get(ctx, c.version, nil, aeries.Seg("courses"), aeries.Seg(courseID))
	if err != nil {
		return nil, fmt.Errorf("getting course: %w", err)
	}

	var course aeries.Course

	err = decodeResponse(resp, &course)
	if err != nil {
		return nil, err
	}

	return &course, nil
}
