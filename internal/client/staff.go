package client

import (
	"context"
	"fmt"

	"github.com/aeries-io/aeries/internal/http"
	"github.com/aeries-io/aeries/pkg/aeries"
)

// StaffClient implements aeries.StaffClient.
type StaffClient struct {
	httpClient *http.Client
	version    string
}

// NewStaffClient creates a new staff client.
func NewStaffClient(httpClient *http.Client, version string) *StaffClient {
	return &StaffClient{
		httpClient: httpClient,
		version:    version,
	}
}

// List implements aeries.StaffClient.List.
func (c *StaffClient) List(ctx context.Context) ([]aeries.Staff, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil, aeries.Seg("staff"), aeries.Absent)
	if err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}

	var staff []aeries.Staff

	err = decodeResponse(resp, &staff)
	if err != nil {
		return nil, err
	}

	return staff, nil
}

// Get implements aeries.StaffClient.Get.
func (c *StaffClient) Get(ctx context.Context, staffID int) (*aeries.Staff, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil, aeries.Seg("staff"), aeries.SegInt(staffID))
	if err != nil {
		return nil, fmt.Errorf("getting staff member: %w", err)
	}

	var staff aeries.Staff

	err = decodeResponse(resp, &staff)
	if err != nil {
		return nil, err
	}

	return &staff, nil
}

// TeachersClient implements aeries.TeachersClient.
type TeachersClient struct {
	httpClient *http.Client
	version    string
}

// NewTeachersClient creates a new teachers client.
func NewTeachersClient(httpClient *http.Client, version string) *TeachersClient {
	return &TeachersClient{
		httpClient: httpClient,
		version:    version,
	}
}

// BySchool implements aeries.TeachersClient.BySchool.
func (c *TeachersClient) BySchool(ctx context.Context, schoolCode int) ([]aeries.Teacher, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode), aeries.Seg("teachers"), aeries.Absent)
	if err != nil {
		return nil, fmt.Errorf("listing teachers: %w", err)
	}

	var teachers []aeries.Teacher

	err = decodeResponse(resp, &teachers)
	if err != nil {
		return nil, err
	}

	return teachers, nil
}

// Get implements aeries.TeachersClient.Get.
func (c *TeachersClient) Get(ctx context.Context, schoolCode, teacherNumber int) (*aeries.Teacher, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode), aeries.Seg("teachers"), aeries.SegInt(teacherNumber))
	if err != nil {
		return nil, fmt.Errorf("getting teacher: %w", err)
	}

	var teacher aeries.Teacher

	err = decodeResponse(resp, &teacher)
	if err != nil {
		return nil, err
	}

	return &teacher, nil
}
