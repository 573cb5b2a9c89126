package client

import (
	"context"
	"fmt"

	"github.com/aeries-io/aeries/internal/http"
	"github.com/aeries-io/aeries/pkg/aeries"
)

// AttendanceClient implements aeries.AttendanceClient.
type AttendanceClient struct {
	httpClient *http.Client
	version    string
}

// NewAttendanceClient creates a new attendance client.
func NewAttendanceClient(httpClient *http.Client, version string) *AttendanceClient {
	return &AttendanceClient{
		httpClient: httpClient,
		version:    version,
	}
}

// Summary implements aeries.AttendanceClient.Summary.
func (c *AttendanceClient) Summary(ctx context.Context, schoolCode, studentID int) ([]aeries.AttendanceSummary, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode),
		aeries.Seg("AttendanceHistory"), aeries.Seg("summary"), aeries.SegInt(studentID))
	if err != nil {
		return nil, fmt.Errorf("getting attendance summary: %w", err)
	}

	var summaries []aeries.AttendanceSummary

	err = decodeResponse(resp, &summaries)
	if err != nil {
		return nil, err
	}

	return summaries, nil
}

// Details implements aeries.AttendanceClient.Details.
func (c *AttendanceClient) Details(ctx context.Context, schoolCode, studentID int) ([]aeries.AttendanceDetail, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode),
		aeries.Seg("AttendanceHistory"), aeries.Seg("details"), aeries.SegInt(studentID))
	if err != nil {
		return nil, fmt.Errorf("getting attendance details: %w", err)
	}

	var details []aeries.AttendanceDetail

	err = decodeResponse(resp, &details)
	if err != nil {
		return nil, err
	}

	return details, nil
}
