package client

import (
	"context"
	"fmt"

	"github.com/aeries-io/aeries/internal/http"
	"github.com/aeries-io/aeries/pkg/aeries"
)

// SchoolsClient implements aeries.SchoolsClient.
type SchoolsClient struct {
	httpClient *http.Client
	version    string
}

// NewSchoolsClient creates a new schools client.
func NewSchoolsClient(httpClient *http.Client, version string) *SchoolsClient {
	return &SchoolsClient{
		httpClient: httpClient,
		version:    version,
	}
}

// List implements aeries.SchoolsClient.List. The endpoint is the same as
// Get's with the school code segment absent.
func (c *SchoolsClient) List(ctx context.Context) ([]aeries.School, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil, aeries.Seg("schools"), aeries.Absent)
	if err != nil {
		return nil, fmt.Errorf("listing schools: %w", err)
	}

	var schools []aeries.School

	err = decodeResponse(resp, &schools)
	if err != nil {
		return nil, err
	}

	return schools, nil
}

// Get implements aeries.SchoolsClient.Get.
func (c *SchoolsClient) Get(ctx context.Context, schoolCode int) (*aeries.School, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil, aeries.Seg("schools"), aeries.SegInt(schoolCode))
	if err != nil {
		return nil, fmt.Errorf("getting school: %w", err)
	}

	var school aeries.School

	err = decodeResponse(resp, &school)
	if err != nil {
		return nil, err
	}

	return &school, nil
}

// Terms implements aeries.SchoolsClient.Terms.
func (c *SchoolsClient) Terms(ctx context.Context, schoolCode int) ([]aeries.Term, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode), aeries.Seg("terms"))
	if err != nil {
		return nil, fmt.Errorf("listing terms: %w", err)
	}

	var terms []aeries.Term

	err = decodeResponse(resp, &terms)
	if err != nil {
		return nil, err
	}

	return terms, nil
}

// Calendar implements aeries.SchoolsClient.Calendar.
func (c *SchoolsClient) Calendar(ctx context.Context, schoolCode int) ([]aeries.CalendarDay, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode), aeries.Seg("calendar"))
	if err != nil {
		return nil, fmt.Errorf("getting calendar: %w", err)
	}

	var days []aeries.CalendarDay

	err = decodeResponse(resp, &days)
	if err != nil {
		return nil, err
	}

	return days, nil
}

// BellSchedule implements aeries.SchoolsClient.BellSchedule.
func (c *SchoolsClient) BellSchedule(ctx context.Context, schoolCode int) ([]aeries.BellSchedulePeriod, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode), aeries.Seg("BellSchedule"))
	if err != nil {
		return nil, fmt.Errorf("getting bell schedule: %w", err)
	}

	var periods []aeries.BellSchedulePeriod

	err = decodeResponse(resp, &periods)
	if err != nil {
		return nil, err
	}

	return periods, nil
}

// AbsenceCodes implements aeries.SchoolsClient.AbsenceCodes.
func (c *SchoolsClient) AbsenceCodes(ctx context.Context, schoolCode int) ([]aeries.AbsenceCode, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode), aeries.Seg("AbsenceCodes"))
	if err != nil {
		return nil, fmt.Errorf("listing absence codes: %w", err)
	}

	var codes []aeries.AbsenceCode

	err = decodeResponse(resp, &codes)
	if err != nil {
		return nil, err
	}

	return codes, nil
}
