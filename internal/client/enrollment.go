package client

import (
	"context"
	"fmt"

	"github.com/aeries-io/aeries/internal/http"
	"github.com/aeries-io/aeries/pkg/aeries"
)

// MinimumAcademicYear is the oldest academic year the enrollment history
// endpoint accepts. Aeries installations hold no records before it, so the
// value is rejected before any network call.
const MinimumAcademicYear = 1990

// EnrollmentClient implements aeries.EnrollmentClient.
type EnrollmentClient struct {
	httpClient *http.Client
	version    string
}

// NewEnrollmentClient creates a new enrollment client.
func NewEnrollmentClient(httpClient *http.Client, version string) *EnrollmentClient {
	return &EnrollmentClient{
		httpClient: httpClient,
		version:    version,
	}
}

// History implements aeries.EnrollmentClient.History. The year is validated
// eagerly; an out-of-range value fails without a network round trip.
func (c *EnrollmentClient) History(ctx context.Context, studentID, year int) ([]aeries.Enrollment, error) {
	if year < MinimumAcademicYear {
		return nil, fmt.Errorf("%w: %d", aeries.ErrInvalidYear, year)
	}

	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("enrollment"), aeries.SegInt(studentID), aeries.Seg("year"), aeries.SegInt(year))
	if err != nil {
		return nil, fmt.Errorf("getting enrollment history: %w", err)
	}

	var history []aeries.Enrollment

	err = decodeResponse(resp, &history)
	if err != nil {
		return nil, err
	}

	return history, nil
}
