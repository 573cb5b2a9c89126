package client

import (
	"context"
	"fmt"

	"github.com/aeries-io/aeries/internal/http"
	"github.com/aeries-io/aeries/pkg/aeries"
)

// GradesClient implements aeries.GradesClient.
type GradesClient struct {
	httpClient *http.Client
	version    string
}

// NewGradesClient creates a new grades client.
func NewGradesClient(httpClient *http.Client, version string) *GradesClient {
	return &GradesClient{
		httpClient: httpClient,
		version:    version,
	}
}

// Gradebooks implements aeries.GradesClient.Gradebooks.
func (c *GradesClient) Gradebooks(ctx context.Context, schoolCode, sectionNumber int) ([]aeries.Gradebook, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode),
		aeries.Seg("sections"), aeries.SegInt(sectionNumber), aeries.Seg("gradebooks"))
	if err != nil {
		return nil, fmt.Errorf("listing gradebooks: %w", err)
	}

	var gradebooks []aeries.Gradebook

	err = decodeResponse(resp, &gradebooks)
	if err != nil {
		return nil, err
	}

	return gradebooks, nil
}

// Gradebook implements aeries.GradesClient.Gradebook.
func (c *GradesClient) Gradebook(ctx context.Context, gradebookNumber int) (*aeries.Gradebook, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("gradebooks"), aeries.SegInt(gradebookNumber))
	if err != nil {
		return nil, fmt.Errorf("getting gradebook: %w", err)
	}

	var gradebook aeries.Gradebook

	err = decodeResponse(resp, &gradebook)
	if err != nil {
		return nil, err
	}

	return &gradebook, nil
}

// Assignments implements aeries.GradesClient.Assignments.
func (c *GradesClient) Assignments(ctx context.Context, gradebookNumber int) ([]aeries.Assignment, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("gradebooks"), aeries.SegInt(gradebookNumber), aeries.Seg("assignments"))
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}

	var assignments []aeries.Assignment

	err = decodeResponse(resp, &assignments)
	if err != nil {
		return nil, err
	}

	return assignments, nil
}

// FinalMarks implements aeries.GradesClient.FinalMarks.
func (c *GradesClient) FinalMarks(ctx context.Context, gradebookNumber int) ([]aeries.FinalMark, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("gradebooks"), aeries.SegInt(gradebookNumber), aeries.Seg("FinalMarks"))
	if err != nil {
		return nil, fmt.Errorf("listing final marks: %w", err)
	}

	var marks []aeries.FinalMark

	err = decodeResponse(resp, &marks)
	if err != nil {
		return nil, err
	}

	return marks, nil
}

// GPAs implements aeries.GradesClient.GPAs.
func (c *GradesClient) GPAs(ctx context.Context, schoolCode, studentID int) ([]aeries.GPA, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode),
		aeries.Seg("gpas"), aeries.SegInt(studentID))
	if err != nil {
		return nil, fmt.Errorf("getting GPAs: %w", err)
	}

	var gpas []aeries.GPA

	err = decodeResponse(resp, &gpas)
	if err != nil {
		return nil, err
	}

	return gpas, nil
}
