package client

import (
	"context"
	"fmt"

	"github.com/aeries-io/aeries/internal/http"
	"github.com/aeries-io/aeries/pkg/aeries"
)

// SectionsClient implements aeries.SectionsClient.
type SectionsClient struct {
	httpClient *http.Client
	version    string
}

// NewSectionsClient creates a new sections client.
func NewSectionsClient(httpClient *http.Client, version string) *SectionsClient {
	return &SectionsClient{
		httpClient: httpClient,
		version:    version,
	}
}

// List implements aeries.SectionsClient.List.
func (c *SectionsClient) List(ctx context.Context, schoolCode int) ([]aeries.Section, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode), aeries.Seg("sections"), aeries.Absent)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}

	var sections []aeries.Section

	err = decodeResponse(resp, &sections)
	if err != nil {
		return nil, err
	}

	return sections, nil
}

// Get implements aeries.SectionsClient.Get.
func (c *SectionsClient) Get(ctx context.Context, schoolCode, sectionNumber int) (*aeries.Section, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode), aeries.Seg("sections"), aeries.SegInt(sectionNumber))
	if err != nil {
		return nil, fmt.Errorf("getting section: %w", err)
	}

	var section aeries.Section

	err = decodeResponse(resp, &section)
	if err != nil {
		return nil, err
	}

	return &section, nil
}

// Roster implements aeries.SectionsClient.Roster.
func (c *SectionsClient) Roster(ctx context.Context, schoolCode, sectionNumber int) ([]aeries.RosterEntry, error) {
	resp, err := c.httpClient.Get(ctx, c.version, nil,
		aeries.Seg("schools"), aeries.SegInt(schoolCode),
		aeries.Seg("sections"), aeries.SegInt(sectionNumber), aeries.Seg("students"))
	if err != nil {
		return nil, fmt.Errorf("getting section roster: %w", err)
	}

	var roster []aeries.RosterEntry

	err = decodeResponse(resp, &roster)
	if err != nil {
		return nil, err
	}

	return roster, nil
}
