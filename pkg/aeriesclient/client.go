// Package aeriesclient provides the main entry point for creating Aeries API clients
package aeriesclient

import (
	"strings"

	"github.com/aeries-io/aeries/internal/client"
	"github.com/aeries-io/aeries/pkg/aeries"
)

// New creates a new Aeries API client from a configuration.
func New(config *aeries.Config) (aeries.Client, error) {
	if config == nil {
		return nil, aeries.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, aeries.ErrBaseURLRequired
	}

	// Normalize the base URL. Aeries districts publish their endpoint with and
	// without a scheme and with and without a trailing slash; accept both.
	baseURL := config.BaseURL
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	config.BaseURL = baseURL

	apiClient, err := client.New(config)
	if err != nil {
		return nil, err
	}

	return apiClient, nil
}

// NewWithCertificate creates a new client with just a base URL and a district
// API certificate.
func NewWithCertificate(baseURL, certificate string) (aeries.Client, error) {
	return New(&aeries.Config{
		BaseURL:     baseURL,
		Certificate: certificate,
	})
}
