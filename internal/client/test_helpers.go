package client

import (
	internalhttp "github.com/aeries-io/aeries/internal/http"
)

// newTestClient builds a fully wired client against a test server URL.
func newTestClient(serverURL string) *Client {
	client := &Client{
		httpClient: internalhttp.NewClient(serverURL, "test-cert"),
	}
	client.initializeResourceClients()

	return client
}
