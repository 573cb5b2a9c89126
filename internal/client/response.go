package client

import (
	"encoding/json"

	"github.com/aeries-io/aeries/internal/http"
	"github.com/aeries-io/aeries/pkg/aeries"
)

// decodeResponse turns the normalized HTTP outcome into a typed value or a
// typed error:
//
//   - status >= 400: *aeries.APIError carrying the status and, when the body
//     parses as an Aeries error payload, its message;
//   - 2xx with no body: target left untouched, nil error;
//   - 2xx with a body that is not valid JSON: *aeries.ParseError with the
//     raw text preserved;
//   - 2xx with valid JSON: decoded into target.
func decodeResponse(resp *http.Response, target any) error {
	if resp.StatusCode >= 400 {
		apiErr := &aeries.APIError{StatusCode: resp.StatusCode}
		if resp.Body != nil {
			// A non-JSON error body becomes the message verbatim.
			if err := json.Unmarshal(resp.Body, apiErr); err != nil {
				apiErr.Message = string(resp.Body)
			}
		}

		return apiErr
	}

	if resp.Body == nil || target == nil {
		return nil
	}

	if err := json.Unmarshal(resp.Body, target); err != nil {
		return &aeries.ParseError{
			StatusCode: resp.StatusCode,
			Raw:        string(resp.Body),
			Err:        err,
		}
	}

	return nil
}
