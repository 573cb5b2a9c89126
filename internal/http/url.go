package http

import (
	"net/url"
	"strings"

	"github.com/aeries-io/aeries/pkg/aeries"
)

// BuildURL composes the endpoint URL for one API call. The path is
// "api/<version>/<segment>/.../" joined onto the base URL. Version defaults
// to aeries.DefaultAPIVersion when empty; absent segments are skipped
// entirely. Every positional argument, the version included, is stripped of
// leading and trailing separators before joining, so no input noise can
// produce doubled separators or escape the base path.
//
// The function is pure: the base URL is never mutated, and identical inputs
// yield byte-identical output. Query strings are the caller's concern; set
// RawQuery on the returned URL.
func BuildURL(base *url.URL, version string, segments ...aeries.Segment) *url.URL {
	if version == "" {
		version = aeries.DefaultAPIVersion
	}

	parts := []string{"api", strings.Trim(version, "/")}

	for _, segment := range segments {
		if !segment.Present() {
			continue
		}

		parts = append(parts, strings.Trim(segment.String(), "/"))
	}

	result := *base
	result.Path = strings.TrimRight(result.Path, "/") + "/" + strings.Join(parts, "/") + "/"
	result.RawQuery = ""
	result.Fragment = ""

	return &result
}
