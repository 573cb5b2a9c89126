package commands

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/aeries-io/aeries/pkg/aeries"
	"github.com/spf13/cobra"
)

// NewRawCommand creates the raw command, the escape hatch for endpoints that
// have no typed subcommand.
func NewRawCommand() *cobra.Command {
	var (
		version string
		queries []string
	)

	cmd := &cobra.Command{
		Use:   "raw <segment>...",
		Short: "Issue a raw GET request",
		Long: `Issue a GET against an arbitrary Aeries endpoint built from path segments.

The response is printed as JSON when the body parses, or as raw text when it
does not. Non-2xx status codes are reported but the body is still shown.`,
		Example: `  # GET api/v5/schools/990/students/
  aeries raw schools 990 students

  # A different API version and a query string
  aeries raw --api-version v3 students 990 --query StartingRecord=1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			query := url.Values{}

			for _, pair := range queries {
				key, value, found := strings.Cut(pair, "=")
				if !found {
					return fmt.Errorf("%w: %q", ErrInvalidQueryPair, pair)
				}

				query.Add(key, value)
			}

			segments := make([]aeries.Segment, 0, len(args))
			for _, arg := range args {
				segments = append(segments, aeries.Seg(arg))
			}

			result, err := client.Raw(context.Background(), version, query, segments...)
			if err != nil {
				// A parse failure still carries the raw body; show it.
				if result != nil && result.Raw != "" {
					fmt.Fprintf(os.Stderr, "Status: %d (body is not JSON)\n", result.StatusCode)
					fmt.Fprintln(os.Stdout, result.Raw)

					return nil
				}

				return fmt.Errorf("request failed: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Status: %d\n", result.StatusCode)

			if len(result.Body) == 0 {
				return nil
			}

			return StandardJSONRenderer(result.Body)
		},
	}

	cmd.Flags().StringVar(&version, "api-version", "", "API version (defaults to the client's version)")
	cmd.Flags().StringArrayVar(&queries, "query", nil, "query parameter as key=value (repeatable)")

	return cmd
}
