package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aeries-io/aeries/pkg/aeries"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display Aeries system information",
		Long:  "Display version and database information for the configured Aeries endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			info, err := client.SystemInfo(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get system info: %w", err)
			}

			return outputSystemInfo(info)
		},
	}
}

func outputSystemInfo(info *aeries.SystemInfo) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(info)
	case OutputFormatYAML:
		return StandardYAMLRenderer(info)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Aeries Version", info.AeriesVersion)
		_ = table.Append("Database Year", info.DatabaseYear)
		_ = table.Append("Available Years", strings.Join(info.AvailableDatabaseYears, ", "))
		_ = table.Append("Time Zone", info.LocalTimeZoneName)
		_ = table.Append("Current Time", info.CurrentDateTime)

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
