package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewEnrollmentCommand creates the enrollment command group.
func NewEnrollmentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrollment",
		Short: "View enrollment history",
		Long:  "View a student's district-wide enrollment history by academic year",
	}

	cmd.AddCommand(newEnrollmentHistoryCommand())

	return cmd
}

func newEnrollmentHistoryCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "history <student-id>",
		Short: "Show a student's enrollment history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			studentID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing student ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			history, err := client.Enrollment().History(context.Background(), studentID, year)
			if err != nil {
				return fmt.Errorf("failed to get enrollment history: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(history)
			case OutputFormatYAML:
				return StandardYAMLRenderer(history)
			default:
				if len(history) == 0 {
					_, _ = os.Stdout.WriteString("No enrollment history found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Year", "School", "Grade", "Entry", "Leave", "Exit Reason")

				for _, entry := range history {
					_ = table.Append(strconv.Itoa(entry.AcademicYear),
						strconv.Itoa(entry.SchoolCode), strconv.Itoa(entry.Grade),
						entry.EntryDate, entry.LeaveDate, entry.ExitReasonCode)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "academic year to query")

	return cmd
}
