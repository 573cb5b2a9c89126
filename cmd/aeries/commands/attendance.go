package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAttendanceCommand creates the attendance command group.
func NewAttendanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "View attendance history",
		Long:  "View attendance summaries and day-by-day detail for students",
	}

	cmd.AddCommand(newAttendanceSummaryCommand())
	cmd.AddCommand(newAttendanceDetailsCommand())

	return cmd
}

func newAttendanceSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <school-code> <student-id>",
		Short: "Show a student's attendance summary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schoolCode, studentID, err := studentArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			summaries, err := client.Attendance().Summary(context.Background(), schoolCode, studentID)
			if err != nil {
				return fmt.Errorf("failed to get attendance summary: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(summaries)
			case OutputFormatYAML:
				return StandardYAMLRenderer(summaries)
			default:
				if len(summaries) == 0 {
					_, _ = os.Stdout.WriteString("No attendance summary found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Student", "Enrolled", "Present", "Absent", "Excused", "Unexcused", "Tardy")

				for _, summary := range summaries {
					_ = table.Append(strconv.Itoa(summary.PermanentID),
						strconv.Itoa(summary.DaysEnrolled), strconv.Itoa(summary.DaysPresent),
						strconv.Itoa(summary.DaysAbsent), strconv.Itoa(summary.DaysExcused),
						strconv.Itoa(summary.DaysUnexcused), strconv.Itoa(summary.DaysTardy))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newAttendanceDetailsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "details <school-code> <student-id>",
		Short: "Show a student's day-by-day attendance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schoolCode, studentID, err := studentArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			details, err := client.Attendance().Details(context.Background(), schoolCode, studentID)
			if err != nil {
				return fmt.Errorf("failed to get attendance details: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(details)
			case OutputFormatYAML:
				return StandardYAMLRenderer(details)
			default:
				if len(details) == 0 {
					_, _ = os.Stdout.WriteString("No attendance details found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Date", "All Day", "Periods")

				for _, day := range details {
					periods := ""

					for i, period := range day.Periods {
						if i > 0 {
							periods += " "
						}

						periods += fmt.Sprintf("%d:%s", period.Period, period.Code)
					}

					_ = table.Append(day.CalendarDate, day.AllDayCode, periods)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}
