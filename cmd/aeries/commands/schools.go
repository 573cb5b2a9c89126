package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/aeries-io/aeries/pkg/aeries"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSchoolsCommand creates the schools command group.
func NewSchoolsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schools",
		Aliases: []string{"school"},
		Short:   "Manage schools",
		Long:    "List schools and view their terms, calendars, bell schedules, and absence codes",
	}

	cmd.AddCommand(newSchoolsListCommand())
	cmd.AddCommand(newSchoolsGetCommand())
	cmd.AddCommand(newSchoolsTermsCommand())
	cmd.AddCommand(newSchoolsCalendarCommand())
	cmd.AddCommand(newSchoolsBellScheduleCommand())
	cmd.AddCommand(newSchoolsAbsenceCodesCommand())

	return cmd
}

func newSchoolsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List schools",
		Long:  "List all schools in the district",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			schools, err := client.Schools().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list schools: %w", err)
			}

			return outputSchools(schools)
		},
	}
}

func newSchoolsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <school-code>",
		Short: "Get a school",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schoolCode, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing school code %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			school, err := client.Schools().Get(context.Background(), schoolCode)
			if err != nil {
				return fmt.Errorf("failed to get school: %w", err)
			}

			return outputSchools([]aeries.School{*school})
		},
	}
}

func newSchoolsTermsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "terms <school-code>",
		Short: "List a school's terms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schoolCode, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing school code %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			terms, err := client.Schools().Terms(context.Background(), schoolCode)
			if err != nil {
				return fmt.Errorf("failed to list terms: %w", err)
			}

			return outputTerms(terms)
		},
	}
}

func newSchoolsCalendarCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar <school-code>",
		Short: "Show a school's calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schoolCode, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing school code %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			calendar, err := client.Schools().Calendar(context.Background(), schoolCode)
			if err != nil {
				return fmt.Errorf("failed to get calendar: %w", err)
			}

			return outputCalendar(calendar)
		},
	}
}

func newSchoolsBellScheduleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bell-schedule <school-code>",
		Short: "Show a school's bell schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schoolCode, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing school code %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			periods, err := client.Schools().BellSchedule(context.Background(), schoolCode)
			if err != nil {
				return fmt.Errorf("failed to get bell schedule: %w", err)
			}

			return outputBellSchedule(periods)
		},
	}
}

func newSchoolsAbsenceCodesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "absence-codes <school-code>",
		Short: "List a school's absence codes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schoolCode, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing school code %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			codes, err := client.Schools().AbsenceCodes(context.Background(), schoolCode)
			if err != nil {
				return fmt.Errorf("failed to list absence codes: %w", err)
			}

			return outputAbsenceCodes(codes)
		},
	}
}

func outputSchools(schools []aeries.School) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(schools)
	case OutputFormatYAML:
		return StandardYAMLRenderer(schools)
	default:
		return renderSchoolTable(schools)
	}
}

func renderSchoolTable(schools []aeries.School) error {
	if len(schools) == 0 {
		_, _ = os.Stdout.WriteString("No schools found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Code", "Name", "Grades", "Principal", "Phone")

	for _, school := range schools {
		grades := fmt.Sprintf("%d-%d", school.LowGradeLevel, school.HighGradeLevel)
		_ = table.Append(strconv.Itoa(school.SchoolCode), school.Name, grades,
			school.PrincipalName, school.PhoneNumber)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func outputTerms(terms []aeries.Term) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(terms)
	case OutputFormatYAML:
		return StandardYAMLRenderer(terms)
	default:
		if len(terms) == 0 {
			_, _ = os.Stdout.WriteString("No terms found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Code", "Description", "Start", "End")

		for _, term := range terms {
			_ = table.Append(term.TermCode, term.TermDescription, term.StartDate, term.EndDate)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func outputCalendar(days []aeries.CalendarDay) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(days)
	case OutputFormatYAML:
		return StandardYAMLRenderer(days)
	default:
		if len(days) == 0 {
			_, _ = os.Stdout.WriteString("No calendar days found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Date", "Holiday", "Track")

		for _, day := range days {
			holiday := ""
			if day.Holiday {
				holiday = "yes"
			}

			_ = table.Append(day.CalendarDate, holiday, day.Track)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func outputBellSchedule(periods []aeries.BellSchedulePeriod) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(periods)
	case OutputFormatYAML:
		return StandardYAMLRenderer(periods)
	default:
		if len(periods) == 0 {
			_, _ = os.Stdout.WriteString("No bell schedule found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Period", "Start", "End")

		for _, period := range periods {
			_ = table.Append(strconv.Itoa(period.Period), period.StartTime, period.EndTime)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func outputAbsenceCodes(codes []aeries.AbsenceCode) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(codes)
	case OutputFormatYAML:
		return StandardYAMLRenderer(codes)
	default:
		if len(codes) == 0 {
			_, _ = os.Stdout.WriteString("No absence codes found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Code", "Description", "Type")

		for _, code := range codes {
			_ = table.Append(code.Code, code.Description, code.Type)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
