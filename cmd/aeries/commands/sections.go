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

// NewSectionsCommand creates the sections command group.
func NewSectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sections",
		Aliases: []string{"section"},
		Short:   "Manage sections",
		Long:    "List course sections and their rosters",
	}

	cmd.AddCommand(newSectionsListCommand())
	cmd.AddCommand(newSectionsGetCommand())
	cmd.AddCommand(newSectionsRosterCommand())

	return cmd
}

// sectionArgs parses the common <school-code> <section-number> positionals.
func sectionArgs(args []string) (int, int, error) {
	schoolCode, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing school code %q: %w", args[0], err)
	}

	sectionNumber, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing section number %q: %w", args[1], err)
	}

	return schoolCode, sectionNumber, nil
}

func newSectionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <school-code>",
		Short: "List sections at a school",
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

			sections, err := client.Sections().List(context.Background(), schoolCode)
			if err != nil {
				return fmt.Errorf("failed to list sections: %w", err)
			}

			return outputSections(sections)
		},
	}
}

func newSectionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <school-code> <section-number>",
		Short: "Get a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schoolCode, sectionNumber, err := sectionArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			section, err := client.Sections().Get(context.Background(), schoolCode, sectionNumber)
			if err != nil {
				return fmt.Errorf("failed to get section: %w", err)
			}

			return outputSections([]aeries.Section{*section})
		},
	}
}

func newSectionsRosterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roster <school-code> <section-number>",
		Short: "Show a section's roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schoolCode, sectionNumber, err := sectionArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			roster, err := client.Sections().Roster(context.Background(), schoolCode, sectionNumber)
			if err != nil {
				return fmt.Errorf("failed to get roster: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(roster)
			case OutputFormatYAML:
				return StandardYAMLRenderer(roster)
			default:
				if len(roster) == 0 {
					_, _ = os.Stdout.WriteString("No roster entries found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Student", "Start", "Stop")

				for _, entry := range roster {
					_ = table.Append(strconv.Itoa(entry.PermanentID), entry.StartDate, entry.StopDate)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func outputSections(sections []aeries.Section) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(sections)
	case OutputFormatYAML:
		return StandardYAMLRenderer(sections)
	default:
		if len(sections) == 0 {
			_, _ = os.Stdout.WriteString("No sections found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Number", "Course", "Period", "Room", "Teacher", "Enrolled")

		for _, section := range sections {
			enrolled := fmt.Sprintf("%d/%d", section.TotalStudentsEnrolled, section.MaxStudents)
			_ = table.Append(strconv.Itoa(section.SectionNumber), section.CourseID,
				strconv.Itoa(section.Period), section.RoomNumber,
				strconv.Itoa(section.TeacherNumber), enrolled)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
