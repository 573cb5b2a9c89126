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

// NewCoursesCommand creates the courses command group.
func NewCoursesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "courses",
		Aliases: []string{"course"},
		Short:   "Manage courses",
		Long:    "List and view the district course catalogue",
	}

	cmd.AddCommand(newCoursesListCommand())
	cmd.AddCommand(newCoursesGetCommand())

	return cmd
}

func newCoursesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			courses, err := client.Courses().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list courses: %w", err)
			}

			return outputCourses(courses)
		},
	}
}

func newCoursesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <course-id>",
		Short: "Get a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			course, err := client.Courses().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get course: %w", err)
			}

			return outputCourses([]aeries.Course{*course})
		},
	}
}

func outputCourses(courses []aeries.Course) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(courses)
	case OutputFormatYAML:
		return StandardYAMLRenderer(courses)
	default:
		if len(courses) == 0 {
			_, _ = os.Stdout.WriteString("No courses found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Title", "Department", "Credits")

		for _, course := range courses {
			_ = table.Append(course.ID, course.Title, course.DepartmentCode,
				strconv.FormatFloat(course.CreditDefault, 'f', -1, 64))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
