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

// NewGradesCommand creates the grades command group.
func NewGradesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "View gradebooks and GPAs",
		Long:  "View gradebooks, assignments, final mark bands, and student GPAs",
	}

	cmd.AddCommand(newGradesGradebooksCommand())
	cmd.AddCommand(newGradesGradebookCommand())
	cmd.AddCommand(newGradesAssignmentsCommand())
	cmd.AddCommand(newGradesFinalMarksCommand())
	cmd.AddCommand(newGradesGPAsCommand())

	return cmd
}

func newGradesGradebooksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gradebooks <school-code> <section-number>",
		Short: "List gradebooks for a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schoolCode, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing school code %q: %w", args[0], err)
			}

			sectionNumber, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing section number %q: %w", args[1], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			gradebooks, err := client.Grades().Gradebooks(context.Background(), schoolCode, sectionNumber)
			if err != nil {
				return fmt.Errorf("failed to list gradebooks: %w", err)
			}

			return outputGradebooks(gradebooks)
		},
	}
}

func newGradesGradebookCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gradebook <gradebook-number>",
		Short: "Get a gradebook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gradebookNumber, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing gradebook number %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			gradebook, err := client.Grades().Gradebook(context.Background(), gradebookNumber)
			if err != nil {
				return fmt.Errorf("failed to get gradebook: %w", err)
			}

			return outputGradebooks([]aeries.Gradebook{*gradebook})
		},
	}
}

func newGradesAssignmentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "assignments <gradebook-number>",
		Short: "List a gradebook's assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gradebookNumber, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing gradebook number %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			assignments, err := client.Grades().Assignments(context.Background(), gradebookNumber)
			if err != nil {
				return fmt.Errorf("failed to list assignments: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(assignments)
			case OutputFormatYAML:
				return StandardYAMLRenderer(assignments)
			default:
				if len(assignments) == 0 {
					_, _ = os.Stdout.WriteString("No assignments found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("#", "Description", "Category", "Due", "Points")

				for _, assignment := range assignments {
					_ = table.Append(strconv.Itoa(assignment.AssignmentNumber),
						assignment.Description, assignment.Category, assignment.DateDue,
						strconv.FormatFloat(assignment.NumberCorrectPossible, 'f', -1, 64))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newGradesFinalMarksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "final-marks <gradebook-number>",
		Short: "List a gradebook's final mark bands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gradebookNumber, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing gradebook number %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			marks, err := client.Grades().FinalMarks(context.Background(), gradebookNumber)
			if err != nil {
				return fmt.Errorf("failed to list final marks: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(marks)
			case OutputFormatYAML:
				return StandardYAMLRenderer(marks)
			default:
				if len(marks) == 0 {
					_, _ = os.Stdout.WriteString("No final marks found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Mark", "Low %", "High %")

				for _, mark := range marks {
					_ = table.Append(mark.Mark,
						strconv.FormatFloat(mark.LowPercentage, 'f', 1, 64),
						strconv.FormatFloat(mark.HighPercentage, 'f', 1, 64))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newGradesGPAsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gpas <school-code> <student-id>",
		Short: "Show a student's GPAs",
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

			gpas, err := client.Grades().GPAs(context.Background(), schoolCode, studentID)
			if err != nil {
				return fmt.Errorf("failed to get GPAs: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(gpas)
			case OutputFormatYAML:
				return StandardYAMLRenderer(gpas)
			default:
				if len(gpas) == 0 {
					_, _ = os.Stdout.WriteString("No GPAs found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Student", "Weighted", "Unweighted", "Rank", "Class Size")

				for _, gpa := range gpas {
					_ = table.Append(strconv.Itoa(gpa.PermanentID),
						strconv.FormatFloat(gpa.CumulativeWeightedGPA, 'f', 2, 64),
						strconv.FormatFloat(gpa.CumulativeUnweightedGPA, 'f', 2, 64),
						strconv.Itoa(gpa.ClassRank), strconv.Itoa(gpa.ClassSize))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func outputGradebooks(gradebooks []aeries.Gradebook) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(gradebooks)
	case OutputFormatYAML:
		return StandardYAMLRenderer(gradebooks)
	default:
		if len(gradebooks) == 0 {
			_, _ = os.Stdout.WriteString("No gradebooks found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Number", "Name", "Period", "Term", "Teacher")

		for _, gradebook := range gradebooks {
			_ = table.Append(strconv.Itoa(gradebook.GradebookNumber), gradebook.Name,
				strconv.Itoa(gradebook.Period), gradebook.TermCode,
				strconv.Itoa(gradebook.TeacherNumber))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
