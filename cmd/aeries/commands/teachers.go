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

// NewTeachersCommand creates the teachers command group.
func NewTeachersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "teachers",
		Aliases: []string{"teacher"},
		Short:   "Manage teachers",
		Long:    "List and view teacher records at a school",
	}

	cmd.AddCommand(newTeachersListCommand())
	cmd.AddCommand(newTeachersGetCommand())

	return cmd
}

func newTeachersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <school-code>",
		Short: "List teachers at a school",
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

			teachers, err := client.Teachers().BySchool(context.Background(), schoolCode)
			if err != nil {
				return fmt.Errorf("failed to list teachers: %w", err)
			}

			return outputTeachers(teachers)
		},
	}
}

func newTeachersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <school-code> <teacher-number>",
		Short: "Get a teacher",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schoolCode, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing school code %q: %w", args[0], err)
			}

			teacherNumber, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing teacher number %q: %w", args[1], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			teacher, err := client.Teachers().Get(context.Background(), schoolCode, teacherNumber)
			if err != nil {
				return fmt.Errorf("failed to get teacher: %w", err)
			}

			return outputTeachers([]aeries.Teacher{*teacher})
		},
	}
}

func outputTeachers(teachers []aeries.Teacher) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(teachers)
	case OutputFormatYAML:
		return StandardYAMLRenderer(teachers)
	default:
		if len(teachers) == 0 {
			_, _ = os.Stdout.WriteString("No teachers found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Number", "Name", "Room", "Email")

		for _, teacher := range teachers {
			_ = table.Append(strconv.Itoa(teacher.TeacherNumber), teacher.DisplayName,
				teacher.RoomNumber, teacher.EmailAddress)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
