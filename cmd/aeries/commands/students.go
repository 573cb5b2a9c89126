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

// NewStudentsCommand creates the students command group.
func NewStudentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "students",
		Aliases: []string{"student"},
		Short:   "Manage students",
		Long:    "List students and view their contacts, programs, schedules, and other records",
	}

	cmd.AddCommand(newStudentsListCommand())
	cmd.AddCommand(newStudentsGetCommand())
	cmd.AddCommand(newStudentsByGradeCommand())
	cmd.AddCommand(newStudentsContactsCommand())
	cmd.AddCommand(newStudentsProgramsCommand())
	cmd.AddCommand(newStudentsTestScoresCommand())
	cmd.AddCommand(newStudentsDisciplineCommand())
	cmd.AddCommand(newStudentsFeesCommand())
	cmd.AddCommand(newStudentsGroupsCommand())
	cmd.AddCommand(newStudentsScheduleCommand())

	return cmd
}

// studentArgs parses the common <school-code> <student-id> positionals.
func studentArgs(args []string) (int, int, error) {
	schoolCode, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing school code %q: %w", args[0], err)
	}

	studentID, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing student ID %q: %w", args[1], err)
	}

	return schoolCode, studentID, nil
}

func newStudentsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <school-code>",
		Short: "List students at a school",
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

			students, err := client.Students().List(context.Background(), schoolCode)
			if err != nil {
				return fmt.Errorf("failed to list students: %w", err)
			}

			return outputStudents(students)
		},
	}
}

func newStudentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <school-code> <student-id>",
		Short: "Get a student",
		Long:  "Get a student's demographics; a student enrolled in multiple schools yields one row per school",
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

			students, err := client.Students().Get(context.Background(), schoolCode, studentID)
			if err != nil {
				return fmt.Errorf("failed to get student: %w", err)
			}

			return outputStudents(students)
		},
	}
}

func newStudentsByGradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "by-grade <school-code> <grade>",
		Short: "List students in a grade level",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schoolCode, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing school code %q: %w", args[0], err)
			}

			grade, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing grade %q: %w", args[1], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			students, err := client.Students().ByGrade(context.Background(), schoolCode, grade)
			if err != nil {
				return fmt.Errorf("failed to list students by grade: %w", err)
			}

			return outputStudents(students)
		},
	}
}

func newStudentsContactsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contacts <school-code> <student-id>",
		Short: "List a student's contacts",
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

			contacts, err := client.Students().Contacts(context.Background(), schoolCode, studentID)
			if err != nil {
				return fmt.Errorf("failed to list contacts: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(contacts)
			case OutputFormatYAML:
				return StandardYAMLRenderer(contacts)
			default:
				return renderContactTable(contacts)
			}
		},
	}
}

func newStudentsProgramsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "programs <school-code> <student-id>",
		Short: "List a student's special programs",
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

			programs, err := client.Students().Programs(context.Background(), schoolCode, studentID)
			if err != nil {
				return fmt.Errorf("failed to list programs: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(programs)
			case OutputFormatYAML:
				return StandardYAMLRenderer(programs)
			default:
				if len(programs) == 0 {
					_, _ = os.Stdout.WriteString("No programs found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Code", "Description", "Start", "End")

				for _, program := range programs {
					_ = table.Append(program.ProgramCode, program.ProgramDescription,
						program.ParticipationStartDate, program.ParticipationEndDate)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newStudentsTestScoresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test-scores <school-code> <student-id>",
		Short: "List a student's test scores",
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

			scores, err := client.Students().TestScores(context.Background(), schoolCode, studentID)
			if err != nil {
				return fmt.Errorf("failed to list test scores: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(scores)
			case OutputFormatYAML:
				return StandardYAMLRenderer(scores)
			default:
				if len(scores) == 0 {
					_, _ = os.Stdout.WriteString("No test scores found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Test", "Date", "Part", "Type", "Score")

				for _, score := range scores {
					for _, part := range score.Parts {
						for _, value := range part.Scores {
							_ = table.Append(score.TestID, score.AdministrationDate,
								part.PartDescription, value.Type,
								strconv.FormatFloat(value.Score, 'f', -1, 64))
						}
					}
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newStudentsDisciplineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "discipline <school-code> <student-id>",
		Short: "List a student's discipline records",
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

			incidents, err := client.Students().Discipline(context.Background(), schoolCode, studentID)
			if err != nil {
				return fmt.Errorf("failed to list discipline records: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(incidents)
			case OutputFormatYAML:
				return StandardYAMLRenderer(incidents)
			default:
				if len(incidents) == 0 {
					_, _ = os.Stdout.WriteString("No discipline records found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Date", "Violation", "Disposition", "Comment")

				for _, incident := range incidents {
					_ = table.Append(incident.IncidentDate, incident.ViolationCode,
						incident.DispositionCode, incident.Comment)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newStudentsFeesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fees <school-code> <student-id>",
		Short: "List a student's fees and fines",
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

			fees, err := client.Students().Fees(context.Background(), schoolCode, studentID)
			if err != nil {
				return fmt.Errorf("failed to list fees: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(fees)
			case OutputFormatYAML:
				return StandardYAMLRenderer(fees)
			default:
				if len(fees) == 0 {
					_, _ = os.Stdout.WriteString("No fees found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Code", "Description", "Charged", "Paid", "Date")

				for _, fee := range fees {
					_ = table.Append(fee.FeeCode, fee.Description,
						strconv.FormatFloat(fee.AmountCharged, 'f', 2, 64),
						strconv.FormatFloat(fee.AmountPaid, 'f', 2, 64),
						fee.DateCharged)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newStudentsGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups <school-code>",
		Short: "List student groups at a school",
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

			groups, err := client.Students().Groups(context.Background(), schoolCode)
			if err != nil {
				return fmt.Errorf("failed to list student groups: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(groups)
			case OutputFormatYAML:
				return StandardYAMLRenderer(groups)
			default:
				if len(groups) == 0 {
					_, _ = os.Stdout.WriteString("No student groups found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Code", "Description", "Students")

				for _, group := range groups {
					_ = table.Append(group.GroupCode, group.Description,
						strconv.Itoa(len(group.StudentIDs)))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newStudentsScheduleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <school-code> <student-id>",
		Short: "Show a student's class schedule",
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

			classes, err := client.Students().ClassSchedule(context.Background(), schoolCode, studentID)
			if err != nil {
				return fmt.Errorf("failed to get class schedule: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(classes)
			case OutputFormatYAML:
				return StandardYAMLRenderer(classes)
			default:
				if len(classes) == 0 {
					_, _ = os.Stdout.WriteString("No classes found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Period", "Course", "Title", "Teacher", "Room")

				for _, class := range classes {
					_ = table.Append(strconv.Itoa(class.Period), class.CourseID,
						class.CourseTitle, class.TeacherName, class.RoomNumber)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func outputStudents(students []aeries.Student) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(students)
	case OutputFormatYAML:
		return StandardYAMLRenderer(students)
	default:
		return renderStudentTable(students)
	}
}

func renderStudentTable(students []aeries.Student) error {
	if len(students) == 0 {
		_, _ = os.Stdout.WriteString("No students found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Grade", "School", "Birthdate")

	for _, student := range students {
		name := student.LastName + ", " + student.FirstName
		_ = table.Append(strconv.Itoa(student.PermanentID), name,
			strconv.Itoa(student.Grade), strconv.Itoa(student.SchoolCode),
			student.Birthdate)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderContactTable(contacts []aeries.Contact) error {
	if len(contacts) == 0 {
		_, _ = os.Stdout.WriteString("No contacts found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Relationship", "Phone", "Email")

	for _, contact := range contacts {
		name := contact.LastName + ", " + contact.FirstName
		_ = table.Append(name, contact.RelationshipToStudentCode,
			contact.HomePhone, contact.EmailAddress)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
