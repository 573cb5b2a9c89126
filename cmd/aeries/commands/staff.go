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

// NewStaffCommand creates the staff command group.
func NewStaffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage staff",
		Long:  "List and view district staff records",
	}

	cmd.AddCommand(newStaffListCommand())
	cmd.AddCommand(newStaffGetCommand())

	return cmd
}

func newStaffListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List district staff",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			staff, err := client.Staff().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list staff: %w", err)
			}

			return outputStaff(staff)
		},
	}
}

func newStaffGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <staff-id>",
		Short: "Get a staff member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			staffID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing staff ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			member, err := client.Staff().Get(context.Background(), staffID)
			if err != nil {
				return fmt.Errorf("failed to get staff member: %w", err)
			}

			return outputStaff([]aeries.Staff{*member})
		},
	}
}

func outputStaff(staff []aeries.Staff) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(staff)
	case OutputFormatYAML:
		return StandardYAMLRenderer(staff)
	default:
		if len(staff) == 0 {
			_, _ = os.Stdout.WriteString("No staff found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Title", "School", "Email")

		for _, member := range staff {
			name := member.LastName + ", " + member.FirstName
			_ = table.Append(strconv.Itoa(member.ID), name, member.Title,
				strconv.Itoa(member.PrimaryAeriesSchool), member.EmailAddress)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
