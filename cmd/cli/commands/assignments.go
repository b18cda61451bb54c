package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftdeck/shiftdeck/pkg/core/model"
)

// AssignCmd creates the assign command
func AssignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <employee_id> <shift_id> <date>",
		Short: "Assign an employee to a shift on a specific date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := model.ParseDate(args[2])
			if err != nil {
				return fmt.Errorf("date must look like 2025-10-28: %w", err)
			}

			assignment, err := app.Roster.CreateAssignment(app.Ctx, model.AssignmentPayload{
				EmployeeID: args[0],
				ShiftID:    args[1],
				Date:       date,
			})
			if err != nil {
				return fmt.Errorf("failed to create assignment: %w", err)
			}

			fmt.Printf("\n✓ Assignment created: %s on %s (%s)\n",
				assignment.EmployeeID, assignment.Date, assignment.ID)
			return nil
		},
	}
}

// UnassignCmd creates the unassign command
func UnassignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <assignment_id>",
		Short: "Remove an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Roster.DeleteAssignment(app.Ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete assignment: %w", err)
			}
			fmt.Printf("\n✓ Assignment %s removed\n", args[0])
			return nil
		},
	}
}
