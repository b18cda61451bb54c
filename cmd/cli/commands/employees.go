package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shiftdeck/shiftdeck/pkg/core/model"
)

// ListEmployeesCmd creates the listEmployees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEmployees",
		Short: "List all employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := app.Roster.ListEmployees(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list employees: %w", err)
			}

			fmt.Printf("\nFound %d employees:\n\n", len(employees))
			for _, e := range employees {
				fmt.Printf("- %s (%s) - %s - max %dh/week\n", e.Name, e.ID, e.Role, e.MaxWeeklyHours)
			}
			return nil
		},
	}
}

// AddEmployeeCmd creates the addEmployee command
func AddEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addEmployee <name> <role> <max_weekly_hours>",
		Short: "Create a new employee",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxHours, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("max_weekly_hours must be a number: %w", err)
			}

			employee, err := app.Roster.CreateEmployee(app.Ctx, model.EmployeePayload{
				Name:           args[0],
				Role:           args[1],
				MaxWeeklyHours: maxHours,
			})
			if err != nil {
				return fmt.Errorf("failed to create employee: %w", err)
			}

			fmt.Printf("\n✓ Employee created: %s (%s)\n", employee.Name, employee.ID)
			return nil
		},
	}
}

// UpdateEmployeeCmd creates the updateEmployee command
func UpdateEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "updateEmployee <id> <name> <role> <max_weekly_hours>",
		Short: "Update an existing employee",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxHours, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("max_weekly_hours must be a number: %w", err)
			}

			employee, err := app.Roster.UpdateEmployee(app.Ctx, args[0], model.EmployeePayload{
				Name:           args[1],
				Role:           args[2],
				MaxWeeklyHours: maxHours,
			})
			if err != nil {
				return fmt.Errorf("failed to update employee: %w", err)
			}

			fmt.Printf("\n✓ Employee updated: %s (%s)\n", employee.Name, employee.ID)
			return nil
		},
	}
}

// DeleteEmployeeCmd creates the deleteEmployee command. Failures surface as
// command errors rather than being logged and swallowed.
func DeleteEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteEmployee <id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Roster.DeleteEmployee(app.Ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete employee: %w", err)
			}
			fmt.Printf("\n✓ Employee %s deleted\n", args[0])
			return nil
		},
	}
}
