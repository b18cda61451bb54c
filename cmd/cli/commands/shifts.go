package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftdeck/shiftdeck/pkg/core/model"
)

// ListShiftsCmd creates the listShifts command
func ListShiftsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listShifts",
		Short: "List all shift templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shifts, err := app.Roster.ListShifts(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list shifts: %w", err)
			}

			fmt.Printf("\nFound %d shift templates:\n\n", len(shifts))
			for _, s := range shifts {
				fmt.Printf("- %s (%s) - %s–%s - needs %s\n",
					s.Name, s.ID, s.StartTime, s.EndTime, s.RequiredRole)
			}
			return nil
		},
	}
}

// AddShiftCmd creates the addShift command
func AddShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addShift <name> <required_role> <start> <end>",
		Short: "Create a new shift template (times as HH:MM)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := model.ParseTimeOfDay(args[2])
			if err != nil {
				return fmt.Errorf("start time must look like 09:00: %w", err)
			}
			end, err := model.ParseTimeOfDay(args[3])
			if err != nil {
				return fmt.Errorf("end time must look like 17:00: %w", err)
			}

			shift, err := app.Roster.CreateShift(app.Ctx, model.ShiftPayload{
				Name:         args[0],
				RequiredRole: args[1],
				StartTime:    start,
				EndTime:      end,
			})
			if err != nil {
				return fmt.Errorf("failed to create shift: %w", err)
			}

			fmt.Printf("\n✓ Shift created: %s (%s) %s–%s\n",
				shift.Name, shift.ID, shift.StartTime, shift.EndTime)
			return nil
		},
	}
}

// UpdateShiftCmd creates the updateShift command
func UpdateShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "updateShift <id> <name> <required_role> <start> <end>",
		Short: "Update an existing shift template",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := model.ParseTimeOfDay(args[3])
			if err != nil {
				return fmt.Errorf("start time must look like 09:00: %w", err)
			}
			end, err := model.ParseTimeOfDay(args[4])
			if err != nil {
				return fmt.Errorf("end time must look like 17:00: %w", err)
			}

			shift, err := app.Roster.UpdateShift(app.Ctx, args[0], model.ShiftPayload{
				Name:         args[1],
				RequiredRole: args[2],
				StartTime:    start,
				EndTime:      end,
			})
			if err != nil {
				return fmt.Errorf("failed to update shift: %w", err)
			}

			fmt.Printf("\n✓ Shift updated: %s (%s)\n", shift.Name, shift.ID)
			return nil
		},
	}
}

// DeleteShiftCmd creates the deleteShift command
func DeleteShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteShift <id>",
		Short: "Delete a shift template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Roster.DeleteShift(app.Ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete shift: %w", err)
			}
			fmt.Printf("\n✓ Shift %s deleted\n", args[0])
			return nil
		},
	}
}
