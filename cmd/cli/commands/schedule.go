package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shiftdeck/shiftdeck/pkg/core/model"
	"github.com/shiftdeck/shiftdeck/pkg/core/schedule"
)

// ScheduleCmd creates the schedule command
func ScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule [date]",
		Short: "Show the weekly schedule for the week containing the given date (defaults to today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refDate := model.Today()
			if len(args) > 0 {
				var err error
				refDate, err = model.ParseDate(args[0])
				if err != nil {
					return fmt.Errorf("date must look like 2025-10-28: %w", err)
				}
			}

			window := schedule.WindowFor(refDate)
			app.Logger.Debug("schedule command", zap.String("week_start", window.Start.String()))

			snap, err := app.Aggregator.Load(app.Ctx, window)
			if err != nil {
				return fmt.Errorf("failed to load schedule: %w", err)
			}

			printWeek(snap)
			return nil
		},
	}
}

// printWeek renders one week's snapshot as a day-by-day listing.
func printWeek(snap *schedule.Snapshot) {
	fmt.Printf("\nWeek of %s — %s\n\n",
		snap.Window.Start.Format("Mon Jan 2 2006"),
		snap.Window.End.Format("Mon Jan 2 2006"))

	for _, day := range schedule.Days(snap.Window.Start) {
		bound := schedule.Bind(day, snap)

		fmt.Printf("%s, %s\n", day.Weekday(), day.Format("Jan 2"))
		if len(bound) == 0 {
			fmt.Println("  (no shifts scheduled)")
			continue
		}

		for _, b := range bound {
			fmt.Printf("  %s\n", formatBound(b))
		}
	}
	fmt.Println()
}

// formatBound renders one assignment line. Broken references are shown, not
// hidden: an assignment whose employee or shift no longer exists still
// occupies its slot.
func formatBound(b schedule.BoundAssignment) string {
	shiftPart := "⚠ unknown shift"
	if b.Shift != nil {
		shiftPart = fmt.Sprintf("%s %s–%s", b.Shift.Name, b.Shift.StartTime, b.Shift.EndTime)
	}

	employeePart := "⚠ unknown employee"
	if b.Employee != nil {
		employeePart = fmt.Sprintf("%s (%s)", b.Employee.Name, b.Employee.Role)
	}

	line := fmt.Sprintf("%s — %s", shiftPart, employeePart)
	if b.Incomplete {
		line += "  [broken reference]"
	}
	return line
}
