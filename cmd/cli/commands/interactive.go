package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shiftdeck/shiftdeck/pkg/clients/rosterclient"
	"github.com/shiftdeck/shiftdeck/pkg/core/model"
	"github.com/shiftdeck/shiftdeck/pkg/core/schedule"
)

// InteractiveCmd creates the interactive command: a session that keeps a
// current week and re-fetches it through the aggregator on every navigation
// or mutation, mirroring how the calendar view behaves.
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Browse the schedule week by week (prev/next/today/goto)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window := schedule.WindowFor(model.Today())
			if err := loadAndPrint(app, window); err != nil {
				printError(err)
			}

			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")
			scanner := bufio.NewScanner(os.Stdin)

			for {
				fmt.Printf("[week of %s] > ", app.Aggregator.Window().Start)

				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				parts := strings.Fields(line)
				name, rest := parts[0], parts[1:]

				switch name {
				case "exit", "quit":
					return nil

				case "help":
					printInteractiveHelp()

				case "next":
					if err := loadAndPrint(app, app.Aggregator.Window().Next()); err != nil {
						printError(err)
					}

				case "prev":
					if err := loadAndPrint(app, app.Aggregator.Window().Previous()); err != nil {
						printError(err)
					}

				case "today":
					if err := loadAndPrint(app, schedule.WindowFor(model.Today())); err != nil {
						printError(err)
					}

				case "goto":
					if len(rest) != 1 {
						fmt.Println("usage: goto <date>")
						continue
					}
					date, err := model.ParseDate(rest[0])
					if err != nil {
						printError(err)
						continue
					}
					if err := loadAndPrint(app, schedule.WindowFor(date)); err != nil {
						printError(err)
					}

				case "refresh":
					if err := refreshAndPrint(app); err != nil {
						printError(err)
					}

				case "assign":
					if len(rest) != 3 {
						fmt.Println("usage: assign <employee_id> <shift_id> <date>")
						continue
					}
					if err := assignAndRefresh(app, rest[0], rest[1], rest[2]); err != nil {
						printError(err)
					}

				case "unassign":
					if len(rest) != 1 {
						fmt.Println("usage: unassign <assignment_id>")
						continue
					}
					if err := app.Roster.DeleteAssignment(app.Ctx, rest[0]); err != nil {
						printError(err)
						continue
					}
					if err := refreshAndPrint(app); err != nil {
						printError(err)
					}

				default:
					fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", name)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}
			return nil
		},
	}
}

func loadAndPrint(app *AppContext, window schedule.WeekWindow) error {
	snap, err := app.Aggregator.Load(app.Ctx, window)
	if err != nil {
		return err
	}
	printWeek(snap)
	return nil
}

func refreshAndPrint(app *AppContext) error {
	snap, err := app.Aggregator.Refresh(app.Ctx)
	if err != nil {
		return err
	}
	printWeek(snap)
	return nil
}

// assignAndRefresh creates an assignment and, on success, re-fetches the
// current week so the display reflects server truth. A failed create leaves
// the committed snapshot untouched.
func assignAndRefresh(app *AppContext, employeeID, shiftID, dateStr string) error {
	date, err := model.ParseDate(dateStr)
	if err != nil {
		return err
	}

	if _, err := app.Roster.CreateAssignment(app.Ctx, model.AssignmentPayload{
		EmployeeID: employeeID,
		ShiftID:    shiftID,
		Date:       date,
	}); err != nil {
		return err
	}

	fmt.Println("✓ Assignment created")
	return refreshAndPrint(app)
}

// printError distinguishes the client-correctable failures from
// transport/server ones, the way the calendar view shows an inline message
// versus a page-level banner.
func printError(err error) {
	var validationErr *rosterclient.ValidationError
	var notFoundErr *rosterclient.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		fmt.Printf("✗ %s\n", validationErr.Message)
	case errors.As(err, &notFoundErr):
		fmt.Printf("✗ %v\n", notFoundErr)
	default:
		fmt.Printf("⚠ Error: %v\n", err)
	}
}

func printInteractiveHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  next                                   Show the next week")
	fmt.Println("  prev                                   Show the previous week")
	fmt.Println("  today                                  Jump back to the current week")
	fmt.Println("  goto <date>                            Show the week containing <date>")
	fmt.Println("  refresh                                Re-fetch the current week")
	fmt.Println("  assign <employee_id> <shift_id> <date> Assign an employee to a shift")
	fmt.Println("  unassign <assignment_id>               Remove an assignment")
	fmt.Println("  help                                   Show this help message")
	fmt.Println("  exit, quit                             Exit the session")
	fmt.Println()
}
