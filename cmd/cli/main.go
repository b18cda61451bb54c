package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shiftdeck/shiftdeck/cmd/cli/commands"
	"github.com/shiftdeck/shiftdeck/internal/config"
	"github.com/shiftdeck/shiftdeck/pkg/clients/rosterclient"
	"github.com/shiftdeck/shiftdeck/pkg/core/schedule"
	"github.com/shiftdeck/shiftdeck/pkg/logging"
)

var (
	env        string
	configPath string

	// app is filled in by initApp before any command's RunE executes.
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftdeck",
		Short: "Shiftdeck CLI - Manage the weekly employee schedule",
		Long:  `A CLI front end for an employee-scheduling service: browse the weekly shift calendar, manage employees and shift templates, and assign employees to shifts.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "prod", "Environment (dev, prod)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (defaults to shiftdeck.yaml in cwd or home)")

	rootCmd.AddCommand(commands.ScheduleCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))
	rootCmd.AddCommand(commands.ListEmployeesCmd(app))
	rootCmd.AddCommand(commands.AddEmployeeCmd(app))
	rootCmd.AddCommand(commands.UpdateEmployeeCmd(app))
	rootCmd.AddCommand(commands.DeleteEmployeeCmd(app))
	rootCmd.AddCommand(commands.ListShiftsCmd(app))
	rootCmd.AddCommand(commands.AddShiftCmd(app))
	rootCmd.AddCommand(commands.UpdateShiftCmd(app))
	rootCmd.AddCommand(commands.DeleteShiftCmd(app))
	rootCmd.AddCommand(commands.AssignCmd(app))
	rootCmd.AddCommand(commands.UnassignCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, the roster client and the aggregator
func initApp() error {
	app.Ctx = context.Background()

	// Initialize logger
	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger

	app.Logger.Debug("Starting application", zap.String("environment", env))

	// Load configuration
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded", zap.String("base_url", app.Cfg.BaseURL))

	// Initialize roster client
	app.Roster = rosterclient.NewClient(
		app.Cfg.BaseURL,
		rosterclient.WithHeaders(app.Cfg.Headers),
		rosterclient.WithTimeout(time.Duration(app.Cfg.RequestTimeoutSeconds)*time.Second),
	)

	// Initialize the weekly schedule aggregator
	app.Aggregator = schedule.NewAggregator(app.Roster, app.Logger)

	return nil
}
