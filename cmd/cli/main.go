package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talmaimon/basecycle/cmd/cli/commands"
	"github.com/talmaimon/basecycle/internal/config"
	"github.com/talmaimon/basecycle/pkg/postgres"
	"github.com/talmaimon/basecycle/pkg/utils/logging"
)

var (
	configPath string
	verbose    bool
)

func main() {
	app := &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "basecycle",
		Short: "Basecycle CLI - rotation and shift-segment scheduling",
		Long: `A CLI for computing rotation day statuses, expanding shift-segment
templates into concrete shifts, and checking minimum-rest constraints.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
			if app.Store != nil {
				app.Store.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: search cwd, then home)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output on the console")

	rootCmd.AddCommand(commands.TeamStatusCmd(app))
	rootCmd.AddCommand(commands.BuildScheduleCmd(app))
	rootCmd.AddCommand(commands.ExportScheduleCmd(app))
	rootCmd.AddCommand(commands.CheckRestCmd(app))
	rootCmd.AddCommand(commands.AddTeamCmd(app))
	rootCmd.AddCommand(commands.ListRolesCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up config, logger, and the database store
func initApp(app *commands.AppContext) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.InitLogger(cfg.LogDir, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := context.Background()
	store, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Ctx = ctx
	app.Cfg = cfg
	app.Logger = logger
	app.Store = store
	return nil
}
