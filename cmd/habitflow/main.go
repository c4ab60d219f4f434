package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/cli/backups"
	"github.com/habitflow/habitflow/internal/cli/habits"
	"github.com/habitflow/habitflow/internal/cli/reports"
	"github.com/habitflow/habitflow/internal/cli/settings"
	"github.com/habitflow/habitflow/internal/cli/system"
	"github.com/habitflow/habitflow/internal/constants"
	apperrors "github.com/habitflow/habitflow/internal/errors"
	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json suffix selects the JSON backend, anything else SQLite." type:"path" default:"~/.config/habitflow/habitflow.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize habitflow storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Habit   struct {
		Add    habits.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   habits.HabitListCmd   `cmd:"" help:"List habits." default:"1"`
		Remove habits.HabitRemoveCmd `cmd:"" help:"Remove a habit and its entries."`
	} `cmd:"" help:"Manage habits."`
	Log   habits.LogCmd `cmd:"" help:"Log a value against a habit for a day."`
	Entry struct {
		Remove habits.EntryRemoveCmd `cmd:"" help:"Remove a logged entry."`
		Update habits.EntryUpdateCmd `cmd:"" help:"Update a logged entry."`
	} `cmd:"" help:"Manage logged entries."`
	Streak  habits.StreakCmd  `cmd:"" help:"Show current and longest streaks."`
	Today   habits.TodayCmd   `cmd:"" help:"Show today's habit status."`
	Weekly  habits.WeeklyCmd  `cmd:"" help:"Show the trailing 7-day chart for a habit."`
	Monthly habits.MonthlyCmd `cmd:"" help:"Show the trailing 30-day chart for a habit."`
	Freeze  habits.FreezeCmd  `cmd:"" help:"Spend a streak freeze on a habit."`
	Stats   reports.StatsCmd  `cmd:"" help:"Show overview statistics and insights."`
	Report  reports.ReportCmd `cmd:"" help:"Show a completion report for a period."`
	Backup  struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streaks, freezes and progress charts"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Pick the backend from the storage path
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Store: store}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
