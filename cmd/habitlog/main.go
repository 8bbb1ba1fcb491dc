package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitlog/internal/backup"
	"github.com/julianstephens/habitlog/internal/cli"
	"github.com/julianstephens/habitlog/internal/config"
	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/errors"
	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/prompt"
	"github.com/julianstephens/habitlog/internal/render"
	"github.com/julianstephens/habitlog/internal/storage/sqlite"
	"github.com/julianstephens/habitlog/internal/tracker"
)

var CLI struct {
	Version    kong.VersionFlag
	DB         string `name:"db" help:"Database file path." type:"path" env:"HABITLOG_DB" default:"${db}"`
	Debug      bool   `help:"Log at debug level and mirror logs to stderr." env:"HABITLOG_DEBUG"`
	NoColor    bool   `help:"Disable colored output." env:"NO_COLOR"`
	Accessible bool   `help:"Use screen-reader friendly prompts." env:"HABITLOG_ACCESSIBLE"`

	Init      cli.InitCmd     `cmd:"" help:"Initialize habitlog storage."`
	Menu      cli.MenuCmd     `cmd:"" help:"Run the interactive menu." default:"1"`
	Browse    cli.BrowseCmd   `cmd:"" help:"Browse reports in a full-screen view."`
	Report    cli.ReportCmd   `cmd:"" help:"Show a report for a habit."`
	Seed      cli.SeedCmd     `cmd:"" help:"Fill an empty database with sample data."`
	Doctor    cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate  cli.ValidateCmd `cmd:"" help:"Check habits and records for conflicts."`
	DebugInfo cli.DebugCmd    `cmd:"" name:"debug-info" help:"Debug commands for troubleshooting."`
	Habit     struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List all habits." default:"1"`
		Edit   cli.HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit and its records."`
	} `cmd:"" help:"Manage habits."`
	Record struct {
		Add    cli.RecordAddCmd    `cmd:"" help:"Log a record."`
		List   cli.RecordListCmd   `cmd:"" help:"List records." default:"1"`
		Edit   cli.RecordEditCmd   `cmd:"" help:"Edit an existing record."`
		Delete cli.RecordDeleteCmd `cmd:"" help:"Delete a record."`
	} `cmd:"" help:"Manage records."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	errors.Fatal(config.LoadEnv())

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track habits and report on them."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(config.YAML, config.Paths...),
		kong.Vars{
			"version": constants.Version,
			"db":      constants.DefaultConfigPath,
		},
	)

	errors.Fatal(logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.DB),
	}))
	defer logger.Close()

	appCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := sqlite.NewStore(CLI.DB)
	defer store.Close()

	p := prompt.NewHuh(CLI.Accessible)
	backups := backup.NewManager(CLI.DB)
	app := &cli.Context{
		Ctx:      appCtx,
		Store:    store,
		Prompter: p,
		Backups:  backups,
		Out:      os.Stdout,
		Tracker: tracker.New(store, p, render.NewTable(os.Stdout, CLI.NoColor),
			tracker.WithSnapshots(backups)),
	}

	if cli.NeedsStore(ctx.Command()) {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	logger.Debug("Running command", "command", ctx.Command(), "db", CLI.DB)
	if err := ctx.Run(app); err != nil {
		errors.Fatal(err)
	}
}
