package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/babylog/babylog/internal/aggregator"
	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/cli"
	"github.com/babylog/babylog/internal/cli/backups"
	"github.com/babylog/babylog/internal/cli/system"
	"github.com/babylog/babylog/internal/config"
	"github.com/babylog/babylog/internal/constants"
	"github.com/babylog/babylog/internal/errors"
	"github.com/babylog/babylog/internal/logger"
	"github.com/babylog/babylog/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Database file path." type:"string" default:"~/.config/babylog/babylog.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd    `cmd:"" help:"Initialize babylog storage."`
	Migrate  system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	DebugCmd system.DebugCmd   `cmd:"" name:"dump" hidden:"" help:"Debug commands for troubleshooting."`

	Profile struct {
		Set  cli.ProfileSetCmd  `cmd:"" help:"Create or update the baby profile."`
		Show cli.ProfileShowCmd `cmd:"" help:"Show the baby profile." default:"1"`
	} `cmd:"" help:"Manage the baby profile."`

	Feed struct {
		Add    cli.FeedAddCmd    `cmd:"" help:"Log a feed."`
		Edit   cli.FeedEditCmd   `cmd:"" help:"Edit a feed."`
		Delete cli.FeedDeleteCmd `cmd:"" help:"Delete a feed."`
		List   cli.FeedListCmd   `cmd:"" help:"List feeds for a date." default:"1"`
	} `cmd:"" help:"Track feeds."`

	Sleep struct {
		Add    cli.SleepAddCmd    `cmd:"" help:"Log a sleep interval."`
		Edit   cli.SleepEditCmd   `cmd:"" help:"Edit a sleep interval."`
		Delete cli.SleepDeleteCmd `cmd:"" help:"Delete a sleep interval."`
		List   cli.SleepListCmd   `cmd:"" help:"List sleep for a date." default:"1"`
	} `cmd:"" help:"Track sleep."`

	Diaper struct {
		Add    cli.DiaperAddCmd    `cmd:"" help:"Log a diaper change."`
		Edit   cli.DiaperEditCmd   `cmd:"" help:"Edit a diaper change."`
		Delete cli.DiaperDeleteCmd `cmd:"" help:"Delete a diaper change."`
		List   cli.DiaperListCmd   `cmd:"" help:"List diaper changes for a date." default:"1"`
	} `cmd:"" help:"Track diaper changes."`

	Growth struct {
		Add    cli.GrowthAddCmd    `cmd:"" help:"Log a growth measurement."`
		Edit   cli.GrowthEditCmd   `cmd:"" help:"Edit a growth record."`
		Delete cli.GrowthDeleteCmd `cmd:"" help:"Delete a growth record."`
		List   cli.GrowthListCmd   `cmd:"" help:"List growth records." default:"1"`
	} `cmd:"" help:"Track growth."`

	Vaccine struct {
		Add    cli.VaccineAddCmd    `cmd:"" help:"Log a vaccination."`
		Edit   cli.VaccineEditCmd   `cmd:"" help:"Edit a vaccine record."`
		Delete cli.VaccineDeleteCmd `cmd:"" help:"Delete a vaccine record."`
		List   cli.VaccineListCmd   `cmd:"" help:"List vaccine records." default:"1"`
	} `cmd:"" help:"Track vaccinations."`

	Milestone struct {
		Add    cli.MilestoneAddCmd    `cmd:"" help:"Log a milestone."`
		Edit   cli.MilestoneEditCmd   `cmd:"" help:"Edit a milestone."`
		Delete cli.MilestoneDeleteCmd `cmd:"" help:"Delete a milestone."`
		List   cli.MilestoneListCmd   `cmd:"" help:"List milestones." default:"1"`
	} `cmd:"" help:"Track milestones."`

	Journal struct {
		Add    cli.JournalAddCmd    `cmd:"" help:"Write a journal entry."`
		Edit   cli.JournalEditCmd   `cmd:"" help:"Edit a journal entry."`
		Delete cli.JournalDeleteCmd `cmd:"" help:"Delete a journal entry."`
		List   cli.JournalListCmd   `cmd:"" help:"List journal entries." default:"1"`
	} `cmd:"" help:"Keep a parenting journal."`

	Day struct {
		Show   cli.DayShowCmd   `cmd:"" help:"Show the aggregate for a date." default:"1"`
		List   cli.DayListCmd   `cmd:"" help:"List daily aggregates."`
		Note   cli.DayNoteCmd   `cmd:"" help:"Set the note or symptom tags on a day."`
		Resync cli.DayResyncCmd `cmd:"" help:"Recompute daily aggregates from raw events."`
	} `cmd:"" help:"Daily aggregates."`

	Backup struct {
		Export    backups.BackupExportCmd    `cmd:"" help:"Export all data to a JSON file." default:"1"`
		Import    backups.BackupImportCmd    `cmd:"" help:"Import a JSON export, replacing all data."`
		Snapshot  backups.BackupSnapshotCmd  `cmd:"" help:"Take a file-level database snapshot."`
		Snapshots backups.BackupSnapshotsCmd `cmd:"" help:"List database snapshots."`
		Restore   backups.BackupRestoreCmd   `cmd:"" help:"Restore a database snapshot."`
	} `cmd:"" help:"Backups and snapshots."`

	Report struct {
		Xlsx cli.ReportXlsxCmd `cmd:"" help:"Write an xlsx report." default:"1"`
	} `cmd:"" help:"Export reports."`
}

// expandPath resolves a leading ~ against the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local-first baby care tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	dataPath := expandPath(CLI.Data)
	configDir := filepath.Dir(dataPath)

	cfg, err := config.Load(config.Path(configDir))
	if err != nil {
		errors.Fatal(err)
	}
	loc, err := cfg.Location()
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug || cfg.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	store := storage.NewSQLiteStore(dataPath)

	// Every committed feed/sleep/diaper write triggers an aggregate resync
	// through the change bus.
	events := bus.New()
	store.AttachBus(events)
	agg := aggregator.New(store)
	agg.Subscribe(events)

	appCtx := &cli.Context{
		Store:      store,
		Bus:        events,
		Aggregator: agg,
		Config:     cfg,
		ConfigDir:  configDir,
		Location:   loc,
	}

	// Load the store before running the command. Init, migrate, and doctor
	// manage the database lifecycle themselves.
	selected := ""
	if ctx.Selected() != nil {
		selected = ctx.Selected().Name
	}
	if selected != "init" && selected != "migrate" && selected != "doctor" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
