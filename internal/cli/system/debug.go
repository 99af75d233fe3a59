package system

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/babylog/babylog/internal/backup"
	"github.com/babylog/babylog/internal/cli"
	"github.com/babylog/babylog/internal/config"
	"github.com/babylog/babylog/internal/storage"
)

type DebugCmd struct {
	Paths   *DebugPathsCmd   `cmd:"" help:"Show data, config, and snapshot paths."`
	DumpDay *DebugDumpDayCmd `cmd:"" help:"Dump a daily log as JSON."`
	Dates   *DebugDatesCmd   `cmd:"" help:"List every date with at least one raw event."`
}

type DebugPathsCmd struct{}

func (cmd *DebugPathsCmd) Run(ctx *cli.Context) error {
	output := map[string]string{
		"database":  ctx.Store.DataPath(),
		"config":    config.Path(ctx.ConfigDir),
		"snapshots": backup.NewSnapshotter(ctx.Store.DataPath()).Dir(),
		"logs":      filepath.Join(ctx.ConfigDir, "logs"),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Date of the daily log to dump (YYYY-MM-DD)."`
}

func (cmd *DebugDumpDayCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(cmd.Date)
	if err != nil {
		return err
	}

	log, err := ctx.Store.GetDailyLog(date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no daily log found for date: %s", date)
		}
		return fmt.Errorf("failed to get daily log: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal daily log: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDatesCmd struct{}

func (cmd *DebugDatesCmd) Run(ctx *cli.Context) error {
	dates, err := ctx.Store.EventDates()
	if err != nil {
		return fmt.Errorf("failed to get event dates: %w", err)
	}
	for _, d := range dates {
		fmt.Println(d)
	}
	return nil
}
