package backups

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/babylog/babylog/internal/backup"
	"github.com/babylog/babylog/internal/cli"
	"github.com/babylog/babylog/internal/constants"
)

type BackupExportCmd struct {
	Dir string `short:"d" help:"Directory to write the export to. Defaults to the configured export dir, then the current directory."`
}

func (c *BackupExportCmd) Run(ctx *cli.Context) error {
	dir := c.Dir
	if dir == "" {
		dir = ctx.Config.ExportDir
	}
	if dir == "" {
		dir = "."
	}

	path, err := ctx.Codec().WriteFile(dir)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("✓ Exported to: %s\n", path)
	return nil
}

type BackupImportCmd struct {
	File string `arg:"" help:"Path to the JSON export to import."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupImportCmd) Run(ctx *cli.Context) error {
	if _, err := os.Stat(c.File); os.IsNotExist(err) {
		return fmt.Errorf("import file not found: %s", c.File)
	}

	if !c.Yes {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Importing replaces ALL existing data. Continue?").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
		if !confirmed {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	// A snapshot first, so a bad import is recoverable.
	mgr := backup.NewSnapshotter(ctx.Store.DataPath())
	if snapPath, err := mgr.Create(); err != nil {
		fmt.Printf("Warning: could not snapshot the current database, import has no rollback point: %v\n", err)
	} else {
		fmt.Printf("Snapshotted current database: %s\n", filepath.Base(snapPath))
	}

	if err := ctx.Codec().ImportFile(c.File); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Println("✓ Import complete.")
	return nil
}

type BackupSnapshotCmd struct{}

func (c *BackupSnapshotCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewSnapshotter(ctx.Store.DataPath())
	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}

	fmt.Printf("✓ Snapshot created: %s\n", filepath.Base(path))
	return nil
}

type BackupSnapshotsCmd struct{}

func (c *BackupSnapshotsCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewSnapshotter(ctx.Store.DataPath())
	snapshots, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots found.")
		fmt.Printf("Snapshots are stored in: %s\n", mgr.Dir())
		return nil
	}

	fmt.Printf("Available snapshots (%d total, keeping most recent %d):\n\n", len(snapshots), constants.MaxSnapshots)
	for _, s := range snapshots {
		sizeKB := float64(s.Size) / 1024.0
		fmt.Printf("  %s  %s  (%.1f KB)\n",
			s.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(s.Path), sizeKB)
	}
	fmt.Printf("\nSnapshot directory: %s\n", mgr.Dir())

	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Path or filename of the snapshot to restore."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewSnapshotter(ctx.Store.DataPath())

	snapPath := c.File
	if !filepath.IsAbs(snapPath) {
		if _, err := os.Stat(snapPath); err == nil {
			abs, err := filepath.Abs(snapPath)
			if err != nil {
				return fmt.Errorf("failed to resolve snapshot path: %w", err)
			}
			snapPath = abs
		} else {
			// Fall back to the snapshot directory.
			candidate := filepath.Join(mgr.Dir(), c.File)
			if _, err := os.Stat(candidate); err != nil {
				return fmt.Errorf("snapshot not found: tried current directory and %s", mgr.Dir())
			}
			snapPath = candidate
		}
	} else if _, err := os.Stat(snapPath); os.IsNotExist(err) {
		return fmt.Errorf("snapshot not found: %s", snapPath)
	}

	if !c.Yes {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Replace the current database with %s?", filepath.Base(snapPath))).
					Description("A snapshot of the current database is taken first.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
		if !confirmed {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	// Close the live connection before swapping the file out.
	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database connection: %v\n", err)
	}

	if err := mgr.Restore(snapPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Database restored successfully.")
	return nil
}
