package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/babylog/babylog/internal/constants"
	"github.com/babylog/babylog/internal/logger"
)

// SnapshotInfo describes one snapshot file.
type SnapshotInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Snapshotter takes file-level copies of the SQLite database, alongside the
// portable JSON export. Snapshots live next to the database and rotate at
// MaxSnapshots.
type Snapshotter struct {
	dbPath string
	dir    string
}

func NewSnapshotter(dbPath string) *Snapshotter {
	return &Snapshotter{
		dbPath: dbPath,
		dir:    filepath.Join(filepath.Dir(dbPath), constants.SnapshotDirName),
	}
}

func (s *Snapshotter) Dir() string {
	return s.dir
}

// Create takes a new snapshot and rotates old ones.
func (s *Snapshotter) Create() (string, error) {
	return s.create(false)
}

// create takes a snapshot. skipRotation prevents recursion when Restore
// snapshots the current database first.
func (s *Snapshotter) create(skipRotation bool) (string, error) {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	if _, err := os.Stat(s.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("database does not exist: %s", s.dbPath)
	}

	stamp := time.Now().Format("20060102-150405")
	name := constants.SnapshotFilePrefix + stamp + constants.SnapshotFileSuffix
	path := filepath.Join(s.dir, name)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique snapshot filename")
		}
		name = fmt.Sprintf("%s%s-%d%s", constants.SnapshotFilePrefix, stamp, counter, constants.SnapshotFileSuffix)
		path = filepath.Join(s.dir, name)
	}

	if err := s.copyDatabase(path); err != nil {
		return "", fmt.Errorf("failed to snapshot database: %w", err)
	}

	if !skipRotation {
		if err := s.rotate(); err != nil {
			logger.Warn("failed to rotate old snapshots", "error", err)
		}
	}

	return path, nil
}

// copyDatabase uses VACUUM INTO for a consistent copy, falling back to a
// plain file copy when the SQLite build does not support it.
func (s *Snapshotter) copyDatabase(destPath string) error {
	src, err := sql.Open("sqlite", s.dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer src.Close()

	var count int
	if err := src.QueryRow("SELECT count(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := src.Exec("VACUUM INTO ?", destPath); err != nil {
		return copyFile(s.dbPath, destPath)
	}
	return nil
}

// List returns all snapshots, newest first.
func (s *Snapshotter) List() ([]SnapshotInfo, error) {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return []SnapshotInfo{}, nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	var snapshots []SnapshotInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.SnapshotFilePrefix) || !strings.HasSuffix(name, constants.SnapshotFileSuffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.SnapshotFilePrefix), constants.SnapshotFileSuffix)
		// Strip a -N uniqueness counter if present.
		if parts := strings.Split(stamp, "-"); len(parts) == 3 {
			stamp = parts[0] + "-" + parts[1]
		}

		ts, err := time.Parse("20060102-150405", stamp)
		if err != nil {
			continue
		}

		path := filepath.Join(s.dir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		snapshots = append(snapshots, SnapshotInfo{Path: path, Timestamp: ts, Size: info.Size()})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Timestamp.After(snapshots[j].Timestamp)
	})
	return snapshots, nil
}

func (s *Snapshotter) rotate() error {
	snapshots, err := s.List()
	if err != nil {
		return err
	}
	for i := constants.MaxSnapshots; i < len(snapshots); i++ {
		if err := os.Remove(snapshots[i].Path); err != nil {
			return fmt.Errorf("failed to remove old snapshot %s: %w", snapshots[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the live database with the snapshot at path, after
// snapshotting the current database and verifying the target is a valid
// SQLite file. The final replacement is an atomic rename.
func (s *Snapshotter) Restore(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("snapshot does not exist: %s", path)
	}

	if err := verifySQLite(path); err != nil {
		return fmt.Errorf("snapshot is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(s.dbPath); err == nil {
		pre, err := s.create(true)
		if err != nil {
			return fmt.Errorf("failed to snapshot current database before restore: %w", err)
		}
		logger.Info("snapshotted current database before restore", "path", pre)
	}

	tmp := s.dbPath + ".restore.tmp"
	if err := copyFile(path, tmp); err != nil {
		return fmt.Errorf("failed to copy snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.dbPath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to restore database: %w", err)
	}
	return nil
}

func verifySQLite(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT count(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}
