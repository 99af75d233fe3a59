// Package sqlite implements the entity store on a single SQLite file via
// the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/migration"
	"github.com/babylog/babylog/migrations"
)

type Store struct {
	path   string
	db     *sql.DB
	events *bus.Bus
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Init creates the data directory, opens the database, and applies all
// pending migrations.
func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.Migrate(nil); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Load opens an existing database and validates its schema version.
func (s *Store) Load() error {
	if err := s.OpenExisting(); err != nil {
		return err
	}

	runner, err := s.migrationRunner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

// OpenExisting opens the database without validating the schema version.
// Migrate needs this to open an out-of-date database.
func (s *Store) OpenExisting() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'babylog init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) DataPath() string {
	return s.path
}

// AttachBus makes every committed mutation publish a date-touched event.
func (s *Store) AttachBus(b *bus.Bus) {
	s.events = b
}

// Migrate applies pending migrations, reporting progress through logFn.
func (s *Store) Migrate(logFn func(string)) (int, error) {
	runner, err := s.migrationRunner()
	if err != nil {
		return 0, err
	}
	return runner.Apply(logFn)
}

// SchemaVersions returns the database's current and the binary's latest
// migration version. Used by doctor.
func (s *Store) SchemaVersions() (current, latest int, err error) {
	runner, err := s.migrationRunner()
	if err != nil {
		return 0, 0, err
	}
	if current, err = runner.CurrentVersion(); err != nil {
		return 0, 0, err
	}
	if latest, err = runner.LatestVersion(); err != nil {
		return 0, 0, err
	}
	return current, latest, nil
}

func (s *Store) migrationRunner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS), nil
}

// publish notifies bus subscribers of a committed write. A subscriber
// error (a failed resync) propagates to the caller of the mutation; the
// write itself has already been committed at that point.
func (s *Store) publish(c bus.Collection, dates ...string) error {
	if s.events == nil {
		return nil
	}
	seen := make(map[string]bool, len(dates))
	var uniq []string
	for _, d := range dates {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		uniq = append(uniq, d)
	}
	return s.events.Publish(bus.Event{Collection: c, Dates: uniq})
}

// encodeTags serializes a tag set for a TEXT column. nil becomes [].
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tags: %w", err)
	}
	return string(b), nil
}

func decodeTags(raw string) []string {
	tags := []string{}
	if raw == "" {
		return tags
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{}
	}
	return tags
}
