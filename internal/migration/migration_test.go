package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return m
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testFS(nil))

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error: %v", err)
	}
	if version != 0 {
		t.Errorf("CurrentVersion() = %d, want 0 for fresh database", version)
	}
}

func TestApplyRunsPendingMigrationsInOrder(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"002_add_notes.sql": "ALTER TABLE items ADD COLUMN note TEXT;",
		"001_init.sql":      "CREATE TABLE items (id INTEGER PRIMARY KEY);",
	}))

	var messages []string
	count, err := runner.Apply(func(msg string) { messages = append(messages, msg) })
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if count != 2 {
		t.Errorf("Apply() = %d, want 2", count)
	}
	if len(messages) != 2 || messages[0] != "Applying migration 1: init" {
		t.Errorf("log messages = %v", messages)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error: %v", err)
	}
	if version != 2 {
		t.Errorf("CurrentVersion() = %d, want 2", version)
	}

	// The migrated schema is usable
	if _, err := db.Exec("INSERT INTO items (note) VALUES ('ok')"); err != nil {
		t.Errorf("migrated schema unusable: %v", err)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	fsys := testFS(map[string]string{
		"001_init.sql": "CREATE TABLE items (id INTEGER PRIMARY KEY);",
	})

	runner := NewRunner(db, fsys)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("first Apply() error: %v", err)
	}
	count, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply() error: %v", err)
	}
	if count != 0 {
		t.Errorf("second Apply() = %d, want 0", count)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"001_init.sql": "CREATE TABLE items (id INTEGER PRIMARY KEY);",
		"002_bad.sql":  "THIS IS NOT SQL;",
	}))

	count, err := runner.Apply(nil)
	if err == nil {
		t.Fatal("Apply() with bad migration succeeded, want error")
	}
	if count != 1 {
		t.Errorf("Apply() applied %d before failing, want 1", count)
	}

	// The failed migration did not bump the version
	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error: %v", err)
	}
	if version != 1 {
		t.Errorf("CurrentVersion() = %d, want 1", version)
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name  string
		files map[string]string
	}{
		{"no version prefix", map[string]string{"init.sql": "SELECT 1;"}},
		{"non-numeric version", map[string]string{"abc_init.sql": "SELECT 1;"}},
		{"zero version", map[string]string{"000_init.sql": "SELECT 1;"}},
		{"duplicate version", map[string]string{
			"001_one.sql": "SELECT 1;",
			"001_two.sql": "SELECT 1;",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(db, testFS(tt.files))
			if _, err := runner.ReadMigrationFiles(); err == nil {
				t.Error("ReadMigrationFiles() succeeded, want error")
			}
		})
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	db := setupTestDB(t)
	fsys := testFS(map[string]string{
		"001_init.sql": "CREATE TABLE items (id INTEGER PRIMARY KEY);",
	})

	runner := NewRunner(db, fsys)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	// Fake a database from a newer binary
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (99)"); err != nil {
		t.Fatal(err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() succeeded for newer schema, want error")
	}
}
