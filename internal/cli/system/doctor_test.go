package system

import (
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/babylog/babylog/internal/cli"
	"github.com/babylog/babylog/internal/storage/sqlite"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestDoctorReportsOutdatedSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "babylog.db")

	setup := sqlite.NewStore(path)
	require.NoError(t, setup.Init())
	require.NoError(t, setup.Close())

	// Wind the schema version back so the database looks out of date.
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec("UPDATE schema_version SET version = 0")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store := sqlite.NewStore(path)
	t.Cleanup(func() { store.Close() })
	ctx := &cli.Context{Store: store}

	cmd := &DoctorCmd{}
	out, runErr := captureStdout(t, func() error { return cmd.Run(ctx) })

	require.Error(t, runErr)
	assert.Contains(t, out, "✓ Database reachable: OK")
	assert.Contains(t, out, "❌ Schema version: FAIL")
	assert.Contains(t, out, "run 'babylog migrate'")
}

func TestDoctorPassesOnHealthyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "babylog.db")

	store := sqlite.NewStore(path)
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })
	ctx := &cli.Context{Store: store}

	cmd := &DoctorCmd{}
	out, runErr := captureStdout(t, func() error { return cmd.Run(ctx) })

	require.NoError(t, runErr)
	assert.Contains(t, out, "✓ Database reachable: OK")
	assert.Contains(t, out, "✓ Schema version: OK")
	assert.Contains(t, out, "All checks passed.")
}
