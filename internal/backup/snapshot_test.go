package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylog/babylog/internal/models"
	"github.com/babylog/babylog/internal/storage"
)

func TestSnapshotCreateAndList(t *testing.T) {
	store := newTestStore(t)
	seedStore(t, store)

	mgr := NewSnapshotter(store.DataPath())
	path, err := mgr.Create()
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Contains(t, filepath.Base(path), "babylog-")

	snapshots, err := mgr.List()
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, path, snapshots[0].Path)
	assert.Greater(t, snapshots[0].Size, int64(0))
}

func TestSnapshotListEmptyDir(t *testing.T) {
	mgr := NewSnapshotter(filepath.Join(t.TempDir(), "missing.db"))
	snapshots, err := mgr.List()
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}

func TestSnapshotCreateMissingDatabase(t *testing.T) {
	mgr := NewSnapshotter(filepath.Join(t.TempDir(), "missing.db"))
	_, err := mgr.Create()
	assert.Error(t, err)
}

func TestSnapshotRestore(t *testing.T) {
	store := newTestStore(t)
	seedStore(t, store)
	dbPath := store.DataPath()

	mgr := NewSnapshotter(dbPath)
	snapPath, err := mgr.Create()
	require.NoError(t, err)

	// Mutate after the snapshot, then restore.
	_, err = store.AddFeedEvent(models.FeedEvent{Datetime: "2024-03-02T09:30", Type: models.FeedFormula, AmountMl: intPtr(100), Side: models.SideNone})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	require.NoError(t, mgr.Restore(snapPath))

	restored := storage.NewSQLiteStore(dbPath)
	require.NoError(t, restored.Load())
	defer restored.Close()

	feeds, err := restored.GetAllFeedEvents()
	require.NoError(t, err)
	assert.Len(t, feeds, 1)

	// Restore snapshotted the pre-restore database first.
	snapshots, err := mgr.List()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(snapshots), 2)
}

func TestSnapshotRestoreRejectsGarbage(t *testing.T) {
	store := newTestStore(t)
	seedStore(t, store)

	garbage := filepath.Join(t.TempDir(), "garbage.db")
	require.NoError(t, os.WriteFile(garbage, []byte("not a database"), 0600))

	mgr := NewSnapshotter(store.DataPath())
	err := mgr.Restore(garbage)
	assert.Error(t, err)
}
