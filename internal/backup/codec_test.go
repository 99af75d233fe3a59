package backup

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylog/babylog/internal/models"
	"github.com/babylog/babylog/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })
	return store
}

func intPtr(v int) *int { return &v }

func seedStore(t *testing.T, store storage.Provider) {
	t.Helper()
	_, err := store.PutProfile(models.Profile{Name: "Mia", BirthDate: "2024-01-15", Gender: models.GenderFemale})
	require.NoError(t, err)
	_, err = store.AddFeedEvent(models.FeedEvent{Datetime: "2024-03-01T09:30", Type: models.FeedFormula, AmountMl: intPtr(120), Side: models.SideNone, BurpOk: true})
	require.NoError(t, err)
	_, err = store.AddSleepEvent(models.SleepEvent{Start: "2024-03-01T13:00", End: "2024-03-01T15:00", Place: models.PlaceCrib, Method: models.MethodSelfSoothed})
	require.NoError(t, err)
	texture := models.TextureMushy
	_, err = store.AddDiaperEvent(models.DiaperEvent{Datetime: "2024-03-01T08:00", Kind: models.DiaperStool, PoopTexture: &texture})
	require.NoError(t, err)
	_, err = store.AddJournalEntry(models.JournalEntry{Datetime: "2024-03-01T21:00", Title: "long evening", Tags: []string{"sleep"}})
	require.NoError(t, err)
	require.NoError(t, store.PutDailyLog(models.DailyLog{Date: "2024-03-01", MilkTimes: 1, MilkTotalMl: 120, PoopTimes: 1, SleepHours: 2.0, SymptomsTags: []string{}}))
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)
	seedStore(t, src)

	data, err := NewCodec(src).ExportJSON()
	require.NoError(t, err)

	dst := newTestStore(t)
	require.NoError(t, NewCodec(dst).ImportJSON(data))

	again, err := NewCodec(dst).ExportJSON()
	require.NoError(t, err)

	// Only the export timestamp may differ between the two documents.
	assert.Equal(t, stripExportedAt(string(data)), stripExportedAt(string(again)))
}

func stripExportedAt(doc string) string {
	var out []string
	for _, line := range strings.Split(doc, "\n") {
		if strings.Contains(line, "\"exportedAt\"") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func TestExportEmptyStoreHasEmptyArrays(t *testing.T) {
	store := newTestStore(t)

	doc, err := NewCodec(store).ExportAll()
	require.NoError(t, err)

	assert.NotNil(t, doc.Profiles)
	assert.NotNil(t, doc.FeedEvents)
	assert.NotNil(t, doc.JournalEntries)
	assert.Empty(t, doc.FeedEvents)

	data, err := NewCodec(store).ExportJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
}

func TestExportGolden(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddFeedEvent(models.FeedEvent{Datetime: "2024-03-01T09:30", Type: models.FeedFormula, AmountMl: intPtr(120), Side: models.SideNone, BurpOk: true})
	require.NoError(t, err)

	codec := NewCodec(store).WithClock(func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	})
	data, err := codec.ExportJSON()
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "export", data)
}

func TestImportRejectsMissingSchemaVersion(t *testing.T) {
	store := newTestStore(t)
	seedStore(t, store)

	err := NewCodec(store).ImportJSON([]byte(`{}`))
	require.ErrorIs(t, err, ErrInvalidFormat)

	// The store was not touched.
	feeds, err := store.GetAllFeedEvents()
	require.NoError(t, err)
	assert.Len(t, feeds, 1)
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	store := newTestStore(t)

	err := NewCodec(store).ImportJSON([]byte(`{"schemaVersion": 1,`))
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestImportReplacesEverything(t *testing.T) {
	store := newTestStore(t)
	seedStore(t, store)

	doc := models.BackupDocument{
		SchemaVersion: 1,
		Milestones:    []models.Milestone{{ID: 5, Date: "2024-02-20", Title: "first smile"}},
	}
	require.NoError(t, NewCodec(store).ImportAll(doc))

	feeds, err := store.GetAllFeedEvents()
	require.NoError(t, err)
	assert.Empty(t, feeds)

	m, err := store.GetMilestone(5)
	require.NoError(t, err)
	assert.Equal(t, "first smile", m.Title)
}

func TestWriteFileName(t *testing.T) {
	store := newTestStore(t)
	dir := t.TempDir()

	codec := NewCodec(store).WithClock(func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	})
	path, err := codec.WriteFile(dir)
	require.NoError(t, err)
	assert.Equal(t, "baby-log-20240315-1030.json", filepath.Base(path))
}
