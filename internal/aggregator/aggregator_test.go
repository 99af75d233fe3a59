package aggregator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/models"
	"github.com/babylog/babylog/internal/storage"
)

// newTestEnv wires a real store, bus, and aggregator the way main does.
func newTestEnv(t *testing.T) (storage.Provider, *Aggregator) {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })

	events := bus.New()
	store.AttachBus(events)
	agg := New(store)
	agg.Subscribe(events)

	return store, agg
}

func intPtr(v int) *int { return &v }

func TestResyncAfterFeedWrites(t *testing.T) {
	store, _ := newTestEnv(t)

	_, err := store.AddFeedEvent(models.FeedEvent{Datetime: "2024-03-01T09:30", Type: models.FeedFormula, AmountMl: intPtr(120), Side: models.SideNone})
	require.NoError(t, err)
	_, err = store.AddFeedEvent(models.FeedEvent{Datetime: "2024-03-01T14:00", Type: models.FeedFormula, AmountMl: intPtr(100), Side: models.SideNone})
	require.NoError(t, err)

	log, err := store.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2, log.MilkTimes)
	assert.Equal(t, 220, log.MilkTotalMl)
	assert.Equal(t, 0, log.PoopTimes)
	assert.Equal(t, 0.0, log.SleepHours)
}

func TestNursingFeedCountsWithoutAmount(t *testing.T) {
	store, _ := newTestEnv(t)

	// A breast feed with no measured amount still counts as a feed.
	_, err := store.AddFeedEvent(models.FeedEvent{Datetime: "2024-03-01T09:30", Type: models.FeedBreast, DurationMin: intPtr(15), Side: models.SideLeft})
	require.NoError(t, err)

	log, err := store.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 1, log.MilkTimes)
	assert.Equal(t, 0, log.MilkTotalMl)
}

func TestResyncCountsDiapersByKind(t *testing.T) {
	store, _ := newTestEnv(t)

	texture := models.TextureFormed
	_, err := store.AddDiaperEvent(models.DiaperEvent{Datetime: "2024-03-01T08:00", Kind: models.DiaperStool, PoopTexture: &texture})
	require.NoError(t, err)
	_, err = store.AddDiaperEvent(models.DiaperEvent{Datetime: "2024-03-01T11:00", Kind: models.DiaperUrine})
	require.NoError(t, err)
	_, err = store.AddDiaperEvent(models.DiaperEvent{Datetime: "2024-03-01T16:00", Kind: models.DiaperUrine})
	require.NoError(t, err)

	log, err := store.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 1, log.PoopTimes)
	assert.Equal(t, 2, log.PeeTimes)
}

func TestMidnightSpanningSleepSplitsHours(t *testing.T) {
	store, _ := newTestEnv(t)

	// 23:00 to 01:00 contributes one hour to each date.
	_, err := store.AddSleepEvent(models.SleepEvent{Start: "2024-03-01T23:00", End: "2024-03-02T01:00", Place: models.PlaceCrib, Method: models.MethodSelfSoothed})
	require.NoError(t, err)

	day1, err := store.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 1.0, day1.SleepHours)

	day2, err := store.GetDailyLog("2024-03-02")
	require.NoError(t, err)
	assert.Equal(t, 1.0, day2.SleepHours)
}

func TestSleepHoursRounding(t *testing.T) {
	store, agg := newTestEnv(t)

	// 1h25m = 1.4166h, rounds to 1.4
	_, err := store.AddSleepEvent(models.SleepEvent{Start: "2024-03-01T13:00", End: "2024-03-01T14:25", Place: models.PlaceCrib, Method: models.MethodSelfSoothed})
	require.NoError(t, err)

	require.NoError(t, agg.Resync("2024-03-01"))
	log, err := store.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 1.4, log.SleepHours)
}

func TestEditResyncsVacatedDate(t *testing.T) {
	store, _ := newTestEnv(t)

	id, err := store.AddSleepEvent(models.SleepEvent{Start: "2024-03-01T13:00", End: "2024-03-01T15:00", Place: models.PlaceCrib, Method: models.MethodSelfSoothed})
	require.NoError(t, err)

	sleep, err := store.GetSleepEvent(id)
	require.NoError(t, err)
	sleep.Start = "2024-03-08T13:00"
	sleep.End = "2024-03-08T15:00"
	require.NoError(t, store.UpdateSleepEvent(sleep))

	// The vacated date is resynced down to zero, not left stale.
	old, err := store.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 0.0, old.SleepHours)

	moved, err := store.GetDailyLog("2024-03-08")
	require.NoError(t, err)
	assert.Equal(t, 2.0, moved.SleepHours)
}

func TestDeleteResyncsToZero(t *testing.T) {
	store, _ := newTestEnv(t)

	id, err := store.AddFeedEvent(models.FeedEvent{Datetime: "2024-03-01T09:30", Type: models.FeedFormula, AmountMl: intPtr(120), Side: models.SideNone})
	require.NoError(t, err)
	require.NoError(t, store.DeleteFeedEvent(id))

	log, err := store.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 0, log.MilkTimes)
	assert.Equal(t, 0, log.MilkTotalMl)
}

func TestResyncPreservesNoteAndTags(t *testing.T) {
	store, agg := newTestEnv(t)

	_, err := store.AddFeedEvent(models.FeedEvent{Datetime: "2024-03-01T09:30", Type: models.FeedFormula, AmountMl: intPtr(120), Side: models.SideNone})
	require.NoError(t, err)

	log, err := store.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	log.Note = "mild fever in the evening"
	log.SymptomsTags = []string{"fever"}
	require.NoError(t, store.PutDailyLog(log))

	// Another write resyncs the derived fields but keeps the user's text.
	_, err = store.AddFeedEvent(models.FeedEvent{Datetime: "2024-03-01T18:00", Type: models.FeedFormula, AmountMl: intPtr(90), Side: models.SideNone})
	require.NoError(t, err)

	got, err := store.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2, got.MilkTimes)
	assert.Equal(t, 210, got.MilkTotalMl)
	assert.Equal(t, "mild fever in the evening", got.Note)
	assert.Equal(t, []string{"fever"}, got.SymptomsTags)

	require.NoError(t, agg.Resync("2024-03-01"))
	again, err := store.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "mild fever in the evening", again.Note)
}

func TestRebuildCoversEveryEventDate(t *testing.T) {
	store, agg := newTestEnv(t)

	_, err := store.AddFeedEvent(models.FeedEvent{Datetime: "2024-03-01T09:30", Type: models.FeedBreast, Side: models.SideLeft})
	require.NoError(t, err)
	_, err = store.AddSleepEvent(models.SleepEvent{Start: "2024-03-03T23:00", End: "2024-03-04T01:00", Place: models.PlaceCrib, Method: models.MethodSelfSoothed})
	require.NoError(t, err)

	// Corrupt one aggregate, then rebuild.
	log, err := store.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	log.MilkTimes = 99
	require.NoError(t, store.PutDailyLog(log))

	count, err := agg.Rebuild()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	fixed, err := store.GetDailyLog("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 1, fixed.MilkTimes)
}

func TestResyncDateWithNoEvents(t *testing.T) {
	store, agg := newTestEnv(t)

	require.NoError(t, agg.Resync("2024-07-04"))
	log, err := store.GetDailyLog("2024-07-04")
	require.NoError(t, err)
	assert.Equal(t, models.DailyLog{Date: "2024-07-04", SymptomsTags: []string{}}, log)
}
