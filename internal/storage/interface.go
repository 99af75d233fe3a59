package storage

import (
	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/models"
	"github.com/babylog/babylog/internal/storage/sqlite"
)

// Provider is the entity store: durable keyed persistence for the nine
// collections plus the multi-collection replace used by backup import.
// There is exactly one writer; no locking beyond ReplaceAll's transaction
// is needed.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	DataPath() string

	// AttachBus makes the store publish a date-touched event after every
	// committed feed/sleep/diaper mutation.
	AttachBus(*bus.Bus)

	// Profile
	GetProfile() (models.Profile, error)
	GetAllProfiles() ([]models.Profile, error)
	PutProfile(models.Profile) (int64, error)

	// Daily logs (natural key: date)
	GetDailyLog(date string) (models.DailyLog, error)
	AddDailyLog(models.DailyLog) error
	PutDailyLog(models.DailyLog) error
	DeleteDailyLog(date string) error
	GetDailyLogs(from, to string, descending bool) ([]models.DailyLog, error)
	GetAllDailyLogs() ([]models.DailyLog, error)

	// Feed events
	AddFeedEvent(models.FeedEvent) (int64, error)
	GetFeedEvent(id int64) (models.FeedEvent, error)
	UpdateFeedEvent(models.FeedEvent) error
	DeleteFeedEvent(id int64) error
	GetFeedEventsForDate(date string) ([]models.FeedEvent, error)
	GetAllFeedEvents() ([]models.FeedEvent, error)

	// Sleep events
	AddSleepEvent(models.SleepEvent) (int64, error)
	GetSleepEvent(id int64) (models.SleepEvent, error)
	UpdateSleepEvent(models.SleepEvent) error
	DeleteSleepEvent(id int64) error
	GetSleepEventsOverlapping(date string) ([]models.SleepEvent, error)
	GetAllSleepEvents() ([]models.SleepEvent, error)

	// Diaper events
	AddDiaperEvent(models.DiaperEvent) (int64, error)
	GetDiaperEvent(id int64) (models.DiaperEvent, error)
	UpdateDiaperEvent(models.DiaperEvent) error
	DeleteDiaperEvent(id int64) error
	GetDiaperEventsForDate(date string) ([]models.DiaperEvent, error)
	GetAllDiaperEvents() ([]models.DiaperEvent, error)

	// Growth records
	AddGrowthRecord(models.GrowthRecord) (int64, error)
	GetGrowthRecord(id int64) (models.GrowthRecord, error)
	UpdateGrowthRecord(models.GrowthRecord) error
	DeleteGrowthRecord(id int64) error
	GetAllGrowthRecords() ([]models.GrowthRecord, error)

	// Vaccine records
	AddVaccineRecord(models.VaccineRecord) (int64, error)
	GetVaccineRecord(id int64) (models.VaccineRecord, error)
	UpdateVaccineRecord(models.VaccineRecord) error
	DeleteVaccineRecord(id int64) error
	GetAllVaccineRecords() ([]models.VaccineRecord, error)

	// Milestones
	AddMilestone(models.Milestone) (int64, error)
	GetMilestone(id int64) (models.Milestone, error)
	UpdateMilestone(models.Milestone) error
	DeleteMilestone(id int64) error
	GetAllMilestones() ([]models.Milestone, error)

	// Journal entries
	AddJournalEntry(models.JournalEntry) (int64, error)
	GetJournalEntry(id int64) (models.JournalEntry, error)
	UpdateJournalEntry(models.JournalEntry) error
	DeleteJournalEntry(id int64) error
	GetJournalEntries(from, to string, descending bool) ([]models.JournalEntry, error)
	GetAllJournalEntries() ([]models.JournalEntry, error)

	// EventDates returns every calendar date with at least one raw event
	// (feed, sleep, or diaper). Used by the aggregator's full rebuild.
	EventDates() ([]string, error)

	// ReplaceAll clears all nine collections and bulk-inserts the document's
	// records, ids preserved, inside one transaction. Any failure leaves the
	// store exactly as it was.
	ReplaceAll(models.BackupDocument) error
}

// NewSQLiteStore returns the SQLite-backed store for the given database path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}
