// Package backup moves the whole store in and out of the portable versioned
// JSON document, and manages file-level snapshots of the database itself.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/babylog/babylog/internal/constants"
	"github.com/babylog/babylog/internal/models"
	"github.com/babylog/babylog/internal/storage"
)

// ErrInvalidFormat rejects an import document that is not valid JSON or has
// no schemaVersion. It is always raised before the store is touched.
var ErrInvalidFormat = errors.New("invalid backup document")

// Codec serializes the entire store to one BackupDocument and restores the
// store from one inside a single all-or-nothing transaction.
type Codec struct {
	store storage.Provider
	now   func() time.Time
}

func NewCodec(store storage.Provider) *Codec {
	return &Codec{store: store, now: time.Now}
}

// WithClock overrides the export timestamp source. Used by tests.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// ExportAll reads every record from all nine collections. Each collection
// read is independent; no cross-collection snapshot is taken. The store is
// not mutated.
func (c *Codec) ExportAll() (models.BackupDocument, error) {
	doc := models.BackupDocument{
		SchemaVersion: constants.SchemaVersion,
		ExportedAt:    c.now().Format(time.RFC3339),
	}

	var err error
	if doc.Profiles, err = c.store.GetAllProfiles(); err != nil {
		return models.BackupDocument{}, err
	}
	if doc.DailyLogs, err = c.store.GetAllDailyLogs(); err != nil {
		return models.BackupDocument{}, err
	}
	if doc.FeedEvents, err = c.store.GetAllFeedEvents(); err != nil {
		return models.BackupDocument{}, err
	}
	if doc.SleepEvents, err = c.store.GetAllSleepEvents(); err != nil {
		return models.BackupDocument{}, err
	}
	if doc.DiaperEvents, err = c.store.GetAllDiaperEvents(); err != nil {
		return models.BackupDocument{}, err
	}
	if doc.GrowthRecords, err = c.store.GetAllGrowthRecords(); err != nil {
		return models.BackupDocument{}, err
	}
	if doc.VaccineRecords, err = c.store.GetAllVaccineRecords(); err != nil {
		return models.BackupDocument{}, err
	}
	if doc.Milestones, err = c.store.GetAllMilestones(); err != nil {
		return models.BackupDocument{}, err
	}
	if doc.JournalEntries, err = c.store.GetAllJournalEntries(); err != nil {
		return models.BackupDocument{}, err
	}

	normalize(&doc)
	return doc, nil
}

// ExportJSON marshals the full export as indented JSON.
func (c *Codec) ExportJSON() ([]byte, error) {
	doc, err := c.ExportAll()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// WriteFile writes the export document into dir as
// baby-log-YYYYMMDD-HHMM.json and returns the full path.
func (c *Codec) WriteFile(dir string) (string, error) {
	data, err := c.ExportJSON()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := constants.ExportFilePrefix + c.now().Format(constants.ExportStampFormat) + ".json"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return path, nil
}

// ImportAll replaces the entire store with the document's contents in one
// transaction. A missing or zero schemaVersion fails with ErrInvalidFormat
// before the store is touched; any transaction failure rolls everything
// back, leaving the store exactly as it was.
func (c *Codec) ImportAll(doc models.BackupDocument) error {
	if doc.SchemaVersion == 0 {
		return fmt.Errorf("%w: missing schemaVersion", ErrInvalidFormat)
	}
	return c.store.ReplaceAll(doc)
}

// ImportJSON parses and imports a backup document.
func (c *Codec) ImportJSON(data []byte) error {
	var doc models.BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return c.ImportAll(doc)
}

// ImportFile imports the backup document at path.
func (c *Codec) ImportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}
	return c.ImportJSON(data)
}

// normalize replaces nil collections so the document marshals them as []
// rather than null.
func normalize(doc *models.BackupDocument) {
	if doc.Profiles == nil {
		doc.Profiles = []models.Profile{}
	}
	if doc.DailyLogs == nil {
		doc.DailyLogs = []models.DailyLog{}
	}
	if doc.FeedEvents == nil {
		doc.FeedEvents = []models.FeedEvent{}
	}
	if doc.SleepEvents == nil {
		doc.SleepEvents = []models.SleepEvent{}
	}
	if doc.DiaperEvents == nil {
		doc.DiaperEvents = []models.DiaperEvent{}
	}
	if doc.GrowthRecords == nil {
		doc.GrowthRecords = []models.GrowthRecord{}
	}
	if doc.VaccineRecords == nil {
		doc.VaccineRecords = []models.VaccineRecord{}
	}
	if doc.Milestones == nil {
		doc.Milestones = []models.Milestone{}
	}
	if doc.JournalEntries == nil {
		doc.JournalEntries = []models.JournalEntry{}
	}
}
