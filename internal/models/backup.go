package models

// BackupDocument is the portable full-store snapshot written by export and
// consumed by import. Record shapes match the live store exactly, surrogate
// ids included, so a round-trip preserves keys verbatim.
type BackupDocument struct {
	SchemaVersion  int             `json:"schemaVersion"`
	ExportedAt     string          `json:"exportedAt"` // RFC3339
	Profiles       []Profile       `json:"profiles"`
	DailyLogs      []DailyLog      `json:"dailyLogs"`
	FeedEvents     []FeedEvent     `json:"feedEvents"`
	SleepEvents    []SleepEvent    `json:"sleepEvents"`
	DiaperEvents   []DiaperEvent   `json:"diaperEvents"`
	GrowthRecords  []GrowthRecord  `json:"growthRecords"`
	VaccineRecords []VaccineRecord `json:"vaccineRecords"`
	Milestones     []Milestone     `json:"milestones"`
	JournalEntries []JournalEntry  `json:"journalEntries"`
}
