package constants

const (
	AppName         = "babylog"
	DefaultDataPath = "~/.config/babylog/babylog.db"
	Version         = "v0.2.0"

	// SchemaVersion is the backup document version written on export. Imports
	// reject documents without one.
	SchemaVersion = 1

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat is the event timestamp format (minute precision, no zone)
	TimestampFormat = "2006-01-02T15:04"

	// TimestampSecondsFormat is accepted on input for timestamps carrying seconds
	TimestampSecondsFormat = "2006-01-02T15:04:05"

	// ExportFilePrefix is the prefix for exported backup documents
	ExportFilePrefix = "baby-log-"
	// ExportStampFormat is the timestamp embedded in export filenames
	ExportStampFormat = "20060102-1504"

	// Snapshot constants
	MaxSnapshots       = 14
	SnapshotDirName    = "snapshots"
	SnapshotFilePrefix = "babylog-"
	SnapshotFileSuffix = ".db"
)
