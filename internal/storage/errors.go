package storage

import "github.com/babylog/babylog/internal/storage/sqlite"

// Sentinel errors surfaced by every Provider implementation.
var (
	// ErrNotFound is returned by gets and updates that reference a key with
	// no record behind it. Deletes are idempotent and never return it.
	ErrNotFound = sqlite.ErrNotFound

	// ErrDuplicateKey is returned when an add violates a natural-key
	// uniqueness constraint (one daily log per date). Put upserts instead.
	ErrDuplicateKey = sqlite.ErrDuplicateKey
)
