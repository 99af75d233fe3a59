package sqlite

import "errors"

var (
	// ErrNotFound is returned by gets and updates that reference a key with
	// no record behind it. Deletes are idempotent and never return it.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when an add violates a natural-key
	// uniqueness constraint (one daily log per date). Put upserts instead.
	ErrDuplicateKey = errors.New("duplicate key")
)
