package store

import (
	"context"

	"github.com/abhisek/orienta/internal/result"
)

// FavoritesRepo persists the user's starred professions.
type FavoritesRepo interface {
	// Load returns the saved list. saved is false when nothing was ever
	// stored, so the caller can fall back to the catalog's seed list.
	Load(ctx context.Context) (names []string, saved bool, err error)

	// Save replaces the stored list.
	Save(ctx context.Context, names []string) error

	// Clear forgets the stored list; Load reports saved = false again.
	Clear(ctx context.Context) error
}

// StoredResult is a persisted record with its row ID.
type StoredResult struct {
	ID     string
	Record *result.Record
}

// ResultRepo keeps finalized test results.
type ResultRepo interface {
	// Save appends a record and returns its ID.
	Save(ctx context.Context, rec *result.Record) (string, error)

	// Latest returns the most recently saved record, or nil if none exist.
	Latest(ctx context.Context) (*result.Record, error)

	// List returns up to limit results, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]StoredResult, error)

	// Prune deletes all but the keep most recent results.
	Prune(ctx context.Context, keep int) error
}
