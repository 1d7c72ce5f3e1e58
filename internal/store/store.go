// Package store provides persistence for puzzle records.
package store

import (
	"context"
	"errors"

	"kurosuwado/internal/domain"
)

// ErrNotFound is returned by Get and Delete when id has no record.
var ErrNotFound = errors.New("store: not found")

// Repository is the persistence boundary the core requires: atomic
// put/get/list/delete by id over an opaque puzzle record. The backend
// owns its own migration story; it is never queried except through this
// interface.
type Repository interface {
	// Put stores p, creating or overwriting the record at p.ID.
	Put(ctx context.Context, p *domain.Puzzle) error

	// Get retrieves the full record, including its answer table.
	// Returns ErrNotFound if id is unknown.
	Get(ctx context.Context, id string) (*domain.Puzzle, error)

	// List returns every stored record's listing projection, newest
	// first.
	List(ctx context.Context) ([]domain.Summary, error)

	// Delete removes the record at id. Returns ErrNotFound if id is
	// unknown.
	Delete(ctx context.Context, id string) error

	// Migrate runs the backend's own schema migrations.
	Migrate(ctx context.Context) error

	// Close releases the backend's resources.
	Close() error
}
