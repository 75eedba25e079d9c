// Package store defines the persistence contracts for devacia-os.
//
// Two backends implement them: a flat JSON file store (jsonfile) and a
// relational store (gormstore, SQLite or Postgres). Route handlers only see
// these interfaces, so the backend is swappable without touching routing.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/devacia/devacia-os/pkg/models"
)

// ErrNotFound is returned when a name query matches no client, or the vault
// is empty. It is distinct from a storage failure: nothing was mutated.
var ErrNotFound = errors.New("record not found")

// Clock supplies timestamps for creation and interaction events. Stores take
// a Clock rather than calling time.Now directly so tests can inject
// deterministic time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock Clock used in production.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// ClientStore is the repository for client records. The store exclusively
// owns the records; one clock read is taken per mutating call.
type ClientStore interface {
	// Add assigns a fresh ID, initializes the history with a single System
	// creation event, persists and returns the stored record.
	Add(ctx context.Context, profile models.LeadProfile) (*models.Client, error)

	// ListAll returns every record in storage (creation) order.
	ListAll(ctx context.Context) ([]*models.Client, error)

	// LogActivity appends an event to the first client whose name contains
	// nameQuery case-insensitively, in storage order. Returns ErrNotFound
	// (and mutates nothing) when no client matches.
	LogActivity(ctx context.Context, nameQuery, eventType, content string) (*models.Client, error)

	// DeleteByName removes every client whose name contains nameQuery
	// case-insensitively and returns how many were removed. Returns
	// ErrNotFound when none matched.
	DeleteByName(ctx context.Context, nameQuery string) (int, error)
}

// ScriptStore is the append-only repository for generated scripts.
type ScriptStore interface {
	// Save assigns ID and creation timestamp if absent, appends and returns
	// the stored record.
	Save(ctx context.Context, script *models.Script) (*models.Script, error)

	// Latest returns the script with the greatest creation timestamp, or
	// ErrNotFound on an empty vault. Backends without ordering queries fall
	// back to last-appended, which can differ when many scripts share one
	// timestamp tick.
	Latest(ctx context.Context) (*models.Script, error)
}
