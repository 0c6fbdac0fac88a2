package store

import (
	"time"

	"github.com/kolade/tick/internal/sessionlog"
)

// DB is the history storage interface.
type DB interface {
	// SaveEntry stores a logged session. An entry with the same id is
	// overwritten.
	SaveEntry(entry sessionlog.Entry) error
	// Entries returns saved entries most-recent-first. Entries started
	// before since are excluded; a zero since returns everything.
	Entries(since time.Time) ([]sessionlog.Entry, error)
	// DeleteEntry removes a saved entry. An absent id is a no-op.
	DeleteEntry(id string) error
	// DeleteAllEntries empties the history.
	DeleteAllEntries() error
	// Close ends the database connection
	Close() error
}
