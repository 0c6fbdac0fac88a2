// Package sessionlog maintains the ordered collection of completed
// stopwatch sessions.
package sessionlog

import "time"

// Entry is an immutable record of a completed stopwatch session. The
// formatted duration is frozen at log time and never recomputed.
type Entry struct {
	ID                string    `json:"id"`
	StartTime         time.Time `json:"start_time"`
	DurationSeconds   int64     `json:"duration_seconds"`
	FormattedDuration string    `json:"formatted_duration"`
}

// Log presents entries most-recent-first. It is in-memory only: entries
// live for the lifetime of the owning process, and losing them on exit is
// expected behavior. Durable history is the store package's concern.
//
// Entries are stored oldest-first so that appending stays O(1); reads
// reverse the order.
type Log struct {
	entries []Entry
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// FromEntries returns a log seeded with the given most-recent-first
// entries, preserving their order.
func FromEntries(entries []Entry) *Log {
	l := &Log{entries: make([]Entry, len(entries))}

	for i, e := range entries {
		l.entries[len(entries)-1-i] = e
	}

	return l
}

// Append records the entry; Entries lists the most recent session first.
func (l *Log) Append(e Entry) {
	l.entries = append(l.entries, e)
}

// Remove deletes at most one entry with the given id. An absent id is a
// no-op.
func (l *Log) Remove(id string) {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Clear empties the log.
func (l *Log) Clear() {
	l.entries = nil
}

// Len reports the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries, most recent first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))

	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}

	return out
}

// Total sums the duration of all entries.
func (l *Log) Total() time.Duration {
	var secs int64
	for _, e := range l.entries {
		secs += e.DurationSeconds
	}

	return time.Duration(secs) * time.Second
}

// Average returns the mean session duration, or zero for an empty log.
func (l *Log) Average() time.Duration {
	if len(l.entries) == 0 {
		return 0
	}

	return l.Total() / time.Duration(len(l.entries))
}
