// Package store persists logged stopwatch sessions to the data store
package store

import (
	"cmp"
	"encoding/json"
	"errors"
	"io/fs"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/kolade/tick/internal/sessionlog"
)

const entriesBucket = "entries"

var errTickRunning = errors.New(
	"is tick already running? Only one instance can access the history at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

var _ DB = (*Client)(nil)

func (c *Client) SaveEntry(entry sessionlog.Entry) error {
	value, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(entriesBucket)).Put([]byte(entry.ID), value)
	})
}

func (c *Client) Entries(since time.Time) ([]sessionlog.Entry, error) {
	var entries []sessionlog.Entry

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(entriesBucket)).ForEach(func(_, v []byte) error {
			var entry sessionlog.Entry

			err := json.Unmarshal(v, &entry)
			if err != nil {
				return err
			}

			if !since.IsZero() && entry.StartTime.Before(since) {
				return nil
			}

			entries = append(entries, entry)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	// RFC3339Nano keys trim trailing zeros so bucket order is not reliably
	// chronological; sort on the start time instead
	slices.SortFunc(entries, func(a, b sessionlog.Entry) int {
		return cmp.Compare(b.StartTime.UnixNano(), a.StartTime.UnixNano())
	})

	return entries, nil
}

func (c *Client) DeleteEntry(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(entriesBucket)).Delete([]byte(id))
	})
}

func (c *Client) DeleteAllEntries() error {
	return c.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(entriesBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucket([]byte(entriesBucket))

		return err
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errTickRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(entriesBucket))

		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
