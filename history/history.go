// Package history lists and prunes the durable record of logged stopwatch
// sessions.
package history

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/kolade/tick/internal/sessionlog"
	"github.com/kolade/tick/internal/timeutil"
	"github.com/kolade/tick/internal/ui"
	"github.com/kolade/tick/store"
)

const noEntriesMsg = "No logged sessions found for the specified time range"

const startTimeFormat = "Jan 02, 2006 03:04:05 PM"

// printEntriesTable prints a table of logged sessions.
func printEntriesTable(w io.Writer, entries []sessionlog.Entry) {
	tableBody := make([][]string, len(entries))

	for i := range entries {
		entry := entries[i]

		row := []string{
			fmt.Sprintf("%d", i+1),
			entry.StartTime.Format(startTimeFormat),
			ui.Green(entry.FormattedDuration),
			entry.ID,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "STARTED", "DURATION", "ID"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// List prints the logged sessions started at or after since, most recent
// first. A zero since lists everything.
func List(db store.DB, since time.Time, asJSON bool) error {
	entries, err := db.Entries(since)
	if err != nil {
		return err
	}

	if asJSON {
		if entries == nil {
			entries = []sessionlog.Entry{}
		}

		b, err := json.Marshal(entries)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(entries) == 0 {
		pterm.Info.Println(noEntriesMsg)
		return nil
	}

	printEntriesTable(os.Stdout, entries)

	total := sessionlog.FromEntries(entries).Total()

	pterm.Info.Printfln(
		"%d sessions, %s in total",
		len(entries),
		timeutil.FormatDuration(total),
	)

	return nil
}

// Delete removes a single logged session by its id.
func Delete(db store.DB, id string) error {
	return db.DeleteEntry(id)
}

// Clear empties the session history. It asks for confirmation first
// unless force is set.
func Clear(db store.DB, force bool) error {
	if !force {
		var confirmed bool

		err := huh.NewConfirm().
			Title("Delete all logged sessions permanently?").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}

		if !confirmed {
			return nil
		}
	}

	err := db.DeleteAllEntries()
	if err != nil {
		return err
	}

	pterm.Success.Println("Session history cleared")

	return nil
}
