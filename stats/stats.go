// Package stats reports aggregate statistics over logged stopwatch
// sessions.
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/kolade/tick/internal/sessionlog"
	"github.com/kolade/tick/internal/timeutil"
	"github.com/kolade/tick/internal/ui"
)

const barChartChar = "▇"

const noEntriesMsg = "No logged sessions found for the specified time range"

// Stats aggregates the sessions logged within a reporting period.
type Stats struct {
	StartTime time.Time     `json:"start_time"`
	Count     int           `json:"count"`
	Total     time.Duration `json:"total"`
	Average   time.Duration `json:"average"`
	Longest   time.Duration `json:"longest"`
	Shortest  time.Duration `json:"shortest"`

	// weekday distribution of logged time, Sunday first
	weekly map[time.Weekday]time.Duration
}

// Compute derives the aggregate figures from the given entries.
func Compute(entries []sessionlog.Entry, since time.Time) *Stats {
	s := &Stats{
		StartTime: since,
		weekly:    make(map[time.Weekday]time.Duration),
	}

	log := sessionlog.FromEntries(entries)

	s.Count = log.Len()
	s.Total = log.Total()
	s.Average = log.Average()

	for _, entry := range entries {
		d := time.Duration(entry.DurationSeconds) * time.Second

		if d > s.Longest {
			s.Longest = d
		}

		if s.Shortest == 0 || d < s.Shortest {
			s.Shortest = d
		}

		s.weekly[entry.StartTime.Weekday()] += d
	}

	return s
}

// ToJSON encodes the computed statistics.
func (s *Stats) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// weeklyChart renders the weekday distribution as a horizontal bar chart
// with minute precision.
func (s *Stats) weeklyChart() (string, error) {
	var bars pterm.Bars

	for day := time.Sunday; day <= time.Saturday; day++ {
		bars = append(bars, pterm.Bar{
			Label: day.String(),
			Value: timeutil.Round(s.weekly[day].Minutes()),
		})
	}

	return pterm.DefaultBarChart.
		WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
}

// Show prints the statistics report.
func (s *Stats) Show(w io.Writer) error {
	if s.Count == 0 {
		pterm.Info.Println(noEntriesMsg)
		return nil
	}

	fmt.Fprintf(w, "%s\n", ui.Blue("Summary"))
	fmt.Fprintf(w, "Sessions logged: %s\n", ui.Green(s.Count))
	fmt.Fprintf(
		w,
		"Time logged: %s\n",
		ui.Green(timeutil.FormatDuration(s.Total)),
	)
	fmt.Fprintf(
		w,
		"Average session: %s\n",
		ui.Green(timeutil.FormatDuration(s.Average)),
	)
	fmt.Fprintf(
		w,
		"Longest session: %s\n",
		ui.Green(timeutil.FormatDuration(s.Longest)),
	)
	fmt.Fprintf(
		w,
		"Shortest session: %s\n",
		ui.Red(timeutil.FormatDuration(s.Shortest)),
	)

	chart, err := s.weeklyChart()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n%s", ui.Blue("Time logged per weekday (mins)"), chart)

	return nil
}
