// Package timeutil provides utility functions for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Round rounds a time value in seconds, minutes, or hours to the nearest
// integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// FormatDuration expresses a duration in hours, minutes, and seconds
// (e.g. "1h 30m 5s"), omitting leading zero components.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	total := Round(d.Seconds())

	hours := total / 3600
	mins := (total % 3600) / 60
	secs := total % 60

	var b strings.Builder

	if hours > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}

	if mins > 0 || hours > 0 {
		fmt.Fprintf(&b, "%dm ", mins)
	}

	fmt.Fprintf(&b, "%ds", secs)

	return b.String()
}
