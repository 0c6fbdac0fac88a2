package engine

import "fmt"

// Format selects how elapsed time is rendered and, for the stopwatch,
// which unit the elapsed value is stored in.
type Format int

const (
	// FormatHMS renders hours, minutes, and seconds ("01:04:05").
	FormatHMS Format = iota

	// FormatMS renders minutes, seconds, and centiseconds ("04:05.99").
	// The stopwatch stores elapsed time in centiseconds under this
	// format.
	FormatMS
)

func (f Format) String() string {
	if f == FormatMS {
		return "ms"
	}

	return "hms"
}

// ParseFormat maps a config value to a Format, defaulting to FormatHMS.
func ParseFormat(s string) Format {
	if s == "ms" {
		return FormatMS
	}

	return FormatHMS
}

// FormatUnits renders a value in the given format's unit: seconds for
// FormatHMS, centiseconds for FormatMS.
func FormatUnits(units int64, f Format) string {
	if units < 0 {
		units = 0
	}

	if f == FormatMS {
		mins := units / 6000
		secs := (units % 6000) / 100
		centis := units % 100

		return fmt.Sprintf("%02d:%02d.%02d", mins, secs, centis)
	}

	hours := units / 3600
	mins := (units % 3600) / 60
	secs := units % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
}
