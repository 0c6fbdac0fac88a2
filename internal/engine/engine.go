// Package engine implements the time-tracking state machine behind the tick
// widget. It owns the current mode, the elapsed or remaining time, and the
// running/paused/flashing status, and advances them on a host-driven tick.
package engine

import (
	"time"

	"github.com/kolade/tick/internal/sessionlog"
)

// Mode selects which arithmetic and bounds apply.
type Mode int

const (
	ModeClock Mode = iota
	ModeTimer
	ModeStopwatch
)

func (m Mode) String() string {
	switch m {
	case ModeTimer:
		return "Timer"
	case ModeStopwatch:
		return "Stopwatch"
	default:
		return "Clock"
	}
}

// Field is the amount, in seconds, that a single increment adds to the
// countdown target.
type Field int64

const (
	FieldSeconds Field = 1
	FieldMinutes Field = 60
	FieldHours   Field = 3600
)

const (
	// MaxSeconds is the upper bound for the countdown target and for
	// elapsed time in the hours/minutes/seconds format (99:59:59).
	MaxSeconds int64 = 99*3600 + 59*60 + 59

	// MaxCentis is the upper bound for elapsed time in the
	// minutes/seconds/centiseconds format (59:59.99).
	MaxCentis int64 = 59*6000 + 59*100 + 99

	// FlashWindow is how long an expired countdown blinks before the
	// widget settles back into clock mode.
	FlashWindow = 2500 * time.Millisecond
)

// Engine tracks elapsed or remaining time across mode switches,
// pause/resume, and format changes. It is not safe for concurrent use; a
// single event loop owns it and drives Tick on a recurring schedule.
//
// Precondition violations (toggling the format mid-run, incrementing a
// running countdown, logging an empty stopwatch) are silent no-ops.
type Engine struct {
	mode     Mode
	format   Format
	running  bool
	paused   bool
	flashing bool

	// elapsed is in the active unit: seconds, or centiseconds when the
	// stopwatch uses FormatMS. In timer mode it counts up while running
	// and holds the remaining time while paused or stopped.
	elapsed int64

	// target is the countdown length in seconds. Only meaningful in
	// timer mode.
	target int64

	// banked is the elapsed amount folded in from run segments that
	// ended before the current one.
	banked int64

	segmentStart time.Time // zero unless running
	sessionStart time.Time // first start of the current stopwatch session
	flashStart   time.Time
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithMode sets the starting mode.
func WithMode(m Mode) Option {
	return func(e *Engine) {
		e.mode = m
		if m == ModeTimer {
			e.elapsed = e.target
		}
	}
}

// WithFormat sets the starting stopwatch display format.
func WithFormat(f Format) Option {
	return func(e *Engine) { e.format = f }
}

// WithTarget presets the countdown target, clamped to MaxSeconds.
func WithTarget(seconds int64) Option {
	return func(e *Engine) {
		if seconds < 0 {
			seconds = 0
		}

		if seconds > MaxSeconds {
			seconds = MaxSeconds
		}

		e.target = seconds

		if e.mode == ModeTimer {
			e.elapsed = seconds
		}
	}
}

// New returns a stopped engine in clock mode.
func New(opts ...Option) *Engine {
	e := &Engine{}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) Mode() Mode       { return e.mode }
func (e *Engine) Format() Format   { return e.format }
func (e *Engine) Running() bool    { return e.running }
func (e *Engine) Paused() bool     { return e.paused }
func (e *Engine) Flashing() bool   { return e.flashing }
func (e *Engine) Elapsed() int64   { return e.elapsed }
func (e *Engine) Target() int64    { return e.target }

// TickInterval is the cadence the host should drive Tick at for the
// current mode and format.
func (e *Engine) TickInterval() time.Duration {
	if e.mode == ModeStopwatch && e.format == FormatMS {
		return 10 * time.Millisecond
	}

	return time.Second
}

// maxUnits returns the elapsed-time bound in the active unit.
func (e *Engine) maxUnits() int64 {
	if e.mode == ModeStopwatch && e.format == FormatMS {
		return MaxCentis
	}

	return MaxSeconds
}

// segmentUnits converts the wall-clock delta since the segment start into
// the active unit, clamping negative readings from a non-monotonic clock.
func (e *Engine) segmentUnits(now time.Time) int64 {
	delta := now.Sub(e.segmentStart)
	if delta < 0 {
		delta = 0
	}

	if e.mode == ModeStopwatch && e.format == FormatMS {
		return int64(delta / (10 * time.Millisecond))
	}

	return int64(delta / time.Second)
}

// Tick advances the engine to the given instant. While a countdown flashes
// it only watches for the flash window to elapse; otherwise it is a no-op
// unless the engine is running.
func (e *Engine) Tick(now time.Time) {
	if e.flashing {
		if now.Sub(e.flashStart) >= FlashWindow {
			// the countdown consumes its configuration on expiry
			e.flashing = false
			e.mode = ModeClock
			e.target = 0
		}

		return
	}

	if !e.running {
		return
	}

	units := e.banked + e.segmentUnits(now)
	if units > e.maxUnits() {
		units = e.maxUnits()
	}

	e.elapsed = units

	if e.mode == ModeTimer && e.target-units <= 0 {
		e.expire(now)
	}
}

// expire moves a running countdown into the terminal flashing sub-state.
func (e *Engine) expire(now time.Time) {
	e.running = false
	e.paused = false
	e.flashing = true
	e.elapsed = 0
	e.banked = 0
	e.segmentStart = time.Time{}
	e.sessionStart = time.Time{}
	e.flashStart = now
}

// StartOrToggle starts, pauses, or resumes depending on the current mode.
// In clock mode it switches straight into a running stopwatch.
func (e *Engine) StartOrToggle(now time.Time) {
	if e.flashing {
		return
	}

	switch e.mode {
	case ModeClock:
		e.mode = ModeStopwatch
		e.startSegment(now)
	case ModeTimer:
		switch {
		case e.paused:
			e.resumeSegment(now)
		case e.running:
			e.pauseSegment(now)

			e.elapsed = e.target - e.banked
			if e.elapsed < 0 {
				e.elapsed = 0
			}
		case e.target > 0:
			e.startSegment(now)
		}
	case ModeStopwatch:
		switch {
		case e.paused:
			e.resumeSegment(now)
		case e.running:
			e.pauseSegment(now)
		default:
			e.startSegment(now)
		}
	}
}

func (e *Engine) startSegment(now time.Time) {
	e.running = true
	e.paused = false
	e.banked = 0
	e.elapsed = 0
	e.segmentStart = now
	e.sessionStart = now
}

func (e *Engine) resumeSegment(now time.Time) {
	e.running = true
	e.paused = false
	e.segmentStart = now
}

// pauseSegment folds the open run segment into the banked total so that
// elapsed time is continuous across the pause/resume boundary.
func (e *Engine) pauseSegment(now time.Time) {
	e.banked += e.segmentUnits(now)
	if e.banked > e.maxUnits() {
		e.banked = e.maxUnits()
	}

	e.running = false
	e.paused = true
	e.segmentStart = time.Time{}
	e.elapsed = e.banked
}

// ToggleFormat swaps the stopwatch display format. The stored elapsed value
// is converted between seconds and centiseconds so the displayed time is
// preserved. Ignored while the engine is running or paused.
func (e *Engine) ToggleFormat() {
	if e.running || e.paused || e.flashing {
		return
	}

	if e.format == FormatHMS {
		e.format = FormatMS

		if e.mode == ModeStopwatch {
			e.elapsed *= 100
			if e.elapsed > MaxCentis {
				e.elapsed = MaxCentis
			}
		}

		return
	}

	e.format = FormatHMS

	if e.mode == ModeStopwatch {
		e.elapsed /= 100
	}
}

// SwitchMode toggles between timer and stopwatch, always stopping first.
// Clock mode is re-entered only through Reset or after a countdown expires.
func (e *Engine) SwitchMode() {
	if e.flashing {
		return
	}

	e.running = false
	e.paused = false
	e.banked = 0
	e.elapsed = 0
	e.segmentStart = time.Time{}
	e.sessionStart = time.Time{}

	if e.mode == ModeTimer {
		e.mode = ModeStopwatch
		return
	}

	e.mode = ModeTimer
	e.elapsed = e.target
}

// IncrementField adds the given field to the countdown target. The
// increment is rejected outright when it would exceed the 99:59:59 bound,
// and ignored outside timer mode or while the countdown is running. The
// host drives repeated calls for press-and-hold acceleration.
func (e *Engine) IncrementField(f Field) {
	if e.mode != ModeTimer || e.running || e.flashing {
		return
	}

	next := e.target + int64(f)
	if next > MaxSeconds {
		return
	}

	e.target = next

	if e.paused {
		e.elapsed = e.target - e.banked
		return
	}

	e.elapsed = e.target
}

// Reset returns the engine to a stopped clock unconditionally.
func (e *Engine) Reset() {
	e.mode = ModeClock
	e.running = false
	e.paused = false
	e.flashing = false
	e.elapsed = 0
	e.target = 0
	e.banked = 0
	e.segmentStart = time.Time{}
	e.sessionStart = time.Time{}
}

// LogSession closes out the current stopwatch session as an immutable log
// entry and zeroes the running session, staying in stopwatch mode. It
// reports false when there is nothing to log.
func (e *Engine) LogSession(now time.Time) (sessionlog.Entry, bool) {
	if e.mode != ModeStopwatch || e.sessionStart.IsZero() {
		return sessionlog.Entry{}, false
	}

	elapsed := e.elapsed

	if e.running {
		elapsed = e.banked + e.segmentUnits(now)
		if elapsed > e.maxUnits() {
			elapsed = e.maxUnits()
		}
	}

	if elapsed <= 0 {
		return sessionlog.Entry{}, false
	}

	seconds := elapsed
	if e.format == FormatMS {
		seconds = (elapsed + 50) / 100
	}

	entry := sessionlog.Entry{
		ID:                e.sessionStart.Format(time.RFC3339Nano),
		StartTime:         e.sessionStart,
		DurationSeconds:   seconds,
		FormattedDuration: FormatUnits(elapsed, e.format),
	}

	e.running = false
	e.paused = false
	e.elapsed = 0
	e.banked = 0
	e.segmentStart = time.Time{}
	e.sessionStart = time.Time{}

	return entry, true
}

// Value is the engine's current display projection.
type Value struct {
	// Wall is the instant to show in clock mode; zero otherwise.
	Wall time.Time

	// Units is the elapsed or remaining time in the active unit.
	Units int64

	Format Format
}

// DisplayValue projects the value the widget should show. It never mutates
// engine state. Clock mode ignores the internal elapsed time entirely.
func (e *Engine) DisplayValue(now time.Time) Value {
	switch e.mode {
	case ModeTimer:
		units := e.elapsed // remaining while paused, target while stopped

		if e.flashing {
			units = 0
		}

		if e.running {
			// elapsed lags behind between a resume and the next tick, so
			// derive the remaining time from the banked total and the
			// open segment instead
			units = e.target - (e.banked + e.segmentUnits(now))
			if units < 0 {
				units = 0
			}
		}

		return Value{Units: units, Format: FormatHMS}
	case ModeStopwatch:
		return Value{Units: e.elapsed, Format: e.format}
	default:
		return Value{Wall: now}
	}
}
