package engine_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/kolade/tick/internal/engine"
	"github.com/kolade/tick/internal/sessionlog"
)

var base = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

func at(offset time.Duration) time.Time {
	return base.Add(offset)
}

func TestClockStartSwitchesToRunningStopwatch(t *testing.T) {
	e := engine.New()

	e.StartOrToggle(base)

	if e.Mode() != engine.ModeStopwatch {
		t.Fatalf("mode = %s, want Stopwatch", e.Mode())
	}

	if !e.Running() || e.Paused() {
		t.Fatalf("running = %v, paused = %v, want running", e.Running(), e.Paused())
	}

	if e.Elapsed() != 0 {
		t.Fatalf("elapsed = %d, want 0", e.Elapsed())
	}
}

func TestStopwatchElapsedIsMonotonic(t *testing.T) {
	e := engine.New(engine.WithMode(engine.ModeStopwatch))

	e.StartOrToggle(base)

	var prev int64

	for _, offset := range []time.Duration{
		time.Second,
		2 * time.Second,
		10 * time.Second,
		time.Hour,
		200 * time.Hour,
	} {
		e.Tick(at(offset))

		if e.Elapsed() < prev {
			t.Fatalf("elapsed decreased: %d -> %d", prev, e.Elapsed())
		}

		if e.Elapsed() > engine.MaxSeconds {
			t.Fatalf("elapsed = %d exceeds bound %d", e.Elapsed(), engine.MaxSeconds)
		}

		prev = e.Elapsed()
	}
}

func TestNegativeClockDeltaIsClamped(t *testing.T) {
	e := engine.New(engine.WithMode(engine.ModeStopwatch))

	e.StartOrToggle(base)
	e.Tick(at(-time.Minute))

	if e.Elapsed() != 0 {
		t.Fatalf("elapsed = %d, want 0 for a backwards clock reading", e.Elapsed())
	}
}

func TestPauseResumePreservesElapsed(t *testing.T) {
	e := engine.New(engine.WithMode(engine.ModeStopwatch))

	e.StartOrToggle(base)
	e.Tick(at(40 * time.Second))

	before := e.Elapsed()

	e.StartOrToggle(at(40 * time.Second)) // pause

	if e.Running() || !e.Paused() {
		t.Fatalf("running = %v, paused = %v, want paused", e.Running(), e.Paused())
	}

	if e.Elapsed() != before {
		t.Fatalf("elapsed = %d after pause, want %d", e.Elapsed(), before)
	}

	// a long pause must not leak into the elapsed total
	e.StartOrToggle(at(10 * time.Minute)) // resume
	e.Tick(at(10 * time.Minute))

	if e.Elapsed() != before {
		t.Fatalf("elapsed = %d after resume, want %d", e.Elapsed(), before)
	}

	e.Tick(at(10*time.Minute + 5*time.Second))

	if e.Elapsed() != before+5 {
		t.Fatalf("elapsed = %d, want %d", e.Elapsed(), before+5)
	}
}

func TestTimerIncrementField(t *testing.T) {
	t.Run("accumulates while stopped", func(t *testing.T) {
		e := engine.New(engine.WithMode(engine.ModeTimer))

		e.IncrementField(engine.FieldHours)
		e.IncrementField(engine.FieldMinutes)
		e.IncrementField(engine.FieldSeconds)

		if got, want := e.Target(), int64(3661); got != want {
			t.Fatalf("target = %d, want %d", got, want)
		}

		// stopped timers mirror the configured countdown
		if e.Elapsed() != e.Target() {
			t.Fatalf("elapsed = %d, want %d", e.Elapsed(), e.Target())
		}
	})

	t.Run("rejected while running", func(t *testing.T) {
		e := engine.New(engine.WithMode(engine.ModeTimer), engine.WithTarget(60))

		e.StartOrToggle(base)
		e.IncrementField(engine.FieldMinutes)

		if e.Target() != 60 {
			t.Fatalf("target = %d, want 60 (increment must be ignored)", e.Target())
		}
	})

	t.Run("rejected at the bound", func(t *testing.T) {
		e := engine.New(
			engine.WithMode(engine.ModeTimer),
			engine.WithTarget(engine.MaxSeconds),
		)

		e.IncrementField(engine.FieldSeconds)

		if e.Target() != engine.MaxSeconds {
			t.Fatalf("target = %d, want %d (not wrapped)", e.Target(), engine.MaxSeconds)
		}
	})

	t.Run("ignored outside timer mode", func(t *testing.T) {
		e := engine.New(engine.WithMode(engine.ModeStopwatch))

		e.IncrementField(engine.FieldMinutes)

		if e.Target() != 0 {
			t.Fatalf("target = %d, want 0", e.Target())
		}
	})
}

func TestTimerCountdownExpires(t *testing.T) {
	e := engine.New(engine.WithMode(engine.ModeTimer))

	e.IncrementField(engine.FieldMinutes)
	e.IncrementField(engine.FieldMinutes)

	if e.Target() != 120 {
		t.Fatalf("target = %d, want 120", e.Target())
	}

	e.StartOrToggle(base)

	for s := 1; s <= 120; s++ {
		e.Tick(at(time.Duration(s) * time.Second))
	}

	if !e.Flashing() {
		t.Fatal("engine is not flashing after the countdown reached zero")
	}

	if e.Running() || e.Paused() {
		t.Fatalf("running = %v, paused = %v, want neither", e.Running(), e.Paused())
	}

	if e.Elapsed() != 0 {
		t.Fatalf("elapsed = %d, want 0", e.Elapsed())
	}

	v := e.DisplayValue(at(121 * time.Second))
	if v.Units != 0 {
		t.Fatalf("display units = %d, want 0 while flashing", v.Units)
	}

	// commands are inert until the flash window elapses
	e.StartOrToggle(at(121 * time.Second))
	e.SwitchMode()

	if !e.Flashing() || e.Mode() != engine.ModeTimer {
		t.Fatal("expired state must be terminal until the flash window elapses")
	}

	e.Tick(at(120*time.Second + engine.FlashWindow))

	if e.Flashing() {
		t.Fatal("flashing did not clear after the flash window")
	}

	if e.Mode() != engine.ModeClock {
		t.Fatalf("mode = %s, want Clock after expiry", e.Mode())
	}

	if e.Target() != 0 {
		t.Fatalf("target = %d, want 0 (expiry consumes the countdown)", e.Target())
	}
}

func TestTimerPauseHoldsRemaining(t *testing.T) {
	e := engine.New(engine.WithMode(engine.ModeTimer), engine.WithTarget(120))

	e.StartOrToggle(base)
	e.Tick(at(30 * time.Second))
	e.StartOrToggle(at(30 * time.Second)) // pause

	if got, want := e.Elapsed(), int64(90); got != want {
		t.Fatalf("held remaining = %d, want %d", got, want)
	}

	v := e.DisplayValue(at(5 * time.Minute))
	if v.Units != 90 {
		t.Fatalf("display units = %d, want 90 while paused", v.Units)
	}

	e.StartOrToggle(at(5 * time.Minute)) // resume
	e.Tick(at(5*time.Minute + 30*time.Second))

	v = e.DisplayValue(at(5*time.Minute + 30*time.Second))
	if v.Units != 60 {
		t.Fatalf("display units = %d, want 60 after resume", v.Units)
	}
}

func TestTimerWithoutTargetDoesNotStart(t *testing.T) {
	e := engine.New(engine.WithMode(engine.ModeTimer))

	e.StartOrToggle(base)

	if e.Running() {
		t.Fatal("a zero-target countdown must not start")
	}
}

func TestToggleFormat(t *testing.T) {
	t.Run("converts stored units", func(t *testing.T) {
		e := engine.New(engine.WithMode(engine.ModeStopwatch))

		e.ToggleFormat()

		if e.Format() != engine.FormatMS {
			t.Fatalf("format = %s, want ms", e.Format())
		}

		if e.TickInterval() != 10*time.Millisecond {
			t.Fatalf("tick interval = %s, want 10ms", e.TickInterval())
		}

		e.ToggleFormat()

		if e.Format() != engine.FormatHMS {
			t.Fatalf("format = %s, want hms", e.Format())
		}

		if e.TickInterval() != time.Second {
			t.Fatalf("tick interval = %s, want 1s", e.TickInterval())
		}
	})

	t.Run("ignored while running or paused", func(t *testing.T) {
		e := engine.New(engine.WithMode(engine.ModeStopwatch))

		e.StartOrToggle(base)
		e.ToggleFormat()

		if e.Format() != engine.FormatHMS {
			t.Fatal("format changed while running")
		}

		e.StartOrToggle(at(time.Second)) // pause
		e.ToggleFormat()

		if e.Format() != engine.FormatHMS {
			t.Fatal("format changed while paused")
		}
	})
}

func TestSwitchModeStopsAndClears(t *testing.T) {
	e := engine.New(engine.WithMode(engine.ModeStopwatch))

	e.StartOrToggle(base)
	e.Tick(at(10 * time.Second))
	e.SwitchMode()

	if e.Mode() != engine.ModeTimer {
		t.Fatalf("mode = %s, want Timer", e.Mode())
	}

	if e.Running() || e.Paused() {
		t.Fatal("switching modes must stop the engine")
	}

	e.SwitchMode()

	if e.Mode() != engine.ModeStopwatch {
		t.Fatalf("mode = %s, want Stopwatch", e.Mode())
	}

	if e.Elapsed() != 0 {
		t.Fatalf("elapsed = %d, want 0 after mode switch", e.Elapsed())
	}
}

func TestResetReturnsToClock(t *testing.T) {
	states := map[string]func(e *engine.Engine){
		"running stopwatch": func(e *engine.Engine) {
			e.SwitchMode()
			e.SwitchMode()
			e.StartOrToggle(base)
			e.Tick(at(5 * time.Second))
		},
		"paused timer": func(e *engine.Engine) {
			e.SwitchMode()
			e.IncrementField(engine.FieldMinutes)
			e.StartOrToggle(base)
			e.StartOrToggle(at(10 * time.Second))
		},
		"idle clock": func(e *engine.Engine) {},
	}

	for name, setup := range states {
		t.Run(name, func(t *testing.T) {
			e := engine.New()
			setup(e)

			e.Reset()

			if e.Mode() != engine.ModeClock {
				t.Fatalf("mode = %s, want Clock", e.Mode())
			}

			if e.Running() || e.Paused() || e.Flashing() {
				t.Fatal("reset engine must be fully stopped")
			}

			if e.Elapsed() != 0 || e.Target() != 0 {
				t.Fatalf(
					"elapsed = %d, target = %d, want both 0",
					e.Elapsed(), e.Target(),
				)
			}
		})
	}
}

func TestLogSession(t *testing.T) {
	t.Run("records the session and zeroes the stopwatch", func(t *testing.T) {
		e := engine.New(engine.WithMode(engine.ModeStopwatch))

		e.StartOrToggle(base)

		for s := 1; s <= 65; s++ {
			e.Tick(at(time.Duration(s) * time.Second))
		}

		entry, ok := e.LogSession(at(65 * time.Second))
		if !ok {
			t.Fatal("LogSession reported nothing to log")
		}

		want := sessionlog.Entry{
			ID:                base.Format(time.RFC3339Nano),
			StartTime:         base,
			DurationSeconds:   65,
			FormattedDuration: "00:01:05",
		}

		if diff := cmp.Diff(want, entry); diff != "" {
			t.Fatalf("entry mismatch (-want +got):\n%s", diff)
		}

		if e.Mode() != engine.ModeStopwatch {
			t.Fatalf("mode = %s, want Stopwatch (implicit reset stays put)", e.Mode())
		}

		if e.Running() || e.Paused() || e.Elapsed() != 0 {
			t.Fatalf(
				"running = %v, paused = %v, elapsed = %d, want stopped and zeroed",
				e.Running(), e.Paused(), e.Elapsed(),
			)
		}
	})

	t.Run("start time survives pause and resume", func(t *testing.T) {
		e := engine.New(engine.WithMode(engine.ModeStopwatch))

		e.StartOrToggle(base)
		e.Tick(at(10 * time.Second))
		e.StartOrToggle(at(10 * time.Second))     // pause
		e.StartOrToggle(at(20 * time.Second))     // resume
		e.Tick(at(25 * time.Second))

		entry, ok := e.LogSession(at(25 * time.Second))
		if !ok {
			t.Fatal("LogSession reported nothing to log")
		}

		if !entry.StartTime.Equal(base) {
			t.Fatalf("start time = %s, want the original session start %s", entry.StartTime, base)
		}

		if entry.DurationSeconds != 15 {
			t.Fatalf("duration = %d, want 15", entry.DurationSeconds)
		}
	})

	t.Run("no-op preconditions", func(t *testing.T) {
		// nothing recorded in clock mode
		e := engine.New()
		if _, ok := e.LogSession(base); ok {
			t.Fatal("logged a session in clock mode")
		}

		// nothing recorded for a zero-elapsed stopwatch
		e = engine.New(engine.WithMode(engine.ModeStopwatch))
		e.StartOrToggle(base)

		if _, ok := e.LogSession(base); ok {
			t.Fatal("logged a session with zero elapsed time")
		}

		if !e.Running() {
			t.Fatal("a failed log must leave engine state unchanged")
		}
	})

	t.Run("centisecond format converts to whole seconds", func(t *testing.T) {
		e := engine.New(
			engine.WithMode(engine.ModeStopwatch),
			engine.WithFormat(engine.FormatMS),
		)

		e.StartOrToggle(base)
		e.Tick(at(65*time.Second + 400*time.Millisecond))

		entry, ok := e.LogSession(at(65*time.Second + 400*time.Millisecond))
		if !ok {
			t.Fatal("LogSession reported nothing to log")
		}

		if entry.DurationSeconds != 65 {
			t.Fatalf("duration = %d, want 65", entry.DurationSeconds)
		}

		if entry.FormattedDuration != "01:05.40" {
			t.Fatalf("formatted = %q, want 01:05.40", entry.FormattedDuration)
		}
	})
}

func TestDisplayValueClockMode(t *testing.T) {
	e := engine.New()

	now := at(42 * time.Second)

	v := e.DisplayValue(now)
	if !v.Wall.Equal(now) {
		t.Fatalf("wall = %s, want %s", v.Wall, now)
	}
}

func TestDisplayValueAfterCountdownResume(t *testing.T) {
	e := engine.New(
		engine.WithMode(engine.ModeTimer),
		engine.WithTarget(120),
	)

	e.StartOrToggle(base)
	e.Tick(at(30 * time.Second))
	e.StartOrToggle(at(30 * time.Second)) // pause with 90s remaining
	e.StartOrToggle(at(45 * time.Second)) // resume

	// the readout must show the remaining time even before the first
	// tick of the new segment lands
	if got := e.DisplayValue(at(45 * time.Second)).Units; got != 90 {
		t.Fatalf("remaining at resume = %d, want 90", got)
	}

	if got := e.DisplayValue(at(55 * time.Second)).Units; got != 80 {
		t.Fatalf("remaining 10s after resume = %d, want 80", got)
	}
}
