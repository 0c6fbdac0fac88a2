package widget

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/kolade/tick/internal/engine"
)

func (w *Widget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return w.handleTick(msg)

	case tea.KeyMsg:
		return w.handleKey(msg)

	case tea.WindowSizeMsg:
		w.width = msg.Width
		return w, nil
	}

	return w, nil
}

// handleTick advances the engine and reschedules. Alert side effects fire
// exactly once, on the tick that moves the countdown into the flashing
// state.
func (w *Widget) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	wasFlashing := w.Engine.Flashing()

	w.Engine.Tick(time.Time(msg))

	if w.Engine.Flashing() {
		w.blinkOn = !w.blinkOn

		if !wasFlashing {
			go w.alert()
		}
	} else {
		w.blinkOn = true
	}

	return w, w.tick()
}

func (w *Widget) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slog.Debug(spew.Sdump(msg))

	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		w.Engine.StartOrToggle(w.clock())

	case key.Matches(msg, defaultKeymap.switchMode):
		w.Engine.SwitchMode()

	case key.Matches(msg, defaultKeymap.format):
		w.Engine.ToggleFormat()

	// terminal key repeat drives press-and-hold acceleration, so each
	// repeated KeyMsg lands here as a fresh increment
	case key.Matches(msg, defaultKeymap.hours):
		w.Engine.IncrementField(engine.FieldHours)

	case key.Matches(msg, defaultKeymap.minutes):
		w.Engine.IncrementField(engine.FieldMinutes)

	case key.Matches(msg, defaultKeymap.seconds):
		w.Engine.IncrementField(engine.FieldSeconds)

	case key.Matches(msg, defaultKeymap.log):
		w.logSession()

	case key.Matches(msg, defaultKeymap.reset):
		w.Engine.Reset()

	case key.Matches(msg, defaultKeymap.quit):
		return w, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return w, nil
}

// logSession hands the completed stopwatch session to the log and the
// history store. Nothing happens when the engine has nothing to log.
func (w *Widget) logSession() {
	entry, ok := w.Engine.LogSession(w.clock())
	if !ok {
		return
	}

	w.Log.Append(entry)

	if w.db == nil {
		return
	}

	err := w.db.SaveEntry(entry)
	if err != nil {
		slog.Error("unable to persist logged session", slog.Any("error", err))
	}
}
