// Package widget renders the clock face and drives the time-tracking
// engine in response to user input.
package widget

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kolade/tick/config"
	"github.com/kolade/tick/internal/engine"
	"github.com/kolade/tick/internal/sessionlog"
	"github.com/kolade/tick/store"
)

// tickMsg carries the instant a scheduled tick fired.
type tickMsg time.Time

// blinkInterval is the cadence of the readout blink while an expired
// countdown flashes.
const blinkInterval = 500 * time.Millisecond

// Widget is the bubbletea model wrapping the time-tracking engine and the
// session log.
type Widget struct {
	Engine *engine.Engine
	Log    *sessionlog.Log
	Opts   *config.Config

	db      store.DB // nil when history persistence is unavailable
	clock   func() time.Time
	help    help.Model
	width   int
	blinkOn bool
}

// New returns a widget around the given engine. The db may be nil, in
// which case logged sessions live only in memory.
func New(opts *config.Config, eng *engine.Engine, db store.DB) *Widget {
	return &Widget{
		Engine:  eng,
		Log:     sessionlog.New(),
		Opts:    opts,
		db:      db,
		clock:   time.Now,
		help:    help.New(),
		blinkOn: true,
	}
}

func (w *Widget) Init() tea.Cmd {
	return w.tick()
}

// tick schedules the next engine tick. The cadence follows the engine's
// mode and format, except while flashing where the blink rate wins.
func (w *Widget) tick() tea.Cmd {
	interval := w.Engine.TickInterval()
	if w.Engine.Flashing() {
		interval = blinkInterval
	}

	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
