package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/kolade/tick/internal/engine"
)

var (
	baseStyle = lipgloss.NewStyle().Padding(1, 2)

	readoutStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#B0DB43"))

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#12EAEA"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C492B1"))

	hintStyle = lipgloss.NewStyle().Faint(true)
)

// readout renders the current display value as text.
func (w *Widget) readout() string {
	value := w.Engine.DisplayValue(w.clock())

	if !value.Wall.IsZero() {
		timeFormat := "03:04:05 PM"
		if w.Opts.TwentyFourHourClock {
			timeFormat = "15:04:05"
		}

		return value.Wall.Format(timeFormat)
	}

	return engine.FormatUnits(value.Units, value.Format)
}

func (w *Widget) statusView() string {
	switch {
	case w.Engine.Flashing():
		return statusStyle.Render("Time's up!")
	case w.Engine.Paused():
		return statusStyle.Render("[Paused]")
	case w.Engine.Mode() == engine.ModeTimer && !w.Engine.Running():
		return hintStyle.Render("h/m/s sets the countdown, space starts it")
	case w.Engine.Mode() == engine.ModeStopwatch && !w.Engine.Running():
		return hintStyle.Render("space starts, l logs the session")
	default:
		return ""
	}
}

func (w *Widget) helpView() string {
	switch w.Engine.Mode() {
	case engine.ModeTimer:
		return w.help.ShortHelpView([]key.Binding{
			defaultKeymap.togglePlay,
			defaultKeymap.hours,
			defaultKeymap.minutes,
			defaultKeymap.seconds,
			defaultKeymap.switchMode,
			defaultKeymap.reset,
			defaultKeymap.quit,
		})
	case engine.ModeStopwatch:
		return w.help.ShortHelpView([]key.Binding{
			defaultKeymap.togglePlay,
			defaultKeymap.log,
			defaultKeymap.format,
			defaultKeymap.switchMode,
			defaultKeymap.reset,
			defaultKeymap.quit,
		})
	default:
		return w.help.ShortHelpView([]key.Binding{
			defaultKeymap.togglePlay,
			defaultKeymap.switchMode,
			defaultKeymap.quit,
		})
	}
}

func (w *Widget) View() string {
	var s strings.Builder

	readout := w.readout()

	// blink the readout while an expired countdown flashes
	if w.Engine.Flashing() && !w.blinkOn {
		readout = strings.Repeat(" ", len(readout))
	}

	header := modeStyle.Render(fmt.Sprintf("[%s]", w.Engine.Mode()))

	if w.Engine.Mode() == engine.ModeStopwatch && w.Log.Len() > 0 {
		header += hintStyle.Render(
			fmt.Sprintf(" %d logged", w.Log.Len()),
		)
	}

	s.WriteString(header)
	s.WriteString("\n\n")
	s.WriteString(readoutStyle.Render(readout))

	if status := w.statusView(); status != "" {
		s.WriteString("\n\n")
		s.WriteString(status)
	}

	s.WriteString("\n\n")
	s.WriteString(w.helpView())

	return baseStyle.Render(s.String())
}
