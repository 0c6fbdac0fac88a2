package widget

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	switchMode key.Binding
	format     key.Binding
	hours      key.Binding
	minutes    key.Binding
	seconds    key.Binding
	log        key.Binding
	reset      key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/pause"),
	),
	switchMode: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "timer/stopwatch"),
	),
	format: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "format"),
	),
	hours: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "+1 hour"),
	),
	minutes: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "+1 min"),
	),
	seconds: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "+1 sec"),
	),
	log: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "log session"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
