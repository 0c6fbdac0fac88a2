// Package app defines the tick command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/kolade/tick/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the tick app instance.
func Get() *cli.App {
	tickApp := &cli.App{
		Name: "tick",
		Usage: `
		Tick is a clock, countdown timer, and stopwatch for the command-line,
		with a persistent log of your stopwatch sessions.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "timer",
				Usage:     "Start a countdown timer (e.g. 'tick timer 25m')",
				UsageText: "timer [OPTIONS] [DURATION]",
				Action:    timerAction,
				Flags: []cli.Flag{
					disableNotificationFlag,
					soundFlag,
					expiryCmdFlag,
				},
			},
			{
				Name:   "stopwatch",
				Usage:  "Start a stopwatch",
				Action: stopwatchAction,
				Flags: []cli.Flag{
					formatFlag,
				},
			},
			{
				Name:   "history",
				Usage:  "List logged stopwatch sessions",
				Action: historyAction,
				Flags: []cli.Flag{
					sinceFlag,
					jsonFlag,
				},
				Subcommands: []*cli.Command{
					{
						Name:      "delete",
						Usage:     "Delete a logged session by its id",
						UsageText: "history delete <ID>",
						Action:    historyDeleteAction,
					},
					{
						Name:   "clear",
						Usage:  "Delete all logged sessions",
						Action: historyClearAction,
						Flags: []cli.Flag{
							forceFlag,
						},
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Report statistics over logged stopwatch sessions",
				Action: statsAction,
				Flags: []cli.Flag{
					sinceFlag,
					jsonFlag,
				},
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			formatFlag,
			disableNotificationFlag,
			soundFlag,
			expiryCmdFlag,
			noColorFlag,
			verboseFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return tickApp
}
