package app

import "github.com/urfave/cli/v2"

var (
	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Restrict the reporting period (e.g. '2 weeks ago', 'yesterday')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output in JSON format",
	}

	forceFlag = &cli.BoolFlag{
		Name:    "force",
		Aliases: []string{"f"},
		Usage:   "Skip the confirmation prompt",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Enable debug logging",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Stopwatch display format: 'hms' (99:59:59) or 'ms' (59:59.99)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a countdown expires",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Path to a sound file (mp3, ogg, flac, or wav) to play when a countdown expires. Set to 'off' to disable",
	}

	expiryCmdFlag = &cli.StringFlag{
		Name:    "expiry-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command when a countdown expires",
	}
)
