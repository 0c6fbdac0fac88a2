package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/kolade/tick/config"
	"github.com/kolade/tick/history"
	"github.com/kolade/tick/internal/engine"
	"github.com/kolade/tick/internal/ui"
	"github.com/kolade/tick/stats"
	"github.com/kolade/tick/store"
	"github.com/kolade/tick/widget"
)

const (
	envNoColor     = "NO_COLOR"
	envTickNoColor = "TICK_NO_COLOR"
)

var (
	errInvalidDuration = errors.New(
		"invalid duration: use a Go duration ('25m', '1h30m') or a number of minutes",
	)

	errIDRequired = errors.New("the id of the session to delete is required")
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// parseTarget interprets a countdown duration argument. Both Go duration
// strings and bare numbers of minutes are accepted.
func parseTarget(arg string) (int64, error) {
	if d, err := time.ParseDuration(arg); err == nil {
		if d <= 0 {
			return 0, errInvalidDuration
		}

		return int64(d / time.Second), nil
	}

	mins, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || mins <= 0 {
		return 0, errInvalidDuration
	}

	return mins * 60, nil
}

// parseSince resolves a natural-language time range argument ('2 weeks
// ago', 'yesterday') into the start of the reporting period. An empty
// argument means all time.
func parseSince(arg string) (time.Time, error) {
	if arg == "" {
		return time.Time{}, nil
	}

	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime: time.Now(),
	}, arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse '%s': %w", arg, err)
	}

	return dt.Time, nil
}

// launchWidget opens the history store and runs the widget until the user
// quits. A store that cannot be opened downgrades history persistence to a
// warning rather than an error.
func launchWidget(cfg *config.Config, eng *engine.Engine) error {
	ui.DarkTheme = cfg.DarkTheme

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		pterm.Warning.Printfln(
			"session history will not be saved: %s",
			err.Error(),
		)

		db = nil
	}

	if db != nil {
		defer db.Close()
	}

	w := widget.New(cfg, eng, db)

	_, err = tea.NewProgram(w).Run()

	return err
}

// defaultAction launches the widget as a wall clock.
func defaultAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	eng := engine.New(
		engine.WithFormat(engine.ParseFormat(cfg.StopwatchFormat)),
	)

	return launchWidget(cfg, eng)
}

// timerAction launches the widget as a countdown timer, optionally preset
// from a duration argument.
func timerAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	opts := []engine.Option{
		engine.WithMode(engine.ModeTimer),
		engine.WithFormat(engine.ParseFormat(cfg.StopwatchFormat)),
	}

	if arg := ctx.Args().First(); arg != "" {
		target, err := parseTarget(arg)
		if err != nil {
			return err
		}

		opts = append(opts, engine.WithTarget(target))
	}

	return launchWidget(cfg, engine.New(opts...))
}

// stopwatchAction launches the widget as a stopwatch.
func stopwatchAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	eng := engine.New(
		engine.WithMode(engine.ModeStopwatch),
		engine.WithFormat(engine.ParseFormat(cfg.StopwatchFormat)),
	)

	return launchWidget(cfg, eng)
}

// historyAction prints the logged sessions for the specified time range.
func historyAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	ui.DarkTheme = cfg.DarkTheme

	since, err := parseSince(ctx.String("since"))
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	return history.List(db, since, ctx.Bool("json"))
}

// historyDeleteAction deletes a single logged session.
func historyDeleteAction(ctx *cli.Context) error {
	config.Get(ctx)

	id := ctx.Args().First()
	if id == "" {
		return errIDRequired
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	return history.Delete(db, id)
}

// historyClearAction deletes all logged sessions.
func historyClearAction(ctx *cli.Context) error {
	config.Get(ctx)

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	return history.Clear(db, ctx.Bool("force"))
}

// statsAction reports statistics for the specified time range.
func statsAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	ui.DarkTheme = cfg.DarkTheme

	since, err := parseSince(ctx.String("since"))
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	entries, err := db.Entries(since)
	if err != nil {
		return err
	}

	s := stats.Compute(entries, since)

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	return s.Show(os.Stdout)
}

// editConfigAction opens the tick config file in the user's default text
// editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg := config.Get(ctx)

	cmd := exec.Command(editor, cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	config.InitializePaths()
	config.InitLogging(ctx.Bool("verbose"))

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if TICK_NO_COLOR is set
	if _, exists := os.LookupEnv(envTickNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
