package config

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogging routes slog output to a rotating log file in the data
// directory so TUI rendering is never disturbed.
func InitLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	writer := &lumberjack.Logger{
		Filename:   LogFilePath(),
		MaxSize:    1, // megabytes
		MaxBackups: 3,
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: level,
		})),
	)
}
