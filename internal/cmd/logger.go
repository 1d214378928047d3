package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-cz/devslog"
	"github.com/mattn/go-isatty"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidLogLevel, level)
	}
}

func newLogHandler(w *os.File, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if isatty.IsTerminal(w.Fd()) {
		return devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: opts,
		})
	}
	return slog.NewJSONHandler(w, opts)
}

func initLogger(level string) error {
	parsedLevel, err := parseLevel(level)
	if err != nil {
		return err
	}

	logger := slog.New(newLogHandler(os.Stdout, parsedLevel))
	slog.SetDefault(logger)

	return nil
}
