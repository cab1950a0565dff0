package catalog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// NewLogger builds the tool's logger for the given level. An empty level
// defaults to info. Output goes to stderr so it never mixes with formatted
// table output on stdout.
func NewLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{Level: lvl})
	return slog.New(handler), nil
}
