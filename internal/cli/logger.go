package cli

import (
	"fmt"
	"io"
	"log/slog"
)

// NewLogger builds the batch logger writing to outW. level is one of
// debug, info, warn or error; format is "text" or "json". The global slog
// default is left untouched.
func NewLogger(level, format string, outW io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("cli: log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(outW, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(outW, opts)), nil
	default:
		return nil, fmt.Errorf("cli: log format %q: want text or json", format)
	}
}
