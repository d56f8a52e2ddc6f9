package app

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/dietrack-backend/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the
// slog default. Every line carries app=dietrack and the build version.
//
// Format "json" is meant for production; "text" adds source locations.
// Level accepts debug, info, warn, error in any case, with an optional
// offset such as "info+2"; anything else falls back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: utcTime,
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("app", "dietrack"),
		slog.String("version", Version),
	)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// utcTime logs timestamps in UTC, the zone ledger days are keyed in.
func utcTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.TimeValue(a.Value.Time().UTC().Truncate(time.Millisecond))
	}
	return a
}
