package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/polkiloo/ecopoints/internal/config"
)

const serviceName = "ecopoints"

// New creates a JSON slog.Logger at the configured level.
// Unknown levels fall back to info.
func New(cfg *config.Config) *slog.Logger {
	return newWithWriter(os.Stdout, cfg.LogLevel)
}

func newWithWriter(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With(slog.String("service", serviceName))
}
