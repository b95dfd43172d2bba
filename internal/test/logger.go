package test

import (
	"io"
	"log/slog"
)

// DiscardLogger returns a JSON logger writing nowhere.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
