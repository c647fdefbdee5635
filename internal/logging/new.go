package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New picks an adapter by name ("slog" or "zerolog"); unknown names fall
// back to zerolog.
func New(w io.Writer, format, level string, development bool) Logger {
	if strings.EqualFold(format, "slog") {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = slog.LevelInfo
		}
		var h slog.Handler
		opts := &slog.HandlerOptions{Level: lvl, ReplaceAttr: RedactSecrets}
		if development {
			h = slog.NewTextHandler(w, opts)
		} else {
			h = slog.NewJSONHandler(w, opts)
		}
		return NewSlogLogger(slog.New(h))
	}
	return NewZerologLogger(w, level, development)
}
