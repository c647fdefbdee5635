package logging

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts zerolog to Logger.
type ZerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger builds a zerolog-backed Logger writing to w.
// Development mode uses the human-readable console writer; otherwise
// one JSON object per line is emitted.
func NewZerologLogger(w io.Writer, level string, development bool) *ZerologLogger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if development {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	l := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return &ZerologLogger{l: l}
}

// checkFields drops an odd-length field list instead of letting zerolog
// pair a key with nothing. Secret values are masked.
func (z *ZerologLogger) checkFields(level string, fields []any) []any {
	if len(fields)%2 != 0 {
		z.l.Warn().
			Int("fields_count", len(fields)).
			Str("log_level", level).
			Msg("odd number of log fields, fields ignored")
		return nil
	}
	out := make([]any, len(fields))
	copy(out, fields)
	for i := 0; i < len(out); i += 2 {
		if k, ok := out[i].(string); ok && isSecret(k) {
			out[i+1] = Redacted
		}
	}
	return out
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.l.Debug().Ctx(ctx).Fields(z.checkFields("debug", args)).Msg(msg)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	z.l.Info().Ctx(ctx).Fields(z.checkFields("info", args)).Msg(msg)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.l.Warn().Ctx(ctx).Fields(z.checkFields("warn", args)).Msg(msg)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	z.l.Error().Ctx(ctx).Fields(z.checkFields("error", args)).Msg(msg)
}

func (z *ZerologLogger) With(args ...any) Logger {
	return &ZerologLogger{l: z.l.With().Fields(z.checkFields("with", args)).Logger()}
}
