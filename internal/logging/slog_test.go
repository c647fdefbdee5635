package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSlog(buf *bytes.Buffer) *SlogLogger {
	h := slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: RedactSecrets,
	})
	return NewSlogLogger(slog.New(h))
}

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := newSlog(&buf)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG msg=dbg a=1",
		"level=INFO msg=inf b=2",
		"level=WARN msg=wrn c=3",
		"level=ERROR msg=err d=4",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := newSlog(&buf).With("component", "session")

	log.Info(context.Background(), "restored", "user_id", 7)

	assert.Contains(t, buf.String(), "component=session")
	assert.Contains(t, buf.String(), "user_id=7")
}

func TestSlogLogger_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	log := newSlog(&buf)

	log.Info(context.Background(), "login", "email", "a@b.c", "password", "hunter2", "access_token", "eyJ", "Authorization", "Bearer x")

	out := buf.String()
	assert.Contains(t, out, "email=a@b.c")
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "eyJ")
	assert.NotContains(t, out, "Bearer x")
	assert.Contains(t, out, "password="+Redacted)
}

func TestNew_SlogRedacts(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "slog", "debug", false)

	log.Debug(context.Background(), "request", "token", "secret")

	assert.NotContains(t, buf.String(), "secret")
	assert.Contains(t, buf.String(), Redacted)
}
