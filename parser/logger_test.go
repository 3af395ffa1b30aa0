package parser

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaptureLogger(buf *bytes.Buffer) *SlogAdapter {
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogAdapter(slog.New(handler))
}

func TestNopLogger(t *testing.T) {
	l := NopLogger{}
	l.Debug("message", "key", "value")
	l.Info("message")
	l.Warn("message")
	l.Error("message")
	_, ok := l.With("key", "value").(NopLogger)
	assert.True(t, ok, "With should return NopLogger")
}

func TestSlogAdapter(t *testing.T) {
	t.Run("nil uses default", func(t *testing.T) {
		assert.NotNil(t, NewSlogAdapter(nil).logger)
	})

	t.Run("levels and attrs", func(t *testing.T) {
		var buf bytes.Buffer
		l := newCaptureLogger(&buf)
		l.Debug("debug message", "k", 1)
		l.Info("info message")
		l.Warn("warn message")
		l.Error("error message")

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG msg=\"debug message\" k=1")
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "level=ERROR")
	})

	t.Run("With prepends attrs", func(t *testing.T) {
		var buf bytes.Buffer
		l := newCaptureLogger(&buf).With("component", "parser")
		l.Info("hello")
		assert.Contains(t, buf.String(), "component=parser")
	})
}

func TestParserLogsThroughLogger(t *testing.T) {
	var buf bytes.Buffer
	p := New()
	p.Logger = newCaptureLogger(&buf)

	_, err := p.ParseBytes([]byte(minimalSwagger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "parsed document")
	assert.Contains(t, buf.String(), "version=2.0")
}
