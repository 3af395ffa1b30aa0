// Package logging builds the CLI's zap logger and adapts it to parser.Logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/swagcodegen/swagcodegen/parser"
)

// New returns a console logger writing to stderr at level (debug, info,
// warn or error).
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableStacktrace = lvl > zapcore.DebugLevel
	return cfg.Build()
}

// Adapter wraps a zap logger to implement parser.Logger. Attributes are
// alternating key/value pairs, as with slog.
type Adapter struct {
	logger *zap.SugaredLogger
}

var _ parser.Logger = (*Adapter)(nil)

// NewAdapter creates an Adapter. A nil logger discards everything.
func NewAdapter(logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{logger: logger.Sugar()}
}

// Debug logs at debug level.
func (a *Adapter) Debug(msg string, attrs ...any) { a.logger.Debugw(msg, attrs...) }

// Info logs at info level.
func (a *Adapter) Info(msg string, attrs ...any) { a.logger.Infow(msg, attrs...) }

// Warn logs at warn level.
func (a *Adapter) Warn(msg string, attrs ...any) { a.logger.Warnw(msg, attrs...) }

// Error logs at error level.
func (a *Adapter) Error(msg string, attrs ...any) { a.logger.Errorw(msg, attrs...) }

// With returns an Adapter carrying attrs on every entry.
func (a *Adapter) With(attrs ...any) parser.Logger {
	return &Adapter{logger: a.logger.With(attrs...)}
}
