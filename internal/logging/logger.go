// Package logging builds the zap logger used by the urwerk CLI and adapts it
// to the urwerk.Logger interface.
package logging

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/neusy/urwerk-client/pkg/urwerk"
)

// LogLevelEnvVar controls logging verbosity when no level is given.
// When unset or empty, logging is silent.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "URWERK_LOG_LEVEL"

// New creates a logger for the given level. An empty level falls back to
// URWERK_LOG_LEVEL; if that is empty too the logger discards everything.
// Output goes to stderr so command output on stdout stays parseable.
func New(level string) (*zap.Logger, error) {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		return zap.NewNop(), nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// parseLevel maps a level name to zap. Unknown names mean info.
func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Adapter exposes a zap logger as an urwerk.Logger.
type Adapter struct {
	logger *zap.Logger
}

// NewAdapter wraps logger. A nil logger discards everything.
func NewAdapter(logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Adapter{logger: logger}
}

// Debug implements urwerk.Logger.
func (a *Adapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, toZap(fields)...)
}

// Info implements urwerk.Logger.
func (a *Adapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, toZap(fields)...)
}

// Warn implements urwerk.Logger.
func (a *Adapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, toZap(fields)...)
}

// Error implements urwerk.Logger.
func (a *Adapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, toZap(fields)...)
}

// toZap converts fields in key order so log lines are stable.
func toZap(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		out = append(out, zap.Any(key, fields[key]))
	}

	return out
}

var _ urwerk.Logger = (*Adapter)(nil)
