// Package logging builds the zap loggers used by the urlkit commands.
// The transformation library itself never logs.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ValidLogLevels lists all valid zap log levels for validation.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

// IsValidLogLevel checks if the given level string is a valid zap log level.
// Comparison is case-insensitive.
func IsValidLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, valid := range ValidLogLevels {
		if level == valid {
			return true
		}
	}
	return false
}

// BuildLogger constructs a logger for the given level and env.
// "prod" logs JSON; anything else uses the development console encoder.
// An invalid level falls back to "warn" with a notice on stderr.
func BuildLogger(level, env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "prod" {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if err := cfg.Level.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		_, _ = os.Stderr.WriteString("WARNING: invalid log level \"" + level +
			"\"; valid levels are: " + strings.Join(ValidLogLevels, ", ") + ". Defaulting to \"warn\".\n")
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	// stdout carries command output; logs go to stderr.
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// Nop returns a logger that discards everything. Commands start with it so
// that code running before configuration is loaded can log safely.
func Nop() *zap.Logger {
	return zap.NewNop()
}
