package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = "info"

// New builds the application logger. Production emits JSON to stdout;
// development uses the console encoder. An unknown level falls back to info.
func New(level string, production bool) (*zap.Logger, error) {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil || level == "" {
		_ = lvl.UnmarshalText([]byte(defaultLevel))
	}

	cfg := zap.NewDevelopmentConfig()
	if production {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		cfg.DisableStacktrace = true
	}
	cfg.Level = lvl

	return cfg.Build()
}
