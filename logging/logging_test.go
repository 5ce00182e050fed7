package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		production bool
		enabled    zapcore.Level
		disabled   *zapcore.Level
	}{
		{"debug development", "debug", false, zapcore.DebugLevel, nil},
		{"warn production", "WARN", true, zapcore.WarnLevel, level(zapcore.InfoLevel)},
		{"empty falls back to info", "", true, zapcore.InfoLevel, level(zapcore.DebugLevel)},
		{"unknown falls back to info", "loud", false, zapcore.InfoLevel, level(zapcore.DebugLevel)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.level, tt.production)
			require.NoError(t, err)
			defer func() { _ = log.Sync() }()

			core := log.Core()
			assert.True(t, core.Enabled(tt.enabled))
			if tt.disabled != nil {
				assert.False(t, core.Enabled(*tt.disabled))
			}
		})
	}
}

func level(l zapcore.Level) *zapcore.Level {
	return &l
}
