package observability_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brr-dev/zenith/internal/config"
	"github.com/brr-dev/zenith/internal/observability"
)

func TestNewLogger_ValidConfigs(t *testing.T) {
	tests := []struct {
		level  string
		format string
	}{
		{"debug", "json"},
		{"info", "console"},
		{"warn", "json"},
		{"error", "console"},
	}
	for _, tt := range tests {
		t.Run(tt.level+"_"+tt.format, func(t *testing.T) {
			logger, err := observability.NewLogger(config.LoggingConfig{Level: tt.level, Format: tt.format})
			require.NoError(t, err)
			require.NotNil(t, logger)
			logger.Sync() //nolint:errcheck
		})
	}
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := observability.NewLogger(config.LoggingConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}

func TestNewLogger_BadFormat(t *testing.T) {
	_, err := observability.NewLogger(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestNewFileLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, err := observability.NewFileLogger(config.LoggingConfig{Level: "info", Format: "json"}, path)
	require.NoError(t, err)

	logger.Info("session started")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
}
