package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brr-dev/zenith/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, "game:\n  disc: content/demo/disc.yaml\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "content/demo/disc.yaml", cfg.Game.Disc)
	assert.Equal(t, 4000, cfg.Telnet.Port)
	assert.Equal(t, "0.0.0.0:4000", cfg.Telnet.Addr())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
game:
  disc: games/hollow-house/disc.yaml
telnet:
  host: 127.0.0.1
  port: 4040
logging:
  level: debug
  format: console
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:4040", cfg.Telnet.Addr())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_CollectsViolations(t *testing.T) {
	cfg := config.Config{
		Telnet:  config.TelnetConfig{Port: 0},
		Logging: config.LoggingConfig{Level: "loud", Format: "xml"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.disc")
	assert.Contains(t, err.Error(), "telnet.port")
	assert.Contains(t, err.Error(), "logging.level")
}

func TestDefault_UsesDiscPath(t *testing.T) {
	cfg := config.Default("games/demo/disc.yaml")
	assert.Equal(t, "games/demo/disc.yaml", cfg.Game.Disc)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}
