package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GAME_MAP_FILE", "")
	t.Setenv("GAME_PLAIN", "")
	t.Setenv("GAME_LOG_FILE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadConfigFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GAME_MAP_FILE", "maps/castle.yaml")
	t.Setenv("GAME_PLAIN", "true")
	t.Setenv("GAME_LOG_FILE", "debug.log")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "maps/castle.yaml", cfg.MapFile)
	assert.True(t, cfg.Plain)
	assert.Equal(t, "debug.log", cfg.LogFile)
}

func TestLoadConfigBadBool(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GAME_PLAIN", "sometimes")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GAME_PLAIN must be a boolean")
}
