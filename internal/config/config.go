package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds the application configuration.
type Config struct {
	// MapFile overrides the embedded house map when set.
	MapFile string
	// Plain forces the line-by-line channel even on a terminal.
	Plain bool
	// LogFile receives debug logs. Empty means logs are dropped.
	LogFile string
}

// LoadConfig loads the configuration from environment variables, after
// reading a .env file from the working directory if there is one.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	plain, err := getEnvAsBool("GAME_PLAIN", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		MapFile: os.Getenv("GAME_MAP_FILE"),
		Plain:   plain,
		LogFile: os.Getenv("GAME_LOG_FILE"),
	}, nil
}

func getEnvAsBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}
