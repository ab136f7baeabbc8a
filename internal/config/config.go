// Package config handles application configuration.
package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultOpener is the default-open mechanism used when no override is set.
const DefaultOpener = "xdg-open"

// Config holds all application configuration
type Config struct {
	// Flags
	Quiet bool
	Debug bool

	// External tools
	Opener string

	// Timeouts
	CopyTimeout time.Duration
}

// Load loads configuration from environment
func Load() (*Config, error) {
	cfg := &Config{
		Quiet:       envBool("WINPATH_QUIET", false),
		Debug:       envBool("WINPATH_DEBUG", false),
		Opener:      envStr("WINPATH_OPENER", DefaultOpener),
		CopyTimeout: time.Duration(envInt("WINPATH_COPY_TIMEOUT", 5)) * time.Second,
	}
	return cfg, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "1" || v == "true" || v == "yes"
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
