package booking

import (
	"os"
	"strconv"
)

// Config holds connection settings for the studio booking API.
type Config struct {
	Endpoint  string
	TimeoutMs int
}

// DefaultConfig returns the demo-server defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "http://localhost:3001",
		TimeoutMs: 15000,
	}
}

// LoadConfig reads booking API configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("INTAKE_API_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("INTAKE_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}
