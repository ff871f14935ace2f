// Package config loads tool configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds the environment-provided settings. The API key is the only
// mandatory value; everything else has a workable default. CLI flags may
// override Timezone and ExcludeTagIDs per invocation.
type Config struct {
	APIKey        string  `env:"TOGGL_API_KEY,notEmpty"`
	BaseURL       string  `env:"TOGGL_API_BASE_URL" envDefault:"https://api.track.toggl.com/api/v9"`
	Timezone      string  `env:"TOGGL_TIMEZONE" envDefault:"Local"`
	ExcludeTagIDs []int64 `env:"TOGGL_EXCLUDE_TAG_IDS" envSeparator:","`
}

// Load reads .env (if present) and parses the environment. A missing .env
// file is not an error; a missing TOGGL_API_KEY is.
func Load() (Config, error) {
	// Best effort: running without a .env file is the normal case outside
	// development checkouts.
	_ = godotenv.Load(".env")

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
