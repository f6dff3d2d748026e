// Package mirror replays local progress mutations to an optional remote
// backend and can hydrate local state from it. It is strictly best
// effort: the local engine has always committed before the mirror sees a
// mutation, and no mirror failure is ever allowed to block or revert it.
package mirror

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. The mirror is disabled entirely
// when no API URL is configured.
type Config struct {
	APIURL      string        `env:"IDLECAMPUS_API_URL"`
	APIKey      string        `env:"IDLECAMPUS_API_KEY"`
	Timeout     time.Duration `env:"IDLECAMPUS_API_TIMEOUT" envDefault:"10s"`
	MaxAttempts int           `env:"IDLECAMPUS_API_RETRIES" envDefault:"3"`
	Backoff     time.Duration `env:"IDLECAMPUS_API_BACKOFF" envDefault:"500ms"`
}

// Enabled reports whether a remote endpoint is configured.
func (c Config) Enabled() bool {
	return c.APIURL != ""
}

// LoadConfig reads mirror settings from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse mirror config: %w", err)
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return cfg, nil
}
