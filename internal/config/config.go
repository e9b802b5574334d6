// Package config reads the backend configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all settings of the backend.
type Config struct {
	// URL under which the API is reachable. Used to build links in responses.
	APIURL url.URL `env:"API_URL,required"`

	// gin uses debug as the default mode, we use release for
	// security reasons
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	// Either "human" or "json". When unset, human readable logs are
	// used in debug mode and JSON otherwise.
	LogFormat string `env:"LOG_FORMAT"`

	DatabasePath     string   `env:"DATABASE_PATH" envDefault:"data/gorm.db"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:" "`
	EnablePprof      bool     `env:"ENABLE_PPROF"`
	Port             string   `env:"PORT" envDefault:"8080"`
}

// Parse loads the configuration from environment variables.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidAPIURL, c.APIURL.String())
	}

	return c, nil
}

// BaseURL returns the API URL without a trailing slash.
func (c Config) BaseURL() string {
	u := c.APIURL
	return strings.TrimRight(u.String(), "/")
}
