// Package config loads asrar settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Database        Database        `yaml:"database"`
	Geo             Geo             `yaml:"geo"`
	DefaultLocation DefaultLocation `yaml:"default_location"`
	Hours           Hours           `yaml:"hours"`
	Logging         Logging         `yaml:"logging"`
}

type Database struct {
	Path string `yaml:"path"`
}

// Geo configures IP-based location lookup.
type Geo struct {
	Enabled    bool   `yaml:"enabled"`
	Endpoint   string `yaml:"endpoint"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	MaxRetries int    `yaml:"max_retries"`
	// RetryBackoffMs is the wait before the first retry; later waits double.
	RetryBackoffMs int  `yaml:"retry_backoff_ms"`
	LogCalls       bool `yaml:"log_calls"`
}

// DefaultLocation is used when no location is saved and lookup fails.
type DefaultLocation struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	City      string  `yaml:"city"`
	TimeZone  string  `yaml:"timezone"`
}

type Hours struct {
	TickSeconds       int `yaml:"tick_seconds"`
	FallbackStartHour int `yaml:"fallback_start_hour"`
}

type Logging struct {
	Level    string `yaml:"level"`
	UseCases bool   `yaml:"use_cases"`
}

// Default returns the configuration used when no file exists. The database
// lives next to the config file under ~/.asrar.
func Default() Config {
	return Config{
		Database: Database{Path: filepath.Join(homeDir(), ".asrar", "asrar.db")},
		Geo: Geo{
			Enabled:        true,
			Endpoint:       "http://ip-api.com/json/",
			TimeoutMs:      5000,
			MaxRetries:     1,
			RetryBackoffMs: 250,
		},
		DefaultLocation: DefaultLocation{
			Latitude:  21.4225,
			Longitude: 39.8262,
			City:      "Mecca",
			TimeZone:  "Asia/Riyadh",
		},
		Hours: Hours{
			TickSeconds:       60,
			FallbackStartHour: 6,
		},
		Logging: Logging{Level: "warn"},
	}
}

// DefaultPath returns $ASRAR_CONFIG or ~/.asrar/config.yaml.
func DefaultPath() string {
	if v := os.Getenv("ASRAR_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(homeDir(), ".asrar", "config.yaml")
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. A missing file is not an error. An empty path
// means DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// applyEnvOverrides replaces fields whose environment variable is set and
// parses cleanly. Malformed values are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ASRAR_DB"); v != "" {
		cfg.Database.Path = v
	}

	if v := os.Getenv("ASRAR_GEO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Geo.Enabled = b
		}
	}
	if v := os.Getenv("ASRAR_GEO_ENDPOINT"); v != "" {
		cfg.Geo.Endpoint = v
	}
	if v := os.Getenv("ASRAR_GEO_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Geo.TimeoutMs = n
		}
	}
	if v := os.Getenv("ASRAR_GEO_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Geo.MaxRetries = n
		}
	}
	if v := os.Getenv("ASRAR_GEO_RETRY_BACKOFF_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Geo.RetryBackoffMs = n
		}
	}
	if v := os.Getenv("ASRAR_GEO_LOG_CALLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Geo.LogCalls = b
		}
	}

	if v := os.Getenv("ASRAR_DEFAULT_LAT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= -90 && f <= 90 {
			cfg.DefaultLocation.Latitude = f
		}
	}
	if v := os.Getenv("ASRAR_DEFAULT_LON"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= -180 && f <= 180 {
			cfg.DefaultLocation.Longitude = f
		}
	}
	if v := os.Getenv("ASRAR_DEFAULT_CITY"); v != "" {
		cfg.DefaultLocation.City = v
	}
	if v := os.Getenv("ASRAR_DEFAULT_TZ"); v != "" {
		if _, err := time.LoadLocation(v); err == nil {
			cfg.DefaultLocation.TimeZone = v
		}
	}

	if v := os.Getenv("ASRAR_TICK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Hours.TickSeconds = n
		}
	}
	if v := os.Getenv("ASRAR_FALLBACK_START_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 23 {
			cfg.Hours.FallbackStartHour = n
		}
	}

	if v := os.Getenv("ASRAR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ASRAR_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Logging.UseCases = b
		}
	}
}

// TickInterval is the watch loop period, never below one second.
func (c Config) TickInterval() time.Duration {
	if c.Hours.TickSeconds <= 0 {
		return time.Second
	}
	return time.Duration(c.Hours.TickSeconds) * time.Second
}

// FallbackLocation converts the default location into a domain value. It is
// never marked accurate.
func (c Config) FallbackLocation() domain.UserLocation {
	return domain.UserLocation{
		Latitude:   c.DefaultLocation.Latitude,
		Longitude:  c.DefaultLocation.Longitude,
		CityName:   c.DefaultLocation.City,
		TimeZone:   c.DefaultLocation.TimeZone,
		IsAccurate: false,
		Source:     domain.SourceFallback,
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
