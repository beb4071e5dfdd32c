package infra

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tokendash/internal/domain"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL      = "http://localhost:8080/api/v1"
	DefaultTimeoutSec   = 10
	DefaultSyncLimit    = 10
	DefaultHistoryLimit = 50
	DefaultSearchQuery  = "bitcoin"
	DefaultInitialToken = "bitcoin"
)

// Config holds every setting of the dashboard.
// LoadConfig reads it from YAML, then applies environment overrides.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	API struct {
		BaseURL      string `yaml:"base_url"`
		TimeoutSec   int    `yaml:"timeout_sec"`
		SyncLimit    int    `yaml:"sync_limit"`
		HistoryLimit int    `yaml:"history_limit"`
		DefaultQuery string `yaml:"default_query"`
	} `yaml:"api"`

	UI struct {
		InitialToken string `yaml:"initial_token"`
		Timezone     string `yaml:"timezone"`
		ChartHeight  int    `yaml:"chart_height"`
		Theme        string `yaml:"theme"`
	} `yaml:"ui"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	var cfg Config
	cfg.App.Name = "tokendash"
	cfg.App.Version = "dev"
	cfg.API.BaseURL = DefaultBaseURL
	cfg.API.TimeoutSec = DefaultTimeoutSec
	cfg.API.SyncLimit = DefaultSyncLimit
	cfg.API.HistoryLimit = DefaultHistoryLimit
	cfg.API.DefaultQuery = DefaultSearchQuery
	cfg.UI.InitialToken = DefaultInitialToken
	cfg.UI.Timezone = "Local"
	cfg.UI.ChartHeight = 12
	cfg.UI.Theme = "dark"
	cfg.Logging.Level = "info"
	cfg.Logging.File = "logs/app.log"
	return &cfg
}

// LoadConfig reads the YAML file at path on top of DefaultConfig.
// A missing file is not an error; defaults and env still apply.
func LoadConfig(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	base := c.API.BaseURL
	if base == "" || (!strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://")) {
		return &domain.ConfigError{Field: "api.base_url", Err: fmt.Errorf("invalid URL %q", base)}
	}
	if c.API.TimeoutSec <= 0 {
		return &domain.ConfigError{Field: "api.timeout_sec", Err: errors.New("must be positive")}
	}
	if c.API.SyncLimit <= 0 {
		return &domain.ConfigError{Field: "api.sync_limit", Err: errors.New("must be positive")}
	}
	if c.API.HistoryLimit <= 0 {
		return &domain.ConfigError{Field: "api.history_limit", Err: errors.New("must be positive")}
	}
	if c.UI.InitialToken == "" {
		return &domain.ConfigError{Field: "ui.initial_token", Err: errors.New("required")}
	}
	if _, err := c.Location(); err != nil {
		return &domain.ConfigError{Field: "ui.timezone", Err: err}
	}
	return nil
}

// Timeout returns the per-request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSec) * time.Second
}

// Location resolves ui.timezone; empty or "Local" means the host zone
func (c *Config) Location() (*time.Location, error) {
	if c.UI.Timezone == "" || c.UI.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.UI.Timezone)
}

// overrideWithEnv replaces settings with TOKENDASH_* variables when present.
func overrideWithEnv(cfg *Config) {
	if url := os.Getenv("TOKENDASH_API_URL"); url != "" {
		cfg.API.BaseURL = strings.TrimRight(url, "/")
	}
	if v := os.Getenv("TOKENDASH_TIMEOUT_SEC"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutSec = sec
		}
	}
	if lvl := os.Getenv("TOKENDASH_LOG_LEVEL"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if tz := os.Getenv("TOKENDASH_TIMEZONE"); tz != "" {
		cfg.UI.Timezone = tz
	}
}
