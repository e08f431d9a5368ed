// Package config resolves finpulse settings from defaults, a YAML file,
// a .env file, the environment and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL       = "http://localhost:8000"
	DefaultPollInterval = 30 * time.Second
	DefaultTimeout      = 5 * time.Second
	DefaultServeAddr    = ":8000"
	DefaultLogLevel     = "info"
)

// Environment variable names. Each overrides the matching YAML key.
const (
	EnvAPIURL       = "FINPULSE_API_URL"
	EnvPollInterval = "FINPULSE_POLL_INTERVAL"
	EnvTimeout      = "FINPULSE_TIMEOUT"
	EnvLogFile      = "FINPULSE_LOG_FILE"
	EnvLogLevel     = "FINPULSE_LOG_LEVEL"
	EnvServeAddr    = "FINPULSE_SERVE_ADDR"
	EnvScoresFile   = "FINPULSE_SCORES_FILE"
)

// Config is the resolved runtime configuration.
type Config struct {
	APIURL       string
	PollInterval time.Duration
	Timeout      time.Duration
	LogFile      string
	LogLevel     string
	ServeAddr    string
	ScoresFile   string
}

// fileConfig mirrors the YAML layout; durations stay strings until parsed.
type fileConfig struct {
	APIURL       string `yaml:"api_url"`
	PollInterval string `yaml:"poll_interval"`
	Timeout      string `yaml:"timeout"`
	LogFile      string `yaml:"log_file"`
	LogLevel     string `yaml:"log_level"`
	ServeAddr    string `yaml:"serve_addr"`
	ScoresFile   string `yaml:"scores_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIURL:       DefaultAPIURL,
		PollInterval: DefaultPollInterval,
		Timeout:      DefaultTimeout,
		LogFile:      DefaultLogPath(),
		LogLevel:     DefaultLogLevel,
		ServeAddr:    DefaultServeAddr,
	}
}

// DefaultConfigPath is $XDG_CONFIG_HOME/finpulse/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "finpulse", "config.yaml")
}

// DefaultLogPath is $XDG_STATE_HOME/finpulse/finpulse.log.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "finpulse", "finpulse.log")
}

// Load resolves the configuration. path may be empty, in which case the
// default config path is tried; a missing file is not an error.
// A .env file in the working directory is loaded first without overriding
// variables already present in the environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	if path == "" {
		path = DefaultConfigPath()
	}
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	if err := cfg.mergeEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	setString(&c.APIURL, fc.APIURL)
	setString(&c.LogFile, fc.LogFile)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.ServeAddr, fc.ServeAddr)
	setString(&c.ScoresFile, fc.ScoresFile)
	if err := setDuration(&c.PollInterval, fc.PollInterval); err != nil {
		return fmt.Errorf("parsing config %s: poll_interval: %w", path, err)
	}
	if err := setDuration(&c.Timeout, fc.Timeout); err != nil {
		return fmt.Errorf("parsing config %s: timeout: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	setString(&c.APIURL, os.Getenv(EnvAPIURL))
	setString(&c.LogFile, os.Getenv(EnvLogFile))
	setString(&c.LogLevel, os.Getenv(EnvLogLevel))
	setString(&c.ServeAddr, os.Getenv(EnvServeAddr))
	setString(&c.ScoresFile, os.Getenv(EnvScoresFile))
	if err := setDuration(&c.PollInterval, os.Getenv(EnvPollInterval)); err != nil {
		return fmt.Errorf("%s: %w", EnvPollInterval, err)
	}
	if err := setDuration(&c.Timeout, os.Getenv(EnvTimeout)); err != nil {
		return fmt.Errorf("%s: %w", EnvTimeout, err)
	}
	return nil
}

// Validate checks that the configuration can drive the dashboard.
func (c *Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api url %q: %w", c.APIURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api url %q: want an http(s) URL with a host", c.APIURL)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SummaryURL is the summary endpoint under APIURL.
func (c *Config) SummaryURL() string {
	return strings.TrimRight(c.APIURL, "/") + "/sentiment/summary"
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
