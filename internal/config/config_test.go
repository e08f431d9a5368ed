package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every FINPULSE_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAPIURL, EnvPollInterval, EnvTimeout, EnvLogFile, EnvLogLevel, EnvServeAddr, EnvScoresFile} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, DefaultServeAddr, cfg.ServeAddr)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogPath(), cfg.LogFile)
	assert.Empty(t, cfg.ScoresFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "config.yaml", `
api_url: http://summary.internal:9000/
poll_interval: 45s
timeout: 2s
log_level: debug
serve_addr: 127.0.0.1:8001
scores_file: /var/lib/finpulse/scores.yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://summary.internal:9000/", cfg.APIURL)
	assert.Equal(t, "http://summary.internal:9000/sentiment/summary", cfg.SummaryURL())
	assert.Equal(t, 45*time.Second, cfg.PollInterval)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:8001", cfg.ServeAddr)
	assert.Equal(t, "/var/lib/finpulse/scores.yaml", cfg.ScoresFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "config.yaml", "api_url: http://from-file:1\npoll_interval: 45s\n")

	t.Setenv(EnvAPIURL, "http://from-env:2")
	t.Setenv(EnvPollInterval, "10s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:2", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", EnvAPIURL+"=http://from-dotenv:3\n"+EnvTimeout+"=9s\n")

	// Register restore, then unset so .env can populate it.
	t.Setenv(EnvAPIURL, "")
	require.NoError(t, os.Unsetenv(EnvAPIURL))
	t.Setenv(EnvTimeout, "1s")

	cfg, err := Load(filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://from-dotenv:3", cfg.APIURL)
	assert.Equal(t, 1*time.Second, cfg.Timeout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr string
	}{
		{name: "malformed yaml", yaml: "api_url: [unclosed", wantErr: "parsing config"},
		{name: "bad poll interval", yaml: "poll_interval: soon", wantErr: "poll_interval"},
		{name: "bad timeout", yaml: "timeout: 5 seconds", wantErr: "timeout"},
		{name: "bad env duration", env: map[string]string{EnvTimeout: "fast"}, wantErr: EnvTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			t.Chdir(dir)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeFile(t, dir, "config.yaml", tt.yaml)

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero interval", mutate: func(c *Config) { c.PollInterval = 0 }, wantErr: "poll interval"},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, wantErr: "timeout"},
		{name: "no scheme", mutate: func(c *Config) { c.APIURL = "localhost:8000" }, wantErr: "api url"},
		{name: "ftp", mutate: func(c *Config) { c.APIURL = "ftp://example.com" }, wantErr: "api url"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	lvl, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}
