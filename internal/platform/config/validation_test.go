package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "learning-journal",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  10 * time.Second,
			MaxRequestSize:  1048576,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Database: DatabaseConfig{
			Driver:       "sqlite",
			DSN:          "file::memory:",
			MaxOpenConns: 1,
			AutoMigrate:  true,
		},
		Client: ClientConfig{
			Timeout: 10 * time.Second,
			Retry: RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     5 * time.Second,
				Multiplier:      2.0,
				JitterFactor:    0.25,
			},
			CircuitBreaker: CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 3,
			},
			Transport: TransportConfig{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		Remote: RemoteConfig{
			Name: "remote-journal",
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

// TestConfig_Validate lists one broken setting per case and the line the
// operator would see for it.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"app name", func(c *Config) { c.App.Name = "" }, "app.name is required"},
		{"environment", func(c *Config) { c.App.Environment = "staging" }, "app.environment must be one of: local dev qa prod test"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port must be at most 65535"},
		{"read timeout", func(c *Config) { c.Server.ReadTimeout = 500 * time.Millisecond }, "server.read_timeout must be at least 1s"},
		{"request timeout", func(c *Config) { c.Server.RequestTimeout = 10 * time.Millisecond }, "server.request_timeout must be at least 100ms"},
		{"body limit", func(c *Config) { c.Server.MaxRequestSize = 0 }, "server.max_request_size is required"},
		{"log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level must be one of: trace debug info warn error"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format must be one of: json text pretty"},
		{"log file path", func(c *Config) { c.Log.File = LogFileConfig{Enabled: true} }, "log.file.path is required when Enabled true"},
		{"log file size", func(c *Config) { c.Log.File.MaxSizeMB = 2048 }, "log.file.max_size must be at most 1024"},
		{"telemetry endpoint", func(c *Config) { c.Telemetry = TelemetryConfig{Enabled: true, ServiceName: "journal"} }, "telemetry.endpoint is required when Enabled true"},
		{"sampling rate", func(c *Config) { c.Telemetry.SamplingRate = 1.5 }, "telemetry.sampling_rate must be at most 1"},
		{"driver", func(c *Config) { c.Database.Driver = "oracle" }, "database.driver must be one of: sqlite postgres mysql"},
		{"dsn", func(c *Config) { c.Database.DSN = "" }, "database.dsn is required"},
		{"pool size", func(c *Config) { c.Database.MaxOpenConns = -1 }, "database.max_open_conns must be at least 1"},
		{"idle over open", func(c *Config) { c.Database.MaxIdleConns = 4 }, "database.max_idle_conns must not exceed max_open_conns"},
		{"timezone", func(c *Config) { c.Journal.Timezone = "Mars/Olympus" }, "journal.timezone must be an IANA time zone name"},
		{"remote url", func(c *Config) { c.Remote.BaseURL = "not a url" }, "remote.base_url must be an http or https URL"},
		{"remote scheme", func(c *Config) { c.Remote.BaseURL = "ftp://journal.example.com" }, "remote.base_url must be an http or https URL"},
		{"remote name", func(c *Config) { c.Remote.Name = "" }, "remote.name is required"},
		{"retry attempts", func(c *Config) { c.Client.Retry.MaxAttempts = 11 }, "client.retry.max_attempts must be at most 10"},
		{"retry multiplier", func(c *Config) { c.Client.Retry.Multiplier = 1.0 }, "client.retry.multiplier must be at least 1.1"},
		{"half open", func(c *Config) { c.Client.CircuitBreaker.HalfOpenLimit = 0 }, "client.circuit_breaker.half_open_limit is required"},
		{"idle per host", func(c *Config) { c.Client.Transport.MaxIdleConnsPerHost = 0 }, "client.transport.max_idle_conns_per_host is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_Validate_Accepts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"every environment", func(c *Config) { c.App.Environment = "qa" }},
		{"postgres", func(c *Config) { c.Database.Driver = "postgres" }},
		{"mysql", func(c *Config) { c.Database.Driver = "mysql" }},
		{"unbounded pool", func(c *Config) { c.Database.MaxOpenConns, c.Database.MaxIdleConns = 0, 8 }},
		{"process local zone", func(c *Config) { c.Journal.Timezone = "" }},
		{"named zone", func(c *Config) { c.Journal.Timezone = "America/Sao_Paulo" }},
		{"https remote", func(c *Config) { c.Remote.BaseURL = "https://journal.example.com" }},
		{"request timeout off", func(c *Config) { c.Server.RequestTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_ReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "oracle"
	cfg.Log.Level = "loud"
	cfg.Remote.BaseURL = "journal"

	err := cfg.Validate()
	require.Error(t, err)

	lines := strings.Split(err.Error(), "\n")
	assert.Len(t, lines, 3)

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	assert.Len(t, joined.Unwrap(), 3)
}

func TestConfig_Validate_EmptyConfig(t *testing.T) {
	err := (&Config{}).Validate()
	require.Error(t, err)

	for _, section := range []string{"app", "server", "log", "database", "client"} {
		assert.Contains(t, err.Error(), section+" is required")
	}
}

func TestServerConfig_Address(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", ServerConfig{Host: "127.0.0.1", Port: 8080}.Address())
}

func TestJournalConfig_Location(t *testing.T) {
	loc, err := JournalConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = JournalConfig{Timezone: "Asia/Kolkata"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())

	_, err = JournalConfig{Timezone: "Nowhere/Land"}.Location()
	assert.Error(t, err)
}

func TestFormatFieldPath(t *testing.T) {
	assert.Equal(t, "server.port", formatFieldPath("Config.server.port"))
	assert.Equal(t, "client.retry.max_attempts", formatFieldPath("Config.client.retry.max_attempts"))
	assert.Equal(t, "config", formatFieldPath("Config"))
}
