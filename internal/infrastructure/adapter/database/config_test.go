package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Driver:        "postgres",
		Host:          "localhost",
		Port:          5432,
		Username:      "salapeso",
		Password:      "secret",
		Database:      "salapeso_dev",
		SSLMode:       "disable",
		MaxOpenConns:  25,
		MaxIdleConns:  25,
		QueryTimeout:  10 * time.Second,
		LogLevel:      "info",
		RetryAttempts: 3,
		RetryDelay:    5,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid configuration passes", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing host",
			mutate:  func(c *Config) { c.Host = "" },
			wantErr: "host is required",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: "invalid port number",
		},
		{
			name:    "unsupported driver",
			mutate:  func(c *Config) { c.Driver = "oracle" },
			wantErr: "unsupported database driver",
		},
		{
			name:    "invalid ssl mode",
			mutate:  func(c *Config) { c.SSLMode = "sometimes" },
			wantErr: "invalid SSL mode",
		},
		{
			name:    "non-positive query timeout",
			mutate:  func(c *Config) { c.QueryTimeout = 0 },
			wantErr: "query timeout must be positive",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(config)

			err := config.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	dsn := validConfig().DSN()

	assert.Equal(t,
		"host=localhost port=5432 user=salapeso password=secret dbname=salapeso_dev sslmode=disable",
		dsn)
}

func TestConfigWithQueryTimeout(t *testing.T) {
	original := validConfig()
	modified := original.WithQueryTimeout(30 * time.Second)

	assert.Equal(t, 30*time.Second, modified.QueryTimeout)
	assert.Equal(t, 10*time.Second, original.QueryTimeout)
}
