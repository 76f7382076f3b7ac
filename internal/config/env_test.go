// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"APP_LOCALE":   "fr-FR",
		"APP_LOG_FILE": "/var/log/sparknest.log",

		"ADAPTER_ADDRESS":         "http://192.168.1.20:3000/api",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/tmp/session.db",
		"STORAGE_SECRET": "s3cr3t",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFilePath)

	assert.Equal(t, "fr-FR", cfg.App.Locale)
	assert.Equal(t, "/var/log/sparknest.log", cfg.App.LogFile)

	assert.Equal(t, "http://192.168.1.20:3000/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/tmp/session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "s3cr3t", cfg.Storage.Secret)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_LOCALE":      "fr-FR",
		"ADAPTER_ADDRESS": "localhost:3000",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "fr-FR", cfg.App.Locale)
	assert.Empty(t, cfg.App.LogFile)

	assert.Equal(t, "localhost:3000", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)

	// Others untouched
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Storage.Secret)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.ConfigFilePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Storage{}, cfg.Storage)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "2m", 2 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"milliseconds", "1500ms", 1500 * time.Millisecond},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": tt.envValue})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_LOCALE",
		"APP_LOG_FILE",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",

		"STORAGE_DB_DSN",
		"STORAGE_SECRET",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
