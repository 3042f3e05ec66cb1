// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"CREDENTIALS_USERNAME": "alice",
		"CREDENTIALS_PASSWORD": "secret",
		"CREDENTIALS_TOKEN":    "tok",
		"CREDENTIALS_MFA_CODE": "123456",

		"ADAPTER_BASE_URL":        "http://localhost:9000",
		"ADAPTER_REQUEST_TIMEOUT": "15s",
		"ADAPTER_RATE_LIMIT":      "2.5",
		"ADAPTER_RATE_BURST":      "4",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/var/lib/rh/session.db",

		"APP_SEAL_KEY":  "seal",
		"APP_LOG_LEVEL": "warn",
		"APP_LOG_FILE":  "/tmp/rh.log",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFilePath)
	assert.Equal(t, Credentials{Username: "alice", Password: "secret", Token: "tok", MFACode: "123456"}, cfg.Credentials)
	assert.Equal(t, "http://localhost:9000", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 2.5, cfg.Adapter.RateLimit, 1e-9)
	assert.Equal(t, 4, cfg.Adapter.RateBurst)
	assert.Equal(t, "/var/lib/rh/session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, App{SealKey: "seal", LogLevel: "warn", LogFile: "/tmp/rh.log"}, cfg.App)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_PrefixedWins(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CREDENTIALS_USERNAME":         "alice",
		"CREDENTIALS_TOKEN":            "bare",
		"ROBINHOOD_CREDENTIALS_TOKEN":  "prefixed",
		"ROBINHOOD_ADAPTER_RATE_BURST": "3",
		"ROBINHOOD_STORAGE_DB_DSN":     "/tmp/rh.db",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "prefixed", cfg.Credentials.Token)
	assert.Equal(t, "alice", cfg.Credentials.Username)
	assert.Equal(t, 3, cfg.Adapter.RateBurst)
	assert.Equal(t, "/tmp/rh.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "duration", key: "ADAPTER_REQUEST_TIMEOUT", val: "soon"},
		{name: "float", key: "ADAPTER_RATE_LIMIT", val: "fast"},
		{name: "int", key: "ADAPTER_RATE_BURST", val: "many"},
		{name: "prefixed", key: "ROBINHOOD_ADAPTER_RATE_BURST", val: "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(tt.key, tt.val)

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}

var allEnvKeys = []string{
	"CONFIG",
	"CREDENTIALS_USERNAME", "CREDENTIALS_PASSWORD", "CREDENTIALS_TOKEN", "CREDENTIALS_MFA_CODE",
	"ADAPTER_BASE_URL", "ADAPTER_REQUEST_TIMEOUT", "ADAPTER_RATE_LIMIT", "ADAPTER_RATE_BURST",
	"STORAGE_DB_DSN",
	"APP_SEAL_KEY", "APP_LOG_LEVEL", "APP_LOG_FILE",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars blanks every variable the config reads, bare and prefixed.
// Empty values are treated as unset by caarlos0/env.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range allEnvKeys {
		t.Setenv(k, "")
		t.Setenv(envPrefix+k, "")
	}
}
