// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging environment variables, command-line flags, and an
// optional config file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Credentials identify the brokerage user.
	Credentials Credentials `envPrefix:"CREDENTIALS_"`

	// Adapter holds the outbound API transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local session store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// App holds application-level settings such as the seal key and
	// logging.
	App App `envPrefix:"APP_"`

	// ConfigFilePath is the optional path to a JSON or YAML file, chosen by
	// extension. Populated via the CONFIG environment variable or the
	// -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`

	// Command holds the positional arguments left after the flags, e.g.
	// "quote AAPL". Only the command line sets it.
	Command []string
}

// Credentials are the login inputs of the session client.
type Credentials struct {
	// Env: CREDENTIALS_USERNAME
	Username string `env:"USERNAME"`
	// Env: CREDENTIALS_PASSWORD
	Password string `env:"PASSWORD"`
	// Token pre-authenticates the session and skips the credential login.
	// Env: CREDENTIALS_TOKEN
	Token string `env:"TOKEN"`
	// MFACode is sent with the first credential login.
	// Env: CREDENTIALS_MFA_CODE
	MFACode string `env:"MFA_CODE"`
}

// Adapter holds settings of the HTTP transport to the brokerage API.
type Adapter struct {
	// BaseURL overrides the API origin.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit caps outbound requests per second; zero disables limiting.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the burst allowed on top of RateLimit.
	// Env: ADAPTER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Storage groups the configuration of the local session store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite session store.
type DB struct {
	// DSN is the SQLite database file. Empty disables session persistence.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// App holds application-level configuration values.
type App struct {
	// SealKey is the passphrase the stored session token is sealed with.
	// Must be kept confidential.
	// Env: APP_SEAL_KEY
	SealKey string `env:"SEAL_KEY"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile receives the JSON logs; empty means stderr.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// GetStructuredConfig loads and merges the configuration from the
// environment, the process command line and the config file it points to.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
