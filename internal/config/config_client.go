package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to unset fields.
const (
	DefaultBaseURL        = "https://api.robinhood.com"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
)

// ClientCredentials holds the login inputs.
type ClientCredentials struct {
	Username string
	Password string
	Token    string
	MFACode  string
}

// ClientAdapter holds settings of the outbound API transport.
type ClientAdapter struct {
	BaseURL        string
	RequestTimeout time.Duration
	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	RateBurst int
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file; empty disables session persistence.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientApp holds application-level client settings.
type ClientApp struct {
	SealKey  string
	LogLevel string
	LogFile  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Credentials ClientCredentials
	Adapter     ClientAdapter
	Storage     ClientStorage
	App         ClientApp

	// Command is the subcommand and its arguments; empty means the default
	// command.
	Command []string
}

// GetClientConfig builds and validates the client config from the
// environment, the process flags and the optional config file.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// newClientConfig maps cfg to a ClientConfig and fills defaults.
func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Credentials: ClientCredentials{
			Username: cfg.Credentials.Username,
			Password: cfg.Credentials.Password,
			Token:    cfg.Credentials.Token,
			MFACode:  cfg.Credentials.MFACode,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
			RateBurst:      cfg.Adapter.RateBurst,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		App: ClientApp{
			SealKey:  cfg.App.SealKey,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Command: cfg.Command,
	}

	if clientCfg.Adapter.BaseURL == "" {
		clientCfg.Adapter.BaseURL = DefaultBaseURL
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Adapter.RateLimit > 0 && clientCfg.Adapter.RateBurst == 0 {
		clientCfg.Adapter.RateBurst = 1
	}
	if clientCfg.App.LogLevel == "" {
		clientCfg.App.LogLevel = DefaultLogLevel
	}

	return clientCfg
}
