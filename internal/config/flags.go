package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the client flags from args.
//
// Flags:
//
//	-u username
//	-p password
//	-token session token (skips credential login)
//	-mfa one-time MFA code
//	-base-url API origin override
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit max requests per second (0 = unlimited)
//	-rate-burst request burst on top of -rate-limit
//	-d session database DSN
//	-seal-key passphrase the stored token is sealed with
//	-log-level log level (debug, info, warn, error)
//	-log-file log file path
//	-c/-config config file path (.json, .yaml, .yml)
//
// Arguments after the flags are kept as the command.
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("robinhood", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Credentials.Username, "u", "", "Username")
	fs.StringVar(&cfg.Credentials.Password, "p", "", "Password")
	fs.StringVar(&cfg.Credentials.Token, "token", "", "Session token")
	fs.StringVar(&cfg.Credentials.MFACode, "mfa", "", "One-time MFA code")
	fs.StringVar(&cfg.Adapter.BaseURL, "base-url", "", "API base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&cfg.Adapter.RateLimit, "rate-limit", 0, "Max requests per second")
	fs.IntVar(&cfg.Adapter.RateBurst, "rate-burst", 0, "Request burst")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Session database DSN")
	fs.StringVar(&cfg.App.SealKey, "seal-key", "", "Token seal passphrase")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if rest := fs.Args(); len(rest) > 0 {
		cfg.Command = rest
	}

	return cfg, nil
}
