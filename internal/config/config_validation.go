// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	creds := cfg.Credentials
	if creds.Token == "" && (creds.Username == "" || creds.Password == "") {
		return fmt.Errorf("%w: token or username and password required", ErrInvalidCredentialsConfigs)
	}

	u, err := url.Parse(cfg.Adapter.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q must be absolute", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.RateLimit < 0 || cfg.Adapter.RateBurst < 0 {
		return fmt.Errorf("%w: timeout and rate settings must not be negative", ErrInvalidAdapterConfigs)
	}

	dsn := cfg.Storage.DB.DSN
	if dsn != "" && strings.Contains(dsn, "memory") {
		return fmt.Errorf("%w: in-memory database cannot persist sessions", ErrInvalidStorageConfigs)
	}

	if dsn != "" && cfg.App.SealKey == "" {
		return fmt.Errorf("%w: seal key required when a session database is set", ErrInvalidAppConfigs)
	}

	return nil
}
