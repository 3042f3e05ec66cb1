// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces the variables so they can live next to other tools'
// settings. ROBINHOOD_CREDENTIALS_TOKEN wins over CREDENTIALS_TOKEN.
const envPrefix = "ROBINHOOD_"

// parseEnv populates cfg from environment variables through the `env` and
// `envPrefix` tags of [StructuredConfig]. Prefixed variables are read first
// and bare ones only fill what the prefixed set left empty.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	bare, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if err = mergo.Merge(cfg, bare); err != nil {
		return fmt.Errorf("error merging env configs: %w", err)
	}

	return nil
}
