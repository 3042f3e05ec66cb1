package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCredentialsConfigs indicates that neither a token nor a
	// username and password pair was configured.
	ErrInvalidCredentialsConfigs = errors.New("invalid credentials configuration")
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, a relative base URL or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an in-memory DSN that cannot persist anything).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a DSN without a seal key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)

// ErrUnsupportedConfigFile is returned for config files that are neither
// JSON nor YAML.
var ErrUnsupportedConfigFile = errors.New("unsupported config file extension")
