package service

import "errors"

var (
	// ErrMFARequired is returned by Start when the API requests a one-time
	// code that could not be supplied or was not accepted.
	ErrMFARequired = errors.New("multi-factor code required")

	// ErrMFAProvider wraps failures of the configured MFAProvider.
	ErrMFAProvider = errors.New("mfa provider failed")
)
