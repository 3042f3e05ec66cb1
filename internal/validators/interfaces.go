// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks requests locally before the session client sends
// them, so malformed orders fail without a round trip.
package validators

import "context"

// Validator checks a request value. When fields are given only those fields
// are checked; an unknown field name yields ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
