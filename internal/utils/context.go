// Package utils provides general-purpose helper utilities used across the
// module: the resty HTTP client wrapper, type-safe context keys and
// instrument URL parsing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OperationCtxKey is the key under which the logical API operation name
// (e.g. "quotes", "orders") is stored for the duration of one request.
// Request hooks read it to label logs and metrics.
var OperationCtxKey = contextKey("operation")

// WithOperation returns a copy of ctx carrying the operation name op.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, OperationCtxKey, op)
}

// GetOperationFromContext retrieves the operation name from ctx.
//
// Returns the name and an ok flag:
//   - ok == true  : value is found and is a string
//   - ok == false : value is missing or has an unexpected type
func GetOperationFromContext(ctx context.Context) (string, bool) {
	op, ok := ctx.Value(OperationCtxKey).(string)
	return op, ok
}
