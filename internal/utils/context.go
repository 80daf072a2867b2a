// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, file digests,
// HTTP response writing, HTTP client initialization, JWT ticket inspection
// and identifier generation.
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

// RingCtxKey is the key used to store the label of the ring profile a sync
// runs for.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithRing(ctx, "Retail")
var RingCtxKey = contextKey("ring")

// WithRing returns a copy of ctx carrying the ring label.
func WithRing(ctx context.Context, ring string) context.Context {
	return context.WithValue(ctx, RingCtxKey, ring)
}

// GetRingFromContext retrieves the ring label from the context.
//
// Returns the label and an ok flag:
//   - ok == true : value is found and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetRingFromContext(ctx context.Context) (string, bool) {
	ring, ok := ctx.Value(RingCtxKey).(string)
	return ring, ok && ring != ""
}
