// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, session token
// generation and validation, and other common operations.
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

// ClientIDCtxKey is the key used to store the paired popup client
// identifier in the context. Used together with GetClientIDFromContext
// for type-safe retrieval.
var ClientIDCtxKey = contextKey("clientID")

// OriginCtxKey is the key used to store the origin (scheme+host+port) of
// the page the current request acts upon.
var OriginCtxKey = contextKey("origin")

// GetClientIDFromContext retrieves the paired client identifier from the
// context.
//
// Returns the client ID and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetClientIDFromContext(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(ClientIDCtxKey).(string)
	return clientID, ok
}

// GetOriginFromContext retrieves the page origin from the context.
func GetOriginFromContext(ctx context.Context) (string, bool) {
	origin, ok := ctx.Value(OriginCtxKey).(string)
	return origin, ok
}
