// Package utils provides general-purpose helper utilities used across the
// SparkNest admin client and its fake backend: the resty client wrapper,
// request identifiers, JWT helpers, JSON response writing and typed context
// keys.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated user id (the JWT
// subject) is stored by the fake backend's auth middleware.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "7")
var UserIDCtxKey = contextKey("userID")

// RequestIDCtxKey carries the X-Request-ID of the current call.
var RequestIDCtxKey = contextKey("requestID")

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or is not a non-empty string.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext returns the request id stored by WithRequestID.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
