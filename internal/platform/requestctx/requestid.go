// Package requestctx carries per-request identifiers through context.
package requestctx

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// RequestIDHeader is read from and echoed to HTTP callers.
const RequestIDHeader = "X-Request-Id"

// requestIDContextKey is the context key for the request identifier.
type requestIDContextKey struct{}

// WithRequestID stores a request identifier in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

// RequestIDFromContext returns the request identifier stored in context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDContextKey{}).(string)
	return value
}

// EnsureRequestID returns candidate when it is a usable identifier and a
// fresh random UUID otherwise.
func EnsureRequestID(candidate string) string {
	candidate = strings.TrimSpace(candidate)
	if candidate != "" && len(candidate) <= 128 {
		return candidate
	}
	return uuid.NewString()
}
