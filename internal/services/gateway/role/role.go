// Package role defines the caller visibility classes.
package role

import (
	"context"
	"fmt"
	"strings"
)

// Role is the caller's visibility class.
type Role string

const (
	// Admin sees every field.
	Admin Role = "ADMIN"
	// Publisher sees the restricted field set.
	Publisher Role = "PUBLISHER"
)

// Parse resolves a role name case-insensitively.
func Parse(value string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case Admin:
		return Admin, nil
	case Publisher:
		return Publisher, nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

type roleContextKey struct{}

// WithRole stores the caller role in context.
func WithRole(ctx context.Context, r Role) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, roleContextKey{}, r)
}

// FromContext returns the caller role. Callers without a resolved role are
// treated as Publisher.
func FromContext(ctx context.Context) Role {
	if ctx == nil {
		return Publisher
	}
	if r, ok := ctx.Value(roleContextKey{}).(Role); ok && r != "" {
		return r
	}
	return Publisher
}
