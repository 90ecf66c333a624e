// Package config loads process settings from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable read by the gateway process.
const EnvPrefix = "BAMBOOLEAD_"

// ParseEnvWithPrefix loads configuration from environment variables whose
// names carry EnvPrefix followed by prefix.
func ParseEnvWithPrefix(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix + prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
