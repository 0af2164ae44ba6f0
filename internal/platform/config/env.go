// Package config loads demo configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable read by the demos.
const EnvPrefix = "CREATIONAL_"

// ParseEnv loads configuration from CREATIONAL_-prefixed environment variables.
//
// Struct tags name the variable without the prefix, so a field tagged
// `env:"GUI_PLATFORM"` is read from CREATIONAL_GUI_PLATFORM.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
