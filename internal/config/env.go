// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. It is the first layer of the agent's configuration chain (env,
// then flags, then the optional JSON file). Struct fields are mapped via
// their `env` and `envPrefix` tags defined on [StructuredConfig] and the
// nested types the [AgentConfig] view is built from.
//
// Returns a wrapped error if env.Parse fails (e.g. a required variable is
// missing or a value cannot be converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
