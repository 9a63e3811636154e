// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// environ returns the variables parseEnv reads from. Tests replace it to
// avoid touching the process environment.
var environ = func() map[string]string {
	return env.ToMap(os.Environ())
}

// parseEnv populates cfg from environment variables through the `env` and
// `envPrefix` tags of [StructuredConfig]. NODE_ENV goes through
// [Environment.UnmarshalText], so unknown values become [Production].
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ()})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
