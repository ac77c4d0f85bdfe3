// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environ using the caarlos0/env library. Field
// names come from the `env` tags of [Settings], prefixed with [EnvPrefix].
func parseEnv(cfg *Settings, environ []string) error {
	err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}
