// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a [StructuredConfig] from the process environment using
// the `env` and `envPrefix` tags on its fields.
func parseEnv() (*StructuredConfig, error) {
	return parseEnvWithOptions(env.Options{})
}

// parseEnvWithOptions is parseEnv with caller-supplied options. Tests use
// Options.Environment to avoid touching the process environment.
func parseEnvWithOptions(opts env.Options) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](opts)
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
