// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the APP_, ADAPTER_ and STORAGE_ variables (and CONFIG) into
// cfg. Variables exported from a .env file by loadDotEnv are visible here as
// well. Unset variables leave their fields zero so that mergo keeps the
// values of lower layers.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}

	return nil
}
