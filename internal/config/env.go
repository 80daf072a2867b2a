// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the ADAPTER_*, CATALOG_*, STORAGE_DB_*, SERVER_* and
// WORKERS_* variables into a fresh [StructuredConfig]. Unset variables leave
// their fields zero so that the merge keeps values from other sources.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	return &cfg, nil
}
