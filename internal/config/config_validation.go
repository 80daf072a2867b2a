// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-wu-catalog/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.Endpoint != "" {
		u, err := url.Parse(cfg.Adapter.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: endpoint %q must include scheme and host", ErrInvalidAdapterConfigs, cfg.Adapter.Endpoint)
		}
	}
	if cfg.Adapter.RateLimit < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative rate limit or timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Catalog.Machine != "" {
		if _, ok := models.ParseMachineType(cfg.Catalog.Machine); !ok {
			return fmt.Errorf("%w: unknown machine %q", ErrInvalidCatalogConfigs, cfg.Catalog.Machine)
		}
	}
	if cfg.Catalog.MaxPages < 0 {
		return fmt.Errorf("%w: max pages must not be negative", ErrInvalidCatalogConfigs)
	}

	if strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return fmt.Errorf("%w: in-memory database cannot hold a snapshot", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.MaxParallelProfiles < 0 || cfg.Workers.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative parallelism or refresh interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
