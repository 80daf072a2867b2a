package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, an unparsable endpoint or a negative rate limit).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidCatalogConfigs indicates invalid discovery settings
	// (for example, an unknown machine type or a non-positive page cap).
	ErrInvalidCatalogConfigs = errors.New("invalid catalog configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an in-memory DSN that cannot hold a snapshot).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
