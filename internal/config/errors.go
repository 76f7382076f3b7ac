package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid backend settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid session store settings
	// (for example, empty DSN or an in-memory DSN that would lose the session).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid presentation settings
	// (for example, a locale that is not a BCP 47 tag).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
