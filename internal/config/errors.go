package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidContentConfigs indicates invalid content host settings
	// (for example, a missing base URL).
	ErrInvalidContentConfigs = errors.New("invalid content host configuration")
	// ErrInvalidBackendConfigs indicates invalid backend settings
	// (for example, a missing base URL).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background sync settings
	// (for example, a negative queue capacity).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
