package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Intentionally permissive: fields may still be empty at this stage because
// [GetClientConfig] applies defaults before the client view is validated.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Content.BaseURL == "" {
		return ErrInvalidContentConfigs
	}

	if cfg.Backend.BaseURL == "" {
		return ErrInvalidBackendConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.ContentThrottle <= 0 || cfg.Workers.QueueCapacity <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
