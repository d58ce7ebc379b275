package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the kidsync
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Content holds settings for the public static content host the
	// manifest and level payloads are fetched from.
	Content Content `envPrefix:"CONTENT_"`

	// Backend holds settings for the authenticated function backend that
	// serves player state and accepts progress mutations.
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the address of the local status HTTP endpoint polled by
	// the UI shell.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for the background sync schedule.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Exposed via the status endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Content holds settings for the static content host.
type Content struct {
	// BaseURL is the root URL of the static content host
	// (e.g. "https://content.playwisekids.app").
	// Env: CONTENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for content downloads
	// (e.g. "15s").
	// Env: CONTENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// FetchBatchSize bounds how many level payloads are downloaded
	// concurrently within one sync cycle.
	// Env: CONTENT_FETCH_BATCH_SIZE
	FetchBatchSize int `env:"FETCH_BATCH_SIZE"`
}

// Backend holds settings for the hosted function backend.
type Backend struct {
	// BaseURL is the root URL of the backend RPC surface
	// (e.g. "https://api.playwisekids.app").
	// Env: BACKEND_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for backend calls.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path of the on-device cache
	// (e.g. "/data/kidsync/cache.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network settings for the local status endpoint.
type Server struct {
	// HTTPAddress is the TCP address the status HTTP server listens on,
	// in "host:port" format. Loopback only in production builds.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Workers holds configuration for the background sync schedule.
type Workers struct {
	// SyncInterval defines how often the periodic full sync runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ContentThrottle is the minimum gap between non-forced sync attempts.
	// Env: WORKERS_CONTENT_THROTTLE
	ContentThrottle time.Duration `env:"CONTENT_THROTTLE"`

	// QueueCapacity bounds the offline mutation queue; oldest entries are
	// evicted beyond it.
	// Env: WORKERS_QUEUE_CAPACITY
	QueueCapacity int `env:"QUEUE_CAPACITY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
