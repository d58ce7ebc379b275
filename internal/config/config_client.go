package config

import (
	"fmt"
	"time"
)

// Client-side defaults applied by [GetClientConfig] when a field is not set
// by any source.
const (
	defaultRequestTimeout  = 15 * time.Second
	defaultSyncInterval    = time.Hour
	defaultContentThrottle = 5 * time.Minute
	defaultQueueCapacity   = 1000
	defaultFetchBatchSize  = 5
	defaultStatusAddress   = "127.0.0.1:8642"
	defaultDatabasePath    = "kidsync.db"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version string exposed via the status endpoint.
	Version string
}

// ClientContent holds network settings for the static content host.
type ClientContent struct {
	// BaseURL is the root URL of the static content host.
	BaseURL string
	// RequestTimeout is the per-request timeout for content downloads.
	RequestTimeout time.Duration
}

// ClientBackend holds network settings for the hosted function backend.
type ClientBackend struct {
	// BaseURL is the root URL of the backend RPC surface.
	BaseURL string
	// RequestTimeout is the per-request timeout for backend calls.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the on-device cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientServer holds the local status endpoint settings.
type ClientServer struct {
	// Address is the TCP address the status HTTP server listens on.
	Address string
}

// ClientWorkers contains background sync settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic full sync runs.
	SyncInterval time.Duration
	// ContentThrottle is the minimum gap between non-forced sync attempts.
	ContentThrottle time.Duration
	// QueueCapacity bounds the offline mutation queue.
	QueueCapacity int
	// FetchBatchSize bounds concurrent level payload downloads.
	FetchBatchSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Content contains content host addresses and timeouts.
	Content ClientContent
	// Backend contains backend addresses and timeouts.
	Backend ClientBackend
	// Storage contains client storage settings.
	Storage ClientStorage
	// Server contains the local status endpoint settings.
	Server ClientServer
	// Workers contains background sync settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for unset values, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Content: ClientContent{
			BaseURL:        cfg.Content.BaseURL,
			RequestTimeout: cfg.Content.RequestTimeout,
		},
		Backend: ClientBackend{
			BaseURL:        cfg.Backend.BaseURL,
			RequestTimeout: cfg.Backend.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Server: ClientServer{
			Address: cfg.Server.HTTPAddress,
		},
		Workers: ClientWorkers{
			SyncInterval:    cfg.Workers.SyncInterval,
			ContentThrottle: cfg.Workers.ContentThrottle,
			QueueCapacity:   cfg.Workers.QueueCapacity,
			FetchBatchSize:  cfg.Content.FetchBatchSize,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Content.RequestTimeout <= 0 {
		cfg.Content.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Backend.RequestTimeout <= 0 {
		cfg.Backend.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDatabasePath
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = defaultStatusAddress
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = defaultSyncInterval
	}
	if cfg.Workers.ContentThrottle <= 0 {
		cfg.Workers.ContentThrottle = defaultContentThrottle
	}
	if cfg.Workers.QueueCapacity <= 0 {
		cfg.Workers.QueueCapacity = defaultQueueCapacity
	}
	if cfg.Workers.FetchBatchSize <= 0 {
		cfg.Workers.FetchBatchSize = defaultFetchBatchSize
	}
}
