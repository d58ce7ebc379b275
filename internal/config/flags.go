package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a status server address in format [host]:[port]
//	-d local database path
//	-c/-config json file path with configs
//	-content-url static content host base URL
//	-backend-url function backend base URL
//	-request-timeout outbound request timeout (e.g., "15s")
//	-sync-interval periodic full sync interval (e.g., "1h")
//	-content-throttle minimum gap between non-forced syncs (e.g., "5m")
//	-queue-capacity offline mutation queue capacity
//	-fetch-batch-size concurrent level payload download limit
func ParseFlags() *StructuredConfig {
	var statusAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var contentURL string
	var backendURL string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var contentThrottle time.Duration
	var queueCapacity int
	var fetchBatchSize int

	flag.Var(&statusAddress, "a", "Status server net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&contentURL, "content-url", "", "Static content host base URL")
	flag.StringVar(&backendURL, "backend-url", "", "Function backend base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 1h)")
	flag.DurationVar(&contentThrottle, "content-throttle", 0, "Content sync throttle window (e.g., 5m)")
	flag.IntVar(&queueCapacity, "queue-capacity", 0, "Offline mutation queue capacity")
	flag.IntVar(&fetchBatchSize, "fetch-batch-size", 0, "Concurrent level payload download limit")

	flag.Parse()

	return &StructuredConfig{
		Content: Content{
			BaseURL:        contentURL,
			RequestTimeout: requestTimeout,
			FetchBatchSize: fetchBatchSize,
		},
		Backend: Backend{
			BaseURL:        backendURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: statusAddress.String(),
		},
		Workers: Workers{
			SyncInterval:    syncInterval,
			ContentThrottle: contentThrottle,
			QueueCapacity:   queueCapacity,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
