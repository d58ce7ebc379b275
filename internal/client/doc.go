// Package client implements the sync daemon runtime.
//
// It ties the sync engine, the background periodic job, and the local status
// HTTP server into a single process lifecycle with graceful shutdown.
package client
