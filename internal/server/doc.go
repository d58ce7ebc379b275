// Package server exposes the daemon's local HTTP API.
//
// The app shell and the parent dashboard webview talk to it over loopback:
// they poll sync state, request an immediate sync, and read cached content
// and the entitlement snapshot for offline play. It is never reachable from
// outside the device.
package server
