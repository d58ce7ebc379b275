// Package adapter provides transport-layer abstractions for the two remote
// collaborators of the sync core.
//
// [ContentHost] talks to the public static content host: versioned JSON
// manifests and per-level question payloads served over unauthenticated GETs.
// [Backend] talks to the hosted function backend: an authenticated query for
// the player state snapshot and one call per queued mutation kind.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/playwise/kidsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ContentHost fetches versioned catalog content from the static host. All
// requests are unauthenticated GETs with a cache-busting query parameter;
// non-2xx responses are reported as errors.
type ContentHost interface {
	// FetchManifest downloads the current content manifest.
	FetchManifest(ctx context.Context) (models.Manifest, error)

	// FetchLevelsMeta downloads the full set of level descriptors.
	FetchLevelsMeta(ctx context.Context) ([]models.LevelMeta, error)

	// FetchQuestions downloads the opaque question payload for one level.
	// The payload schema is owned by the game layer; the sync core stores
	// the bytes as received.
	FetchQuestions(ctx context.Context, levelID string) (json.RawMessage, error)
}

// Backend is the authenticated RPC surface of the hosted function service.
// The sync core consumes it, it does not implement it: both calls may fail
// and both are safe to repeat. FetchPlayerState is a pure read;
// SubmitMutation is idempotent keyed on the mutation's client-generated ID,
// which the drain's at-least-once replay semantics rely on.
type Backend interface {
	// FetchPlayerState returns the authoritative progress and subscription
	// snapshot for the user identified by token.
	FetchPlayerState(ctx context.Context, token string) (models.PlayerState, error)

	// SubmitMutation replays one queued mutation against the backend.
	// Returns [ErrUnauthorized] (wrapped) when the token is rejected.
	SubmitMutation(ctx context.Context, token string, m models.PendingMutation) error
}
