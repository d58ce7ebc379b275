package service

import (
	"context"
	"encoding/json"

	"github.com/playwise/kidsync/models"
)

// TokenFunc returns the current session token, or an empty string when no
// authenticated session exists (e.g. the user logged out). The sync engine
// captures an accessor instead of a static token because tokens rotate and
// expire over the lifetime of a long-running session: every periodic tick
// re-reads the current value.
type TokenFunc func() string

// ContentFetcher keeps the local content cache in step with the static host.
type ContentFetcher interface {
	// FetchContent fetches the manifest and, selectively, only the level
	// payloads whose version has advanced since the last cache write or
	// whose payload is missing locally. The manifest itself is persisted
	// only after all payload fetches for the cycle have completed.
	// Returns whether any cached content actually changed. A manifest fetch
	// failure fails the whole call; individual payload failures do not.
	FetchContent(ctx context.Context) (bool, error)
}

// MutationQueue is the offline queue of progress mutations awaiting backend
// acknowledgment.
type MutationQueue interface {
	// Enqueue durably appends a mutation and returns it with its assigned
	// id and sequence number. Callable with zero connectivity; returns only
	// after the mutation is persisted. When the queue is over capacity the
	// oldest entries are evicted and counted (see EvictedTotal).
	Enqueue(ctx context.Context, kind models.MutationKind, levelID string, payload json.RawMessage) (models.PendingMutation, error)

	// Len returns the current queue length. Side-effect free; used for UI
	// badges.
	Len(ctx context.Context) (int, error)

	// EvictedTotal returns how many mutations have been dropped by capacity
	// eviction since this process started.
	EvictedTotal() int64

	// Drain replays every queued mutation in enqueue order. Each
	// acknowledged mutation is removed from the durable queue before the
	// next one is attempted, so partial progress survives a mid-drain crash
	// or connectivity loss. The first failure stops the drain and leaves
	// the failed mutation and everything after it queued.
	Drain(ctx context.Context, token string) error
}

// SyncEngine coordinates the cache, the queue, the fetcher and the backend
// into scheduled and on-demand synchronisation cycles. Failures are never
// returned to the caller of a sync entry point: they are captured as
// structured fault records surfaced through Status, because the consumer of
// this subsystem is a UI status indicator, not a control-flow decision point.
type SyncEngine interface {
	// Sync runs one full cycle: drain the queue, fetch stale content, fetch
	// the authoritative player state, merge progress into the cache and
	// record the sync timestamp. Each step is its own failure domain; a
	// failure in one never discards progress already made in another. A
	// call while another sync is in flight is a silent no-op. Non-forced
	// calls are throttled against the last recorded sync.
	Sync(ctx context.Context, token string, force bool)

	// SyncContentOnly refreshes catalog content without a session, for use
	// before authentication exists. Throttled unless forced; the throttle
	// is bypassed while no level metadata is cached at all, so a cold-start
	// device is never blocked from its first content.
	SyncContentOnly(ctx context.Context, force bool)

	// StartPeriodicSync performs one immediate full sync if a token is
	// currently available, then re-syncs on a fixed interval. The token
	// accessor is re-read on every tick; a tick with no usable token is
	// skipped. Any previously running schedule is stopped first.
	StartPeriodicSync(ctx context.Context, tokenFn TokenFunc)

	// Stop cancels the periodic schedule and waits for its goroutine. An
	// in-flight cycle is not aborted: its cache writes are still applied,
	// only the next scheduled trigger is suppressed.
	Stop()

	// Status assembles the current sync status from the cache, the queue
	// and the engine's in-memory flags. It performs no network I/O.
	Status(ctx context.Context) (models.SyncStatus, error)
}
