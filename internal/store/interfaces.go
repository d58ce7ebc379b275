package store

import (
	"context"
	"time"

	"github.com/playwise/kidsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ContentCache is the persistent local cache holding the content manifest,
// per-level metadata, per-level question payloads, player progress, the
// subscription snapshot and sync timestamps.
//
// Reads of absent entries never return an error: they return a defined empty
// sentinel (zero-value manifest, empty map, zero time) so callers need no
// null-checks beyond that sentinel. Writes are durable before the call
// returns, and a write is immediately visible to subsequent reads within the
// same process.
type ContentCache interface {
	// Manifest returns the cached content manifest, or a zero-value
	// manifest if none has ever been saved.
	Manifest(ctx context.Context) (models.Manifest, error)

	// SaveManifest replaces the cached manifest wholesale.
	SaveManifest(ctx context.Context, m models.Manifest) error

	// LevelsMeta returns all cached level descriptors, ordered by their
	// Ordering field. Empty slice when nothing is cached yet.
	LevelsMeta(ctx context.Context) ([]models.LevelMeta, error)

	// ReplaceLevelsMeta atomically replaces the whole level descriptor set.
	ReplaceLevelsMeta(ctx context.Context, meta []models.LevelMeta) error

	// SaveQuestions creates or overwrites the payload for one level,
	// recording the content version it was downloaded at.
	SaveQuestions(ctx context.Context, p models.QuestionPayload) error

	// Questions returns the cached payload for levelID.
	// Returns ErrQuestionsNotCached if the payload has never been saved.
	Questions(ctx context.Context, levelID string) (models.QuestionPayload, error)

	// QuestionVersions maps every cached level id to the content version
	// its payload was downloaded at.
	QuestionVersions(ctx context.Context) (map[string]int64, error)

	// HasQuestions reports whether a payload is cached for levelID,
	// independent of version. Answers "is this level playable offline".
	HasQuestions(ctx context.Context, levelID string) (bool, error)

	// DeleteQuestionsExcept removes payloads for levels no longer listed in
	// the catalog. Returns the number of rows removed.
	DeleteQuestionsExcept(ctx context.Context, keep []string) (int64, error)

	// CachedLevelCount returns how many level payloads are cached.
	CachedLevelCount(ctx context.Context) (int, error)

	// Progress returns all cached per-level progress. Empty map when the
	// player has never played or synced.
	Progress(ctx context.Context) (models.Progress, error)

	// SaveProgress upserts the given per-level records. Levels absent from
	// p are left untouched.
	SaveProgress(ctx context.Context, p models.Progress) error

	// Subscription returns the cached entitlement snapshot, zero value when
	// never fetched.
	Subscription(ctx context.Context) (models.Subscription, error)

	// SaveSubscription replaces the entitlement snapshot wholesale.
	SaveSubscription(ctx context.Context, s models.Subscription) error

	// LastSyncedAt returns the timestamp of the last recorded full sync,
	// zero time when never synced.
	LastSyncedAt(ctx context.Context) (time.Time, error)

	// SetLastSyncedAt records the full sync timestamp.
	SetLastSyncedAt(ctx context.Context, t time.Time) error

	// LastContentSyncAt returns when a content-only sync last completed,
	// zero time when never. Drives the content throttle window.
	LastContentSyncAt(ctx context.Context) (time.Time, error)

	// SetLastContentSyncAt records the content sync timestamp.
	SetLastContentSyncAt(ctx context.Context, t time.Time) error
}

// MutationStore is the durable ordered list of pending mutations backing the
// offline queue. Ordering is the enqueue order (ascending Seq).
type MutationStore interface {
	// Append persists m at the tail of the queue and returns it with the
	// assigned sequence number. Must succeed with zero connectivity.
	Append(ctx context.Context, m models.PendingMutation) (models.PendingMutation, error)

	// Oldest returns up to limit mutations from the head of the queue in
	// enqueue order. limit <= 0 means no limit.
	Oldest(ctx context.Context, limit int) ([]models.PendingMutation, error)

	// Remove deletes exactly the mutation with the given sequence number.
	Remove(ctx context.Context, seq int64) error

	// Len returns the current queue length.
	Len(ctx context.Context) (int, error)

	// EvictOverflow deletes oldest entries until at most capacity remain.
	// Returns how many were evicted.
	EvictOverflow(ctx context.Context, capacity int) (int64, error)
}
