package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/playwise/kidsync/internal/adapter"
	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/internal/store"
	"github.com/playwise/kidsync/models"
)

const (
	// DefaultSyncInterval is how often the periodic schedule runs a full
	// sync cycle.
	DefaultSyncInterval = time.Hour

	// DefaultThrottleWindow is the minimum gap between non-forced sync
	// attempts. Pure bandwidth control against metered or flaky
	// connections; forcing a sync is always safe.
	DefaultThrottleWindow = 5 * time.Minute
)

type syncEngine struct {
	cache   store.ContentCache
	queue   MutationQueue
	fetcher ContentFetcher
	backend adapter.Backend
	logger  *logger.Logger

	syncInterval   time.Duration
	throttleWindow time.Duration
	now            func() time.Time

	mu      sync.Mutex
	syncing bool
	faults  []models.SyncFault

	jobMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncEngine creates an idle engine. Nothing runs until one of the sync
// entry points or StartPeriodicSync is called; multiple independent engines
// can coexist because all state lives on the returned handle.
func NewSyncEngine(
	cache store.ContentCache,
	queue MutationQueue,
	fetcher ContentFetcher,
	backend adapter.Backend,
	syncInterval, throttleWindow time.Duration,
	logger *logger.Logger,
) SyncEngine {
	if syncInterval <= 0 {
		syncInterval = DefaultSyncInterval
	}
	if throttleWindow <= 0 {
		throttleWindow = DefaultThrottleWindow
	}
	return &syncEngine{
		cache:          cache,
		queue:          queue,
		fetcher:        fetcher,
		backend:        backend,
		logger:         logger,
		syncInterval:   syncInterval,
		throttleWindow: throttleWindow,
		now:            time.Now,
	}
}

// Sync implements SyncEngine. The three steps are independent failure
// domains: a stuck queued mutation never blocks content, and a content-host
// outage never blocks the progress fetch.
func (e *syncEngine) Sync(ctx context.Context, token string, force bool) {
	if !e.beginCycle() {
		e.logger.Debug().Msg("sync already in progress, trigger dropped")
		return
	}
	defer e.endCycle()

	if !force && e.recentlySynced(ctx) {
		e.logger.Debug().Msg("sync throttled")
		return
	}

	now := e.now().UTC()
	e.logger.Info().Bool("force", force).Msg("sync cycle started")

	// Step 1: drain the offline queue. Refusing to sync content or progress
	// just because one queued mutation failed would compound the user's bad
	// experience, so a failure here is recorded and the cycle proceeds.
	if err := e.queue.Drain(ctx, token); err != nil {
		e.logger.Warn().Err(err).Msg("queue drain stopped")
		e.recordFault(models.FaultQueue, err)
	}

	// Step 2: content. A failure is recorded and the cycle proceeds;
	// progress sync must not be held hostage by a content-host outage.
	contentOK := false
	changed, err := e.fetcher.FetchContent(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("content sync failed")
		e.recordFault(models.FaultContent, err)
	} else {
		contentOK = true
		if err = e.cache.SetLastContentSyncAt(ctx, now); err != nil {
			e.logger.Warn().Err(err).Msg("recording content sync time failed")
		}
	}

	// Step 3: authoritative player state.
	state, err := e.backend.FetchPlayerState(ctx, token)
	if err != nil {
		e.logger.Warn().Err(err).Msg("player state fetch failed")
		e.recordFault(models.FaultProgress, err)

		// A partial sync (content-only) is still forward progress: record
		// it so the throttle does not immediately retry a cycle that half
		// succeeded.
		if contentOK || e.contentEverSynced(ctx) {
			if err = e.cache.SetLastSyncedAt(ctx, now); err != nil {
				e.logger.Warn().Err(err).Msg("recording sync time failed")
			}
		}
		return
	}

	if err = e.applyPlayerState(ctx, state); err != nil {
		e.recordFault(models.FaultProgress, err)
		return
	}
	if err = e.cache.SetLastSyncedAt(ctx, now); err != nil {
		e.logger.Warn().Err(err).Msg("recording sync time failed")
	}

	e.logger.Info().Bool("content_changed", changed).Msg("sync cycle finished")
}

// applyPlayerState merges the fetched progress into the cache (never a blind
// overwrite: a local optimistic update the backend has not seen yet must
// survive) and replaces the subscription snapshot wholesale (it has no local
// writer, so overwrite is safe and correct).
func (e *syncEngine) applyPlayerState(ctx context.Context, state models.PlayerState) error {
	local, err := e.cache.Progress(ctx)
	if err != nil {
		return err
	}

	if err = e.cache.SaveProgress(ctx, MergeProgress(local, state.Progress)); err != nil {
		return err
	}
	if err = e.cache.SaveSubscription(ctx, state.Subscription); err != nil {
		return err
	}

	return nil
}

// SyncContentOnly implements SyncEngine. Public catalog content needs no
// token, so this path works before authentication exists.
func (e *syncEngine) SyncContentOnly(ctx context.Context, force bool) {
	if !e.beginCycle() {
		e.logger.Debug().Msg("sync already in progress, content trigger dropped")
		return
	}
	defer e.endCycle()

	if !force && e.contentThrottled(ctx) {
		e.logger.Debug().Msg("content sync throttled")
		return
	}

	now := e.now().UTC()
	changed, err := e.fetcher.FetchContent(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("content sync failed")
		e.recordFault(models.FaultContent, err)
		return
	}

	if err = e.cache.SetLastContentSyncAt(ctx, now); err != nil {
		e.logger.Warn().Err(err).Msg("recording content sync time failed")
	}
	e.logger.Info().Bool("content_changed", changed).Msg("content sync finished")
}

// contentThrottled reports whether a recent content sync makes this one
// redundant. A device with no cached level metadata is never throttled:
// cold start must always reach the catalog.
func (e *syncEngine) contentThrottled(ctx context.Context) bool {
	meta, err := e.cache.LevelsMeta(ctx)
	if err != nil || len(meta) == 0 {
		return false
	}

	last, err := e.cache.LastContentSyncAt(ctx)
	if err != nil || last.IsZero() {
		return false
	}
	return e.now().Sub(last) < e.throttleWindow
}

func (e *syncEngine) recentlySynced(ctx context.Context) bool {
	meta, err := e.cache.LevelsMeta(ctx)
	if err != nil || len(meta) == 0 {
		return false
	}

	last, err := e.cache.LastSyncedAt(ctx)
	if err != nil || last.IsZero() {
		return false
	}
	return e.now().Sub(last) < e.throttleWindow
}

// StartPeriodicSync implements SyncEngine. It stops any previously running
// schedule, then launches a goroutine that performs one immediate sync if a
// token is available and re-derives the token on every tick afterwards.
func (e *syncEngine) StartPeriodicSync(ctx context.Context, tokenFn TokenFunc) {
	e.Stop()

	e.jobMu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.wg.Add(1)
	e.jobMu.Unlock()

	go func() {
		defer e.wg.Done()

		if token, ok := e.usableToken(tokenFn); ok {
			e.Sync(jobCtx, token, false)
		}

		t := time.NewTicker(e.syncInterval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				token, ok := e.usableToken(tokenFn)
				if !ok {
					e.logger.Debug().Msg("periodic sync tick skipped, no usable session token")
					continue
				}
				e.Sync(jobCtx, token, false)
			}
		}
	}()
}

// Stop implements SyncEngine. Safe to call when no schedule is running.
func (e *syncEngine) Stop() {
	e.jobMu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.jobMu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.wg.Wait()
}

// Status implements SyncEngine.
func (e *syncEngine) Status(ctx context.Context) (models.SyncStatus, error) {
	lastSynced, err := e.cache.LastSyncedAt(ctx)
	if err != nil {
		return models.SyncStatus{}, err
	}
	cachedLevels, err := e.cache.CachedLevelCount(ctx)
	if err != nil {
		return models.SyncStatus{}, err
	}
	queueLen, err := e.queue.Len(ctx)
	if err != nil {
		return models.SyncStatus{}, err
	}

	e.mu.Lock()
	syncing := e.syncing
	faults := make([]models.SyncFault, len(e.faults))
	copy(faults, e.faults)
	e.mu.Unlock()

	return models.SyncStatus{
		LastSyncedAt:      lastSynced,
		CachedLevels:      cachedLevels,
		QueueLength:       queueLen,
		QueueEvictedTotal: e.queue.EvictedTotal(),
		Syncing:           syncing,
		ContentEverSynced: e.contentEverSynced(ctx),
		Faults:            faults,
	}, nil
}

func (e *syncEngine) contentEverSynced(ctx context.Context) bool {
	last, err := e.cache.LastContentSyncAt(ctx)
	if err == nil && !last.IsZero() {
		return true
	}
	meta, err := e.cache.LevelsMeta(ctx)
	return err == nil && len(meta) > 0
}

// beginCycle claims the single in-flight slot. A redundant trigger while a
// sync is running is dropped, not queued: losing it is cheap, queuing it is
// not worth the complexity. Claiming the slot also starts a fresh fault
// list for the new cycle.
func (e *syncEngine) beginCycle() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.syncing {
		return false
	}
	e.syncing = true
	e.faults = nil
	return true
}

func (e *syncEngine) endCycle() {
	e.mu.Lock()
	e.syncing = false
	e.mu.Unlock()
}

// recordFault appends a structured error record for the current cycle.
// Append, never replace: a content fault and a progress fault from the same
// cycle must both stay visible to the status consumer.
func (e *syncEngine) recordFault(kind models.FaultKind, err error) {
	e.mu.Lock()
	e.faults = append(e.faults, models.SyncFault{
		Kind:    kind,
		Message: err.Error(),
		At:      e.now().UTC(),
	})
	e.mu.Unlock()
}

// usableToken re-reads the accessor and drops tokens that are structurally
// JWTs with an expiry in the past. The client cannot verify signatures and
// does not try to; it only avoids spending a network round trip on a
// guaranteed 401. Opaque (non-JWT) tokens pass through untouched.
func (e *syncEngine) usableToken(tokenFn TokenFunc) (string, bool) {
	token := tokenFn()
	if token == "" {
		return "", false
	}
	if tokenExpired(token, e.now()) {
		e.logger.Debug().Msg("session token expired")
		return "", false
	}
	return token, true
}

func tokenExpired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
