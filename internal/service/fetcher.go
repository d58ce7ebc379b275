package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/playwise/kidsync/internal/adapter"
	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/internal/store"
	"github.com/playwise/kidsync/models"
)

// DefaultFetchBatchSize bounds how many level payloads are downloaded
// concurrently within one cycle. A fixed window, not unbounded fan-out: the
// stale set can cover the whole catalog after a big publish.
const DefaultFetchBatchSize = 5

type contentFetcher struct {
	cache     store.ContentCache
	host      adapter.ContentHost
	logger    *logger.Logger
	batchSize int

	// cacheMu keeps payload writes from interleaving: the batch fetch is
	// the only place the engine's otherwise sequential state machine runs
	// concurrent workers against the cache.
	cacheMu sync.Mutex
}

func NewContentFetcher(cache store.ContentCache, host adapter.ContentHost, batchSize int, logger *logger.Logger) ContentFetcher {
	if batchSize <= 0 {
		batchSize = DefaultFetchBatchSize
	}
	return &contentFetcher{
		cache:     cache,
		host:      host,
		logger:    logger,
		batchSize: batchSize,
	}
}

// FetchContent implements ContentFetcher.
//
// Order matters: the manifest is persisted strictly after every payload
// fetch of the cycle has finished, so a process killed mid-fetch still sees
// the old manifest on the next run and recomputes the same stale set instead
// of silently believing it is up to date. Staleness itself is computed
// against the version stored with each cached payload, so even a persisted
// manifest can never mask a level whose download failed.
func (f *contentFetcher) FetchContent(ctx context.Context) (bool, error) {
	fetched, err := f.host.FetchManifest(ctx)
	if err != nil {
		return false, fmt.Errorf("fetch manifest: %w", err)
	}

	cached, err := f.cache.Manifest(ctx)
	if err != nil {
		return false, fmt.Errorf("read cached manifest: %w", err)
	}

	changed, err := f.refreshLevelsMeta(ctx, fetched, cached)
	if err != nil {
		return changed, err
	}

	stale, err := f.staleLevels(ctx, fetched)
	if err != nil {
		return changed, err
	}

	if len(stale) > 0 {
		saved := f.fetchStalePayloads(ctx, fetched, stale)
		if saved > 0 {
			changed = true
		}
	}

	if removed := f.pruneRetiredLevels(ctx, fetched); removed > 0 {
		changed = true
	}

	if err = f.cache.SaveManifest(ctx, fetched); err != nil {
		return changed, fmt.Errorf("save manifest: %w", err)
	}

	return changed, nil
}

// refreshLevelsMeta replaces the cached level descriptors when the fetched
// manifest is newer than the cached one, or when no descriptors are cached
// yet (covers an install whose first fetch previously died halfway).
func (f *contentFetcher) refreshLevelsMeta(ctx context.Context, fetched, cached models.Manifest) (bool, error) {
	meta, err := f.cache.LevelsMeta(ctx)
	if err != nil {
		return false, fmt.Errorf("read cached levels meta: %w", err)
	}
	if fetched.PublishedAt <= cached.PublishedAt && len(meta) > 0 {
		return false, nil
	}

	remote, err := f.host.FetchLevelsMeta(ctx)
	if err != nil {
		return false, fmt.Errorf("fetch levels meta: %w", err)
	}
	if err = f.cache.ReplaceLevelsMeta(ctx, remote); err != nil {
		return false, fmt.Errorf("replace levels meta: %w", err)
	}

	return true, nil
}

// staleLevels returns every level whose manifest version exceeds the version
// its cached payload was downloaded at, or whose payload is missing locally
// altogether. The second clause guards against earlier partial fetches: a
// level is re-fetched even when versions agree if its payload never landed.
func (f *contentFetcher) staleLevels(ctx context.Context, fetched models.Manifest) ([]string, error) {
	versions, err := f.cache.QuestionVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("read cached question versions: %w", err)
	}

	var stale []string
	for levelID, version := range fetched.LevelVersions {
		cachedVersion, ok := versions[levelID]
		if !ok || version > cachedVersion {
			stale = append(stale, levelID)
		}
	}
	sort.Strings(stale)

	return stale, nil
}

// fetchStalePayloads downloads the stale payloads in a bounded-size parallel
// batch and persists each one as it arrives. A single level's failure is
// logged and skipped; one flaky file on the content host must not block the
// rest of the catalog. Returns how many payloads were saved.
func (f *contentFetcher) fetchStalePayloads(ctx context.Context, manifest models.Manifest, stale []string) int {
	var (
		savedMu sync.Mutex
		saved   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.batchSize)

	for _, levelID := range stale {
		levelID := levelID
		g.Go(func() error {
			payload, err := f.host.FetchQuestions(gctx, levelID)
			if err != nil {
				f.logger.Warn().Err(err).
					Str("level_id", levelID).
					Msg("level payload fetch failed, skipping")
				return nil
			}

			f.cacheMu.Lock()
			err = f.cache.SaveQuestions(ctx, models.QuestionPayload{
				LevelID: levelID,
				Version: manifest.LevelVersions[levelID],
				Data:    payload,
			})
			f.cacheMu.Unlock()
			if err != nil {
				f.logger.Warn().Err(err).
					Str("level_id", levelID).
					Msg("level payload save failed, skipping")
				return nil
			}

			savedMu.Lock()
			saved++
			savedMu.Unlock()
			return nil
		})
	}
	// Workers never return errors; per-level failures are isolated above.
	_ = g.Wait()

	return saved
}

// pruneRetiredLevels drops cached payloads for levels the manifest no longer
// lists, so a retired level does not occupy device storage forever. Failures
// are logged only: pruning is housekeeping, never worth failing a cycle for.
func (f *contentFetcher) pruneRetiredLevels(ctx context.Context, manifest models.Manifest) int64 {
	keep := make([]string, 0, len(manifest.LevelVersions))
	for levelID := range manifest.LevelVersions {
		keep = append(keep, levelID)
	}

	removed, err := f.cache.DeleteQuestionsExcept(ctx, keep)
	if err != nil {
		f.logger.Warn().Err(err).Msg("pruning retired level payloads failed")
		return 0
	}
	if removed > 0 {
		f.logger.Info().Int64("removed", removed).Msg("pruned retired level payloads")
	}

	return removed
}
