package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/internal/mock"
	"github.com/playwise/kidsync/models"
)

// stubFetcher is a plain stub for the same-package ContentFetcher interface,
// no mockgen needed.
type stubFetcher struct {
	mu      sync.Mutex
	calls   int
	changed bool
	err     error
}

func (s *stubFetcher) FetchContent(_ context.Context) (bool, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.changed, s.err
}

func (s *stubFetcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubQueue struct {
	mu       sync.Mutex
	drains   int
	drainErr error
	length   int
	evicted  int64
}

func (s *stubQueue) Enqueue(_ context.Context, _ models.MutationKind, _ string, _ json.RawMessage) (models.PendingMutation, error) {
	return models.PendingMutation{}, nil
}

func (s *stubQueue) Len(_ context.Context) (int, error) { return s.length, nil }

func (s *stubQueue) EvictedTotal() int64 { return s.evicted }

func (s *stubQueue) Drain(_ context.Context, _ string) error {
	s.mu.Lock()
	s.drains++
	s.mu.Unlock()
	return s.drainErr
}

func (s *stubQueue) drainCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drains
}

func newTestEngine(t *testing.T, ctrl *gomock.Controller) (*syncEngine, *mock.MockContentCache, *mock.MockBackend, *stubFetcher, *stubQueue) {
	t.Helper()
	mockCache := mock.NewMockContentCache(ctrl)
	mockBackend := mock.NewMockBackend(ctrl)
	fetcher := &stubFetcher{}
	queue := &stubQueue{}

	e := NewSyncEngine(mockCache, queue, fetcher, mockBackend, time.Hour, 5*time.Minute, logger.Nop()).(*syncEngine)

	return e, mockCache, mockBackend, fetcher, queue
}

func TestSyncEngine_Sync_FullCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, mockCache, mockBackend, fetcher, queue := newTestEngine(t, ctrl)
	ctx := context.Background()
	token := "session-token"

	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	local := models.Progress{
		"counting-1": {LevelID: "counting-1", CompletedCount: 5, BestScore: 70},
	}
	remote := models.PlayerState{
		Progress: models.Progress{
			"counting-1": {LevelID: "counting-1", CompletedCount: 4, BestScore: 95},
		},
		Subscription: models.Subscription{Active: true, Plan: "family"},
	}

	mockCache.EXPECT().SetLastContentSyncAt(ctx, now).Return(nil)
	mockBackend.EXPECT().FetchPlayerState(ctx, token).Return(remote, nil)
	mockCache.EXPECT().Progress(ctx).Return(local, nil)
	mockCache.EXPECT().SaveProgress(ctx, models.Progress{
		"counting-1": {LevelID: "counting-1", CompletedCount: 5, BestScore: 95},
	}).Return(nil)
	mockCache.EXPECT().SaveSubscription(ctx, remote.Subscription).Return(nil)
	mockCache.EXPECT().SetLastSyncedAt(ctx, now).Return(nil)

	e.Sync(ctx, token, true)

	assert.Equal(t, 1, queue.drainCount())
	assert.Equal(t, 1, fetcher.callCount())
	assert.Empty(t, e.faults)
}

func TestSyncEngine_Sync_QueueFailureDoesNotBlockRest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, mockCache, mockBackend, fetcher, queue := newTestEngine(t, ctrl)
	ctx := context.Background()
	queue.drainErr = errors.New("mutation rejected")

	mockCache.EXPECT().SetLastContentSyncAt(ctx, gomock.Any()).Return(nil)
	mockBackend.EXPECT().FetchPlayerState(ctx, "tok").Return(models.PlayerState{}, nil)
	mockCache.EXPECT().Progress(ctx).Return(models.Progress{}, nil)
	mockCache.EXPECT().SaveProgress(ctx, gomock.Any()).Return(nil)
	mockCache.EXPECT().SaveSubscription(ctx, gomock.Any()).Return(nil)
	mockCache.EXPECT().SetLastSyncedAt(ctx, gomock.Any()).Return(nil)

	e.Sync(ctx, "tok", true)

	assert.Equal(t, 1, fetcher.callCount())
	require.Len(t, e.faults, 1)
	assert.Equal(t, models.FaultQueue, e.faults[0].Kind)
}

func TestSyncEngine_Sync_ContentFailureDoesNotBlockProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, mockCache, mockBackend, fetcher, _ := newTestEngine(t, ctrl)
	ctx := context.Background()
	fetcher.err = errors.New("host down")

	mockBackend.EXPECT().FetchPlayerState(ctx, "tok").Return(models.PlayerState{}, nil)
	mockCache.EXPECT().Progress(ctx).Return(models.Progress{}, nil)
	mockCache.EXPECT().SaveProgress(ctx, gomock.Any()).Return(nil)
	mockCache.EXPECT().SaveSubscription(ctx, gomock.Any()).Return(nil)
	mockCache.EXPECT().SetLastSyncedAt(ctx, gomock.Any()).Return(nil)

	e.Sync(ctx, "tok", true)

	require.Len(t, e.faults, 1)
	assert.Equal(t, models.FaultContent, e.faults[0].Kind)
}

func TestSyncEngine_Sync_ProgressFailureStillRecordsPartialSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, mockCache, mockBackend, _, _ := newTestEngine(t, ctrl)
	ctx := context.Background()

	mockCache.EXPECT().SetLastContentSyncAt(ctx, gomock.Any()).Return(nil)
	mockBackend.EXPECT().FetchPlayerState(ctx, "tok").Return(models.PlayerState{}, errors.New("401"))
	// Content succeeded, so the cycle still counts for the throttle.
	mockCache.EXPECT().SetLastSyncedAt(ctx, gomock.Any()).Return(nil)

	e.Sync(ctx, "tok", true)

	require.Len(t, e.faults, 1)
	assert.Equal(t, models.FaultProgress, e.faults[0].Kind)
}

func TestSyncEngine_Sync_ThrottledUnlessForced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, mockCache, _, fetcher, queue := newTestEngine(t, ctrl)
	ctx := context.Background()

	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	mockCache.EXPECT().LevelsMeta(ctx).Return([]models.LevelMeta{{LevelID: "counting-1"}}, nil)
	mockCache.EXPECT().LastSyncedAt(ctx).Return(now.Add(-time.Minute), nil)

	e.Sync(ctx, "tok", false)

	assert.Equal(t, 0, fetcher.callCount())
	assert.Equal(t, 0, queue.drainCount())
}

func TestSyncEngine_Sync_ConcurrentTriggerIsSilentNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, _, _, fetcher, queue := newTestEngine(t, ctrl)

	e.mu.Lock()
	e.syncing = true
	e.mu.Unlock()

	e.Sync(context.Background(), "tok", true)

	assert.Equal(t, 0, fetcher.callCount())
	assert.Equal(t, 0, queue.drainCount())
}

func TestSyncEngine_SyncContentOnly_ColdCacheBypassesThrottle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, mockCache, _, fetcher, _ := newTestEngine(t, ctrl)
	ctx := context.Background()

	// Nothing cached yet: throttle must not apply even though the call is
	// not forced.
	mockCache.EXPECT().LevelsMeta(ctx).Return(nil, nil)
	mockCache.EXPECT().SetLastContentSyncAt(ctx, gomock.Any()).Return(nil)

	e.SyncContentOnly(ctx, false)

	assert.Equal(t, 1, fetcher.callCount())
}

func TestSyncEngine_SyncContentOnly_ThrottledOnWarmCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, mockCache, _, fetcher, _ := newTestEngine(t, ctrl)
	ctx := context.Background()

	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	mockCache.EXPECT().LevelsMeta(ctx).Return([]models.LevelMeta{{LevelID: "counting-1"}}, nil)
	mockCache.EXPECT().LastContentSyncAt(ctx).Return(now.Add(-time.Minute), nil)

	e.SyncContentOnly(ctx, false)

	assert.Equal(t, 0, fetcher.callCount())
}

func TestSyncEngine_SyncContentOnly_FailureRecordsFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, _, _, fetcher, _ := newTestEngine(t, ctrl)
	fetcher.err = errors.New("host down")

	e.SyncContentOnly(context.Background(), true)

	require.Len(t, e.faults, 1)
	assert.Equal(t, models.FaultContent, e.faults[0].Kind)
}

func TestSyncEngine_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, mockCache, _, _, queue := newTestEngine(t, ctrl)
	ctx := context.Background()
	queue.length = 3
	queue.evicted = 2

	lastSynced := time.Date(2026, 8, 27, 11, 0, 0, 0, time.UTC)
	mockCache.EXPECT().LastSyncedAt(ctx).Return(lastSynced, nil)
	mockCache.EXPECT().CachedLevelCount(ctx).Return(12, nil)
	mockCache.EXPECT().LastContentSyncAt(ctx).Return(lastSynced, nil)

	e.recordFault(models.FaultContent, errors.New("host down"))

	status, err := e.Status(ctx)
	require.NoError(t, err)

	assert.True(t, status.LastSyncedAt.Equal(lastSynced))
	assert.Equal(t, 12, status.CachedLevels)
	assert.Equal(t, 3, status.QueueLength)
	assert.Equal(t, int64(2), status.QueueEvictedTotal)
	assert.False(t, status.Syncing)
	assert.True(t, status.ContentEverSynced)
	require.Len(t, status.Faults, 1)
	assert.Equal(t, models.FaultContent, status.Faults[0].Kind)
	assert.Equal(t, "host down", status.Faults[0].Message)
}

func TestSyncEngine_StartPeriodicSync_ImmediateSyncAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, mockCache, mockBackend, fetcher, queue := newTestEngine(t, ctrl)
	ctx := context.Background()

	mockCache.EXPECT().LevelsMeta(gomock.Any()).Return(nil, nil).AnyTimes()
	mockCache.EXPECT().LastSyncedAt(gomock.Any()).Return(time.Time{}, nil).AnyTimes()
	mockCache.EXPECT().SetLastContentSyncAt(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Progress(gomock.Any()).Return(models.Progress{}, nil).AnyTimes()
	mockCache.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().SaveSubscription(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().SetLastSyncedAt(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockBackend.EXPECT().FetchPlayerState(gomock.Any(), "tok").Return(models.PlayerState{}, nil).AnyTimes()

	e.StartPeriodicSync(ctx, func() string { return "tok" })

	require.Eventually(t, func() bool {
		return fetcher.callCount() == 1 && queue.drainCount() == 1
	}, time.Second, 5*time.Millisecond)

	e.Stop()
}

func TestSyncEngine_StartPeriodicSync_SkipsWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, _, _, fetcher, queue := newTestEngine(t, ctrl)
	e.syncInterval = 5 * time.Millisecond

	e.StartPeriodicSync(context.Background(), func() string { return "" })

	time.Sleep(30 * time.Millisecond)
	e.Stop()

	assert.Equal(t, 0, fetcher.callCount())
	assert.Equal(t, 0, queue.drainCount())
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": now.Add(-time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	valid, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": now.Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.True(t, tokenExpired(expired, now))
	assert.False(t, tokenExpired(valid, now))
	// Opaque tokens are passed through, expiry is the backend's problem.
	assert.False(t, tokenExpired("opaque-session-token", now))
}
