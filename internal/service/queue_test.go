package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/playwise/kidsync/internal/adapter"
	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/internal/mock"
	"github.com/playwise/kidsync/models"
)

func newTestQueue(t *testing.T, ctrl *gomock.Controller, capacity int) (*mutationQueue, *mock.MockMutationStore, *mock.MockBackend) {
	t.Helper()
	mockStore := mock.NewMockMutationStore(ctrl)
	mockBackend := mock.NewMockBackend(ctrl)

	q := NewMutationQueue(mockStore, mockBackend, capacity, logger.Nop()).(*mutationQueue)

	return q, mockStore, mockBackend
}

func TestMutationQueue_Enqueue_AssignsIDAndSeq(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q, mockStore, _ := newTestQueue(t, ctrl, 10)
	ctx := context.Background()
	payload := json.RawMessage(`{"score":90}`)

	mockStore.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.PendingMutation) (models.PendingMutation, error) {
			assert.NotEmpty(t, m.ID)
			assert.Equal(t, models.MutationLevelCompleted, m.Kind)
			assert.Equal(t, "counting-1", m.LevelID)
			assert.False(t, m.CreatedAt.IsZero())
			m.Seq = 7
			return m, nil
		})
	mockStore.EXPECT().EvictOverflow(ctx, 10).Return(int64(0), nil)

	got, err := q.Enqueue(ctx, models.MutationLevelCompleted, "counting-1", payload)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Seq)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, int64(0), q.EvictedTotal())
}

func TestMutationQueue_Enqueue_CountsEvictions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q, mockStore, _ := newTestQueue(t, ctrl, 2)
	ctx := context.Background()

	mockStore.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.PendingMutation) (models.PendingMutation, error) {
			m.Seq = 3
			return m, nil
		})
	mockStore.EXPECT().EvictOverflow(ctx, 2).Return(int64(1), nil)

	_, err := q.Enqueue(ctx, models.MutationLevelStarted, "shapes-1", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), q.EvictedTotal())
}

func TestMutationQueue_Enqueue_EvictionFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q, mockStore, _ := newTestQueue(t, ctrl, 2)
	ctx := context.Background()

	mockStore.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.PendingMutation) (models.PendingMutation, error) {
			m.Seq = 4
			return m, nil
		})
	mockStore.EXPECT().EvictOverflow(ctx, 2).Return(int64(0), errors.New("disk full"))

	got, err := q.Enqueue(ctx, models.MutationLevelStarted, "shapes-1", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Seq)
	assert.Equal(t, int64(0), q.EvictedTotal())
}

func TestMutationQueue_Drain_ReplaysInOrderAndRemovesEach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q, mockStore, mockBackend := newTestQueue(t, ctrl, 10)
	ctx := context.Background()
	token := "session-token"

	queued := []models.PendingMutation{
		{Seq: 1, ID: "a", Kind: models.MutationLevelStarted, LevelID: "counting-1"},
		{Seq: 2, ID: "b", Kind: models.MutationLevelCompleted, LevelID: "counting-1"},
		{Seq: 3, ID: "c", Kind: models.MutationLevelStarted, LevelID: "shapes-1"},
	}
	mockStore.EXPECT().Oldest(ctx, 0).Return(queued, nil)

	// Each submit must be acknowledged and removed before the next one goes
	// out, in enqueue order.
	gomock.InOrder(
		mockBackend.EXPECT().SubmitMutation(ctx, token, queued[0]).Return(nil),
		mockStore.EXPECT().Remove(gomock.Any(), int64(1)).Return(nil),
		mockBackend.EXPECT().SubmitMutation(ctx, token, queued[1]).Return(nil),
		mockStore.EXPECT().Remove(gomock.Any(), int64(2)).Return(nil),
		mockBackend.EXPECT().SubmitMutation(ctx, token, queued[2]).Return(nil),
		mockStore.EXPECT().Remove(gomock.Any(), int64(3)).Return(nil),
	)

	require.NoError(t, q.Drain(ctx, token))
}

func TestMutationQueue_Drain_StopsOnFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q, mockStore, mockBackend := newTestQueue(t, ctrl, 10)
	ctx := context.Background()
	token := "session-token"

	queued := []models.PendingMutation{
		{Seq: 1, ID: "a", Kind: models.MutationLevelStarted, LevelID: "counting-1"},
		{Seq: 2, ID: "b", Kind: models.MutationLevelCompleted, LevelID: "counting-1"},
	}
	mockStore.EXPECT().Oldest(ctx, 0).Return(queued, nil)

	sendErr := errors.New("connection reset")
	mockBackend.EXPECT().SubmitMutation(ctx, token, queued[0]).Return(sendErr)
	// No Remove for seq 1 and no submit at all for seq 2: the failed mutation
	// and everything after it stay queued.

	err := q.Drain(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sendErr)
}

func TestMutationQueue_Drain_DropsUndeliverableMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q, mockStore, mockBackend := newTestQueue(t, ctrl, 10)
	ctx := context.Background()
	token := "session-token"

	queued := []models.PendingMutation{
		{Seq: 1, ID: "a", Kind: models.MutationKind("legacy_event"), LevelID: "counting-1"},
		{Seq: 2, ID: "b", Kind: models.MutationLevelCompleted, LevelID: "counting-1"},
	}
	mockStore.EXPECT().Oldest(ctx, 0).Return(queued, nil)

	gomock.InOrder(
		mockBackend.EXPECT().SubmitMutation(ctx, token, queued[0]).Return(adapter.ErrUnknownMutationKind),
		mockStore.EXPECT().Remove(gomock.Any(), int64(1)).Return(nil),
		mockBackend.EXPECT().SubmitMutation(ctx, token, queued[1]).Return(nil),
		mockStore.EXPECT().Remove(gomock.Any(), int64(2)).Return(nil),
	)

	require.NoError(t, q.Drain(ctx, token))
}

func TestMutationQueue_Drain_EmptyQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q, mockStore, _ := newTestQueue(t, ctrl, 10)
	ctx := context.Background()

	mockStore.EXPECT().Oldest(ctx, 0).Return(nil, nil)

	require.NoError(t, q.Drain(ctx, "session-token"))
}
