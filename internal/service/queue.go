package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/playwise/kidsync/internal/adapter"
	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/internal/store"
	"github.com/playwise/kidsync/models"
)

// DefaultQueueCapacity bounds the offline mutation queue. Under sustained
// offline use the oldest mutations are evicted first; the eviction count is
// surfaced through SyncStatus so the UI can warn that some changes may be
// lost.
const DefaultQueueCapacity = 1000

type mutationQueue struct {
	store    store.MutationStore
	backend  adapter.Backend
	logger   *logger.Logger
	capacity int

	evicted atomic.Int64
}

func NewMutationQueue(mutationStore store.MutationStore, backend adapter.Backend, capacity int, logger *logger.Logger) MutationQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &mutationQueue{
		store:    mutationStore,
		backend:  backend,
		logger:   logger,
		capacity: capacity,
	}
}

func (q *mutationQueue) Enqueue(ctx context.Context, kind models.MutationKind, levelID string, payload json.RawMessage) (models.PendingMutation, error) {
	m := models.PendingMutation{
		ID:        uuid.NewString(),
		Kind:      kind,
		LevelID:   levelID,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	m, err := q.store.Append(ctx, m)
	if err != nil {
		return models.PendingMutation{}, fmt.Errorf("enqueue mutation: %w", err)
	}

	evicted, err := q.store.EvictOverflow(ctx, q.capacity)
	if err != nil {
		// The mutation itself is already durable; a failed eviction only
		// means the queue is temporarily over capacity.
		q.logger.Warn().Err(err).Msg("queue overflow eviction failed")
		return m, nil
	}
	if evicted > 0 {
		q.evicted.Add(evicted)
		q.logger.Warn().
			Int64("evicted", evicted).
			Int("capacity", q.capacity).
			Msg("offline queue over capacity, oldest mutations dropped")
	}

	return m, nil
}

func (q *mutationQueue) Len(ctx context.Context) (int, error) {
	return q.store.Len(ctx)
}

func (q *mutationQueue) EvictedTotal() int64 {
	return q.evicted.Load()
}

func (q *mutationQueue) Drain(ctx context.Context, token string) error {
	mutations, err := q.store.Oldest(ctx, 0)
	if err != nil {
		return fmt.Errorf("load queued mutations: %w", err)
	}

	for _, m := range mutations {
		if err = q.replay(ctx, token, m); err != nil {
			return err
		}
	}

	return nil
}

// replay sends one mutation and, on acknowledgment, removes exactly that
// mutation from the durable queue before the caller moves to the next one.
func (q *mutationQueue) replay(ctx context.Context, token string, m models.PendingMutation) error {
	err := q.backend.SubmitMutation(ctx, token, m)
	if err != nil {
		if errors.Is(err, adapter.ErrUnknownMutationKind) {
			// A mutation no backend endpoint exists for would wedge the
			// queue forever. Drop it and keep draining.
			q.logger.Error().
				Str("mutation_id", m.ID).
				Str("kind", string(m.Kind)).
				Msg("dropping undeliverable mutation")
			return q.remove(m)
		}
		return fmt.Errorf("replay mutation (id=%s, kind=%s): %w", m.ID, m.Kind, err)
	}

	return q.remove(m)
}

func (q *mutationQueue) remove(m models.PendingMutation) error {
	// Removal runs detached from the request context: once the backend has
	// acknowledged the mutation, failing to delete it locally must not be
	// masked by a cancelled ctx, or the next drain would double-send.
	if err := q.store.Remove(context.Background(), m.Seq); err != nil {
		return fmt.Errorf("remove acknowledged mutation (id=%s): %w", m.ID, err)
	}
	return nil
}
