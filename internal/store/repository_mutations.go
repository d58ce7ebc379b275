package store

import (
	"context"
	"fmt"

	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/models"
)

type mutationRepository struct {
	*DB
	logger *logger.Logger
}

func NewMutationRepository(db *DB, logger *logger.Logger) MutationStore {
	return &mutationRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *mutationRepository) Append(ctx context.Context, m models.PendingMutation) (models.PendingMutation, error) {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, appendMutation,
		m.ID,
		string(m.Kind),
		m.LevelID,
		string(m.Payload),
		m.CreatedAt.UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "mutationRepository.Append").
			Str("mutation_id", m.ID).
			Str("kind", string(m.Kind)).
			Msg("failed to append pending mutation")
		return models.PendingMutation{}, fmt.Errorf("failed to append pending mutation (id=%s): %w", m.ID, err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return models.PendingMutation{}, fmt.Errorf("failed to read assigned sequence number: %w", err)
	}
	m.Seq = seq

	return m, nil
}

func (r *mutationRepository) Oldest(ctx context.Context, limit int) ([]models.PendingMutation, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = -1 // SQLite: negative LIMIT means unbounded
	}

	rows, err := r.DB.QueryContext(ctx, getOldestMutations, limit)
	if err != nil {
		log.Err(err).
			Str("func", "mutationRepository.Oldest").
			Msg("failed to execute query for pending mutations")
		return nil, fmt.Errorf("failed to query pending mutations: %w", err)
	}
	defer rows.Close()

	var mutations []models.PendingMutation
	for rows.Next() {
		var (
			m       models.PendingMutation
			kind    string
			payload string
		)
		if err = rows.Scan(&m.Seq, &m.ID, &kind, &m.LevelID, &payload, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pending mutation row: %w", err)
		}
		m.Kind = models.MutationKind(kind)
		if payload != "" {
			m.Payload = []byte(payload)
		}
		mutations = append(mutations, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending mutation rows: %w", err)
	}

	return mutations, nil
}

func (r *mutationRepository) Remove(ctx context.Context, seq int64) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, removeMutation, seq)
	if err != nil {
		log.Err(err).
			Str("func", "mutationRepository.Remove").
			Int64("seq", seq).
			Msg("failed to remove pending mutation")
		return fmt.Errorf("failed to remove pending mutation (seq=%d): %w", seq, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read removed row count: %w", err)
	}
	if affected == 0 {
		return ErrMutationNotFound
	}

	return nil
}

func (r *mutationRepository) Len(ctx context.Context) (int, error) {
	var count int
	row := r.DB.QueryRowContext(ctx, countMutations)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending mutations: %w", err)
	}
	return count, nil
}

func (r *mutationRepository) EvictOverflow(ctx context.Context, capacity int) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, evictMutationOverflow, capacity)
	if err != nil {
		log.Err(err).
			Str("func", "mutationRepository.EvictOverflow").
			Int("capacity", capacity).
			Msg("failed to evict queue overflow")
		return 0, fmt.Errorf("failed to evict queue overflow: %w", err)
	}

	evicted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read evicted row count: %w", err)
	}
	return evicted, nil
}
