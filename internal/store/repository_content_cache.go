package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/models"
)

type contentCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewContentCacheRepository(db *DB, logger *logger.Logger) ContentCache {
	return &contentCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *contentCacheRepository) Manifest(ctx context.Context) (models.Manifest, error) {
	log := logger.FromContext(ctx)

	var (
		publishedAt int64
		versionsRaw []byte
	)
	row := c.DB.QueryRowContext(ctx, getManifest)
	if err := row.Scan(&publishedAt, &versionsRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Manifest{}, nil
		}
		log.Err(err).
			Str("func", "contentCacheRepository.Manifest").
			Msg("failed to scan manifest row")
		return models.Manifest{}, fmt.Errorf("failed to scan manifest row: %w", err)
	}

	versions := make(map[string]int64)
	if len(versionsRaw) > 0 {
		if err := json.Unmarshal(versionsRaw, &versions); err != nil {
			log.Err(err).
				Str("func", "contentCacheRepository.Manifest").
				Msg("failed to decode cached level versions")
			return models.Manifest{}, fmt.Errorf("failed to decode cached level versions: %w", err)
		}
	}

	return models.Manifest{PublishedAt: publishedAt, LevelVersions: versions}, nil
}

func (c *contentCacheRepository) SaveManifest(ctx context.Context, m models.Manifest) error {
	log := logger.FromContext(ctx)

	versionsRaw, err := json.Marshal(m.LevelVersions)
	if err != nil {
		return fmt.Errorf("failed to encode level versions: %w", err)
	}

	if _, err = c.DB.ExecContext(ctx, saveManifest, m.PublishedAt, versionsRaw, time.Now().UTC()); err != nil {
		log.Err(err).
			Str("func", "contentCacheRepository.SaveManifest").
			Int64("published_at", m.PublishedAt).
			Msg("failed to execute upsert for manifest")
		return fmt.Errorf("failed to save manifest: %w", err)
	}

	return nil
}

func (c *contentCacheRepository) LevelsMeta(ctx context.Context) ([]models.LevelMeta, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, getLevelsMeta)
	if err != nil {
		log.Err(err).
			Str("func", "contentCacheRepository.LevelsMeta").
			Msg("failed to execute query for level descriptors")
		return nil, fmt.Errorf("failed to query level descriptors: %w", err)
	}
	defer rows.Close()

	var meta []models.LevelMeta
	for rows.Next() {
		var m models.LevelMeta
		if err = rows.Scan(&m.LevelID, &m.Title, &m.Subject, &m.Ordering, &m.Difficulty); err != nil {
			log.Err(err).
				Str("func", "contentCacheRepository.LevelsMeta").
				Msg("failed to scan level descriptor row")
			return nil, fmt.Errorf("failed to scan level descriptor row: %w", err)
		}
		meta = append(meta, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating level descriptor rows: %w", err)
	}

	return meta, nil
}

func (c *contentCacheRepository) ReplaceLevelsMeta(ctx context.Context, meta []models.LevelMeta) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteLevelsMeta); err != nil {
		log.Err(err).
			Str("func", "contentCacheRepository.ReplaceLevelsMeta").
			Msg("failed to clear level descriptors")
		return fmt.Errorf("failed to clear level descriptors: %w", err)
	}

	for _, m := range meta {
		if _, err = tx.ExecContext(ctx, insertLevelMeta, m.LevelID, m.Title, m.Subject, m.Ordering, m.Difficulty); err != nil {
			log.Err(err).
				Str("func", "contentCacheRepository.ReplaceLevelsMeta").
				Str("level_id", m.LevelID).
				Msg("failed to insert level descriptor")
			return fmt.Errorf("failed to insert level descriptor (level_id=%s): %w", m.LevelID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (c *contentCacheRepository) SaveQuestions(ctx context.Context, p models.QuestionPayload) error {
	log := logger.FromContext(ctx)

	if _, err := c.DB.ExecContext(ctx, saveQuestions, p.LevelID, p.Version, []byte(p.Data), time.Now().UTC()); err != nil {
		log.Err(err).
			Str("func", "contentCacheRepository.SaveQuestions").
			Str("level_id", p.LevelID).
			Int64("version", p.Version).
			Msg("failed to execute upsert for questions payload")
		return fmt.Errorf("failed to save questions payload (level_id=%s): %w", p.LevelID, err)
	}

	return nil
}

func (c *contentCacheRepository) Questions(ctx context.Context, levelID string) (models.QuestionPayload, error) {
	log := logger.FromContext(ctx)

	var (
		p       models.QuestionPayload
		payload []byte
	)
	row := c.DB.QueryRowContext(ctx, getQuestions, levelID)
	if err := row.Scan(&p.LevelID, &p.Version, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuestionPayload{}, ErrQuestionsNotCached
		}
		log.Err(err).
			Str("func", "contentCacheRepository.Questions").
			Str("level_id", levelID).
			Msg("failed to scan questions payload row")
		return models.QuestionPayload{}, fmt.Errorf("failed to scan questions payload row: %w", err)
	}
	p.Data = payload

	return p, nil
}

func (c *contentCacheRepository) QuestionVersions(ctx context.Context) (map[string]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, getQuestionVersions)
	if err != nil {
		log.Err(err).
			Str("func", "contentCacheRepository.QuestionVersions").
			Msg("failed to execute query for cached question versions")
		return nil, fmt.Errorf("failed to query cached question versions: %w", err)
	}
	defer rows.Close()

	versions := make(map[string]int64)
	for rows.Next() {
		var (
			levelID string
			version int64
		)
		if err = rows.Scan(&levelID, &version); err != nil {
			return nil, fmt.Errorf("failed to scan question version row: %w", err)
		}
		versions[levelID] = version
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating question version rows: %w", err)
	}

	return versions, nil
}

func (c *contentCacheRepository) HasQuestions(ctx context.Context, levelID string) (bool, error) {
	var exists bool
	row := c.DB.QueryRowContext(ctx, hasQuestions, levelID)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check questions payload presence: %w", err)
	}
	return exists, nil
}

func (c *contentCacheRepository) DeleteQuestionsExcept(ctx context.Context, keep []string) (int64, error) {
	log := logger.FromContext(ctx)

	builder := sq.Delete("questions")
	if len(keep) > 0 {
		builder = builder.Where(sq.NotEq{"level_id": keep})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contentCacheRepository.DeleteQuestionsExcept").
			Int("keep", len(keep)).
			Msg("failed to prune retired question payloads")
		return 0, fmt.Errorf("failed to prune retired question payloads: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read pruned row count: %w", err)
	}
	return removed, nil
}

func (c *contentCacheRepository) CachedLevelCount(ctx context.Context) (int, error) {
	var count int
	row := c.DB.QueryRowContext(ctx, countQuestions)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cached levels: %w", err)
	}
	return count, nil
}

func (c *contentCacheRepository) Progress(ctx context.Context) (models.Progress, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, getProgress)
	if err != nil {
		log.Err(err).
			Str("func", "contentCacheRepository.Progress").
			Msg("failed to execute query for progress")
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	progress := make(models.Progress)
	for rows.Next() {
		var (
			p        models.LevelProgress
			playedAt sql.NullTime
		)
		if err = rows.Scan(&p.LevelID, &p.CompletedCount, &p.BestScore, &p.Stars, &playedAt); err != nil {
			return nil, fmt.Errorf("failed to scan progress row: %w", err)
		}
		if playedAt.Valid {
			t := playedAt.Time.UTC()
			p.LastPlayedAt = &t
		}
		progress[p.LevelID] = p
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating progress rows: %w", err)
	}

	return progress, nil
}

func (c *contentCacheRepository) SaveProgress(ctx context.Context, progress models.Progress) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for levelID, p := range progress {
		var playedAt any
		if p.LastPlayedAt != nil {
			playedAt = p.LastPlayedAt.UTC()
		}
		if _, err = tx.ExecContext(ctx, upsertProgress, levelID, p.CompletedCount, p.BestScore, p.Stars, playedAt); err != nil {
			log.Err(err).
				Str("func", "contentCacheRepository.SaveProgress").
				Str("level_id", levelID).
				Msg("failed to upsert progress record")
			return fmt.Errorf("failed to upsert progress record (level_id=%s): %w", levelID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (c *contentCacheRepository) Subscription(ctx context.Context) (models.Subscription, error) {
	var (
		s         models.Subscription
		expiresAt sql.NullTime
	)
	row := c.DB.QueryRowContext(ctx, getSubscription)
	if err := row.Scan(&s.Active, &s.Plan, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Subscription{}, nil
		}
		return models.Subscription{}, fmt.Errorf("failed to scan subscription row: %w", err)
	}
	if expiresAt.Valid {
		t := expiresAt.Time.UTC()
		s.ExpiresAt = &t
	}

	return s, nil
}

func (c *contentCacheRepository) SaveSubscription(ctx context.Context, s models.Subscription) error {
	log := logger.FromContext(ctx)

	var expiresAt any
	if s.ExpiresAt != nil {
		expiresAt = s.ExpiresAt.UTC()
	}
	if _, err := c.DB.ExecContext(ctx, saveSubscription, s.Active, s.Plan, expiresAt, time.Now().UTC()); err != nil {
		log.Err(err).
			Str("func", "contentCacheRepository.SaveSubscription").
			Msg("failed to execute upsert for subscription")
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	return nil
}

func (c *contentCacheRepository) LastSyncedAt(ctx context.Context) (time.Time, error) {
	return c.syncStateTime(ctx, syncStateLastFullSync)
}

func (c *contentCacheRepository) SetLastSyncedAt(ctx context.Context, t time.Time) error {
	return c.setSyncStateTime(ctx, syncStateLastFullSync, t)
}

func (c *contentCacheRepository) LastContentSyncAt(ctx context.Context) (time.Time, error) {
	return c.syncStateTime(ctx, syncStateLastContentSync)
}

func (c *contentCacheRepository) SetLastContentSyncAt(ctx context.Context, t time.Time) error {
	return c.setSyncStateTime(ctx, syncStateLastContentSync, t)
}

func (c *contentCacheRepository) syncStateTime(ctx context.Context, key string) (time.Time, error) {
	var value string
	row := c.DB.QueryRowContext(ctx, getSyncState, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to scan sync state (key=%s): %w", key, err)
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse sync state timestamp (key=%s): %w", key, err)
	}
	return t, nil
}

func (c *contentCacheRepository) setSyncStateTime(ctx context.Context, key string, t time.Time) error {
	if _, err := c.DB.ExecContext(ctx, upsertSyncState, key, t.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to save sync state (key=%s): %w", key, err)
	}
	return nil
}
