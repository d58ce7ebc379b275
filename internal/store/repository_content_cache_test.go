package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/models"
)

func newTestContentCache(t *testing.T) (*contentCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &contentCacheRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestContentCache_Manifest(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"published_at", "level_versions"}).
		AddRow(int64(1724745600000), []byte(`{"counting-1":3,"shapes-1":1}`))
	mock.ExpectQuery("SELECT published_at, level_versions").WillReturnRows(rows)

	m, err := repo.Manifest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1724745600000), m.PublishedAt)
	assert.Equal(t, map[string]int64{"counting-1": 3, "shapes-1": 1}, m.LevelVersions)
}

func TestContentCache_Manifest_NeverSaved(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT published_at, level_versions").WillReturnError(sql.ErrNoRows)

	m, err := repo.Manifest(context.Background())
	require.NoError(t, err)
	assert.True(t, m.IsZero())
}

func TestContentCache_SaveManifest(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO manifest").
		WithArgs(int64(42), []byte(`{"counting-1":3}`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveManifest(context.Background(), models.Manifest{
		PublishedAt:   42,
		LevelVersions: map[string]int64{"counting-1": 3},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentCache_LevelsMeta(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"level_id", "title", "subject", "ordering", "difficulty"}).
		AddRow("counting-1", "Counting to 10", "math", 1, 1).
		AddRow("shapes-1", "Shapes", "math", 2, 1)
	mock.ExpectQuery("SELECT level_id, title, subject, ordering, difficulty").WillReturnRows(rows)

	meta, err := repo.LevelsMeta(context.Background())
	require.NoError(t, err)
	require.Len(t, meta, 2)
	assert.Equal(t, "counting-1", meta[0].LevelID)
	assert.Equal(t, "Shapes", meta[1].Title)
}

func TestContentCache_ReplaceLevelsMeta_Transactional(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	meta := []models.LevelMeta{
		{LevelID: "counting-1", Title: "Counting to 10", Subject: "math", Ordering: 1, Difficulty: 1},
		{LevelID: "shapes-1", Title: "Shapes", Subject: "math", Ordering: 2, Difficulty: 2},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM levels_meta").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO levels_meta").
		WithArgs("counting-1", "Counting to 10", "math", 1, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO levels_meta").
		WithArgs("shapes-1", "Shapes", "math", 2, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceLevelsMeta(context.Background(), meta))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentCache_ReplaceLevelsMeta_RollsBackOnInsertFailure(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM levels_meta").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO levels_meta").WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.ReplaceLevelsMeta(context.Background(), []models.LevelMeta{{LevelID: "counting-1"}})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentCache_Questions(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"level_id", "version", "payload"}).
		AddRow("counting-1", int64(3), []byte(`{"questions":[]}`))
	mock.ExpectQuery("SELECT level_id, version, payload").
		WithArgs("counting-1").
		WillReturnRows(rows)

	p, err := repo.Questions(context.Background(), "counting-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Version)
	assert.JSONEq(t, `{"questions":[]}`, string(p.Data))
}

func TestContentCache_Questions_NotCached(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT level_id, version, payload").
		WithArgs("ghost-level").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Questions(context.Background(), "ghost-level")
	assert.ErrorIs(t, err, ErrQuestionsNotCached)
}

func TestContentCache_QuestionVersions(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"level_id", "version"}).
		AddRow("counting-1", int64(3)).
		AddRow("shapes-1", int64(1))
	mock.ExpectQuery("SELECT level_id, version").WillReturnRows(rows)

	versions, err := repo.QuestionVersions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"counting-1": 3, "shapes-1": 1}, versions)
}

func TestContentCache_DeleteQuestionsExcept(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM questions").
		WithArgs("counting-1", "shapes-1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	removed, err := repo.DeleteQuestionsExcept(context.Background(), []string{"counting-1", "shapes-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func TestContentCache_DeleteQuestionsExcept_EmptyKeepWipesAll(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM questions").WillReturnResult(sqlmock.NewResult(0, 5))

	removed, err := repo.DeleteQuestionsExcept(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), removed)
}

func TestContentCache_Progress(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	playedAt := time.Date(2026, 8, 20, 18, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"level_id", "completed_count", "best_score", "stars", "last_played_at"}).
		AddRow("counting-1", int64(5), int64(90), 3, playedAt).
		AddRow("shapes-1", int64(1), int64(40), 1, nil)
	mock.ExpectQuery("SELECT level_id, completed_count, best_score, stars, last_played_at").
		WillReturnRows(rows)

	progress, err := repo.Progress(context.Background())
	require.NoError(t, err)
	require.Len(t, progress, 2)
	require.NotNil(t, progress["counting-1"].LastPlayedAt)
	assert.True(t, progress["counting-1"].LastPlayedAt.Equal(playedAt))
	assert.Nil(t, progress["shapes-1"].LastPlayedAt)
}

func TestContentCache_SaveProgress_Transactional(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	playedAt := time.Date(2026, 8, 20, 18, 30, 0, 0, time.UTC)
	progress := models.Progress{
		"counting-1": {LevelID: "counting-1", CompletedCount: 5, BestScore: 90, Stars: 3, LastPlayedAt: &playedAt},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO progress").
		WithArgs("counting-1", int64(5), int64(90), 3, playedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveProgress(context.Background(), progress))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentCache_Subscription_NeverFetched(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT active, plan, expires_at").WillReturnError(sql.ErrNoRows)

	s, err := repo.Subscription(context.Background())
	require.NoError(t, err)
	assert.False(t, s.Active)
	assert.Empty(t, s.Plan)
	assert.Nil(t, s.ExpiresAt)
}

func TestContentCache_SyncStateRoundTripFormat(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	at := time.Date(2026, 8, 27, 12, 0, 0, 123456789, time.UTC)

	mock.ExpectExec("INSERT INTO sync_state").
		WithArgs(syncStateLastFullSync, at.Format(time.RFC3339Nano)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SetLastSyncedAt(context.Background(), at))

	rows := sqlmock.NewRows([]string{"value"}).AddRow(at.Format(time.RFC3339Nano))
	mock.ExpectQuery("SELECT value FROM sync_state").
		WithArgs(syncStateLastFullSync).
		WillReturnRows(rows)

	got, err := repo.LastSyncedAt(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Equal(at))
}

func TestContentCache_LastSyncedAt_NeverSynced(t *testing.T) {
	repo, mock, db := newTestContentCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM sync_state").
		WithArgs(syncStateLastFullSync).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.LastSyncedAt(context.Background())
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}
