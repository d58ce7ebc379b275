package store

const (
	saveManifest = `
		INSERT INTO manifest (id, published_at, level_versions, saved_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			published_at   = excluded.published_at,
			level_versions = excluded.level_versions,
			saved_at       = excluded.saved_at;`

	getManifest = `
		SELECT published_at, level_versions
		FROM manifest
		WHERE id = 1;`

	deleteLevelsMeta = `DELETE FROM levels_meta;`

	insertLevelMeta = `
		INSERT INTO levels_meta (level_id, title, subject, ordering, difficulty)
		VALUES ($1, $2, $3, $4, $5);`

	getLevelsMeta = `
		SELECT level_id, title, subject, ordering, difficulty
		FROM levels_meta
		ORDER BY ordering, level_id;`

	saveQuestions = `
		INSERT INTO questions (level_id, version, payload, fetched_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (level_id) DO UPDATE SET
			version    = excluded.version,
			payload    = excluded.payload,
			fetched_at = excluded.fetched_at;`

	getQuestions = `
		SELECT level_id, version, payload
		FROM questions
		WHERE level_id = $1;`

	getQuestionVersions = `
		SELECT level_id, version
		FROM questions;`

	hasQuestions = `
		SELECT EXISTS (SELECT 1 FROM questions WHERE level_id = $1);`

	countQuestions = `SELECT COUNT(*) FROM questions;`

	upsertProgress = `
		INSERT INTO progress (level_id, completed_count, best_score, stars, last_played_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (level_id) DO UPDATE SET
			completed_count = excluded.completed_count,
			best_score      = excluded.best_score,
			stars           = excluded.stars,
			last_played_at  = excluded.last_played_at;`

	getProgress = `
		SELECT level_id, completed_count, best_score, stars, last_played_at
		FROM progress;`

	saveSubscription = `
		INSERT INTO subscription (id, active, plan, expires_at, fetched_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			active     = excluded.active,
			plan       = excluded.plan,
			expires_at = excluded.expires_at,
			fetched_at = excluded.fetched_at;`

	getSubscription = `
		SELECT active, plan, expires_at
		FROM subscription
		WHERE id = 1;`

	upsertSyncState = `
		INSERT INTO sync_state (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	getSyncState = `
		SELECT value FROM sync_state WHERE key = $1;`

	appendMutation = `
		INSERT INTO pending_mutations (id, kind, level_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5);`

	getOldestMutations = `
		SELECT seq, id, kind, level_id, payload, created_at
		FROM pending_mutations
		ORDER BY seq
		LIMIT $1;`

	removeMutation = `
		DELETE FROM pending_mutations WHERE seq = $1;`

	countMutations = `SELECT COUNT(*) FROM pending_mutations;`

	evictMutationOverflow = `
		DELETE FROM pending_mutations
		WHERE seq IN (
			SELECT seq FROM pending_mutations
			ORDER BY seq
			LIMIT (SELECT CASE WHEN COUNT(*) > $1 THEN COUNT(*) - $1 ELSE 0 END
			       FROM pending_mutations)
		);`
)

// Keys under sync_state.
const (
	syncStateLastFullSync    = "last_full_sync_at"
	syncStateLastContentSync = "last_content_sync_at"
)
