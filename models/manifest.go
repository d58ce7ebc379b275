package models

import (
	"encoding/json"
	"time"
)

// Manifest is the top-level index of the remote content catalog. It is
// fetched before anything else and decides which level payloads need to be
// downloaded. One manifest exists per install; it is replaced wholesale on
// every successful fetch, never merged field by field.
type Manifest struct {
	// PublishedAt is the server-side publication timestamp of the catalog,
	// transported as unix milliseconds.
	PublishedAt int64 `json:"publishedAt"`

	// LevelVersions maps level id to the latest content version published
	// for that level. Versions are expected to be monotonically
	// non-decreasing per level; the client trusts the server here and must
	// not crash if the expectation is violated.
	LevelVersions map[string]int64 `json:"levelVersions"`
}

// IsZero reports whether the manifest has never been fetched.
func (m Manifest) IsZero() bool {
	return m.PublishedAt == 0 && len(m.LevelVersions) == 0
}

// PublishedTime returns PublishedAt as a time.Time in UTC.
func (m Manifest) PublishedTime() time.Time {
	return time.UnixMilli(m.PublishedAt).UTC()
}

// LevelMeta is the lightweight per-level descriptor needed to render a level
// list without downloading the full question payload.
type LevelMeta struct {
	LevelID    string `json:"id"`
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	Ordering   int    `json:"ordering"`
	Difficulty int    `json:"difficulty"`
}

// QuestionPayload is the full per-level content blob. Its schema is owned by
// the game layer; the sync core treats it as opaque JSON and only tracks the
// content version it was downloaded at.
type QuestionPayload struct {
	LevelID string          `json:"levelId"`
	Version int64           `json:"version"`
	Data    json.RawMessage `json:"data"`
}
