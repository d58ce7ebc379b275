package models

import "time"

// LevelProgress is the per-level completion state of the current player.
// Two writers exist: the local game UI (optimistic writes when the child
// finishes an activity) and the periodic authoritative fetch from the
// backend. Every field is monotonic so that the merge rule "more advanced
// wins" is well defined per field (see service.MergeProgress).
type LevelProgress struct {
	LevelID        string     `json:"levelId"`
	CompletedCount int64      `json:"completedCount"`
	BestScore      int64      `json:"bestScore"`
	Stars          int        `json:"stars"`
	LastPlayedAt   *time.Time `json:"lastPlayedAt,omitempty"`
}

// Progress maps level id to the player's state for that level.
type Progress map[string]LevelProgress

// Subscription is the account entitlement snapshot. It has no local writer:
// the cache is a read-through copy replaced wholesale on every successful
// backend fetch.
type Subscription struct {
	Active    bool       `json:"active"`
	Plan      string     `json:"plan,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// PlayerState is the authoritative progress and entitlement snapshot
// returned by the backend in a single query.
type PlayerState struct {
	Progress     Progress     `json:"progress"`
	Subscription Subscription `json:"subscription"`
}
